package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"planner/internal/domain"
)

type activityService struct {
	tripRepo       domain.TripRepository
	activityRepo   domain.ActivityRepository
	contextTimeout time.Duration
}

// NewActivityService creates an ActivityService.
func NewActivityService(tripRepo domain.TripRepository, activityRepo domain.ActivityRepository, timeout time.Duration) domain.ActivityService {
	return &activityService{
		tripRepo:       tripRepo,
		activityRepo:   activityRepo,
		contextTimeout: timeout,
	}
}

func (s *activityService) CreateActivity(ctx context.Context, tripID, title string, date time.Time) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	// Boundaries are inclusive: an activity on the first or last day is valid.
	if date.Before(trip.StartsAt) || date.After(trip.EndsAt) {
		return nil, domain.ErrActivityOutOfRange
	}

	a := &domain.Activity{
		TripID:    tripID,
		Title:     title,
		Date:      date,
		CreatedAt: time.Now(),
	}
	if err := s.activityRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}
	return a, nil
}

func (s *activityService) ListActivities(ctx context.Context, tripID string) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	activities, err := s.activityRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}
