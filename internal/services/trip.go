package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"planner/internal/domain"
)

type tripService struct {
	tripRepo        domain.TripRepository
	participantRepo domain.ParticipantRepository
	emailService    domain.EmailService
	logger          *slog.Logger
	linkBaseURL     string
	contextTimeout  time.Duration
}

// NewTripService creates a TripService. linkBaseURL is the externally visible
// base URL confirmation links are built from.
func NewTripService(
	tripRepo domain.TripRepository,
	participantRepo domain.ParticipantRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	linkBaseURL string,
	timeout time.Duration,
) domain.TripService {
	return &tripService{
		tripRepo:        tripRepo,
		participantRepo: participantRepo,
		emailService:    emailService,
		logger:          logger,
		linkBaseURL:     strings.TrimSuffix(linkBaseURL, "/"),
		contextTimeout:  timeout,
	}
}

func (s *tripService) CreateTrip(ctx context.Context, input domain.CreateTripInput) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if input.StartsAt.Before(time.Now()) {
		return nil, domain.ErrInvalidStartDate
	}
	if input.EndsAt.Before(input.StartsAt) {
		return nil, domain.ErrInvalidEndDate
	}

	now := time.Now()
	trip := domain.NewTrip(input.Destination, input.StartsAt, input.EndsAt, now, now)

	participants := make([]*domain.Participant, 0, 1+len(input.EmailsToInvite))
	participants = append(participants, &domain.Participant{
		Name:        input.OwnerName,
		Email:       strings.TrimSpace(strings.ToLower(input.OwnerEmail)),
		IsOwner:     true,
		IsConfirmed: true,
		CreatedAt:   now,
	})
	for _, email := range input.EmailsToInvite {
		email = strings.TrimSpace(strings.ToLower(email))
		if email == "" {
			continue
		}
		participants = append(participants, &domain.Participant{
			Email:     email,
			CreatedAt: now,
		})
	}

	if err := s.tripRepo.CreateWithParticipants(ctx, trip, participants); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	// The trip row is already durable; a mail transport failure is surfaced
	// as a warning, never as a failure of the creation itself.
	data := &domain.TripConfirmationEmailData{
		OwnerName:        input.OwnerName,
		OwnerEmail:       participants[0].Email,
		Destination:      trip.Destination,
		StartsAt:         formatLongDate(trip.StartsAt),
		EndsAt:           formatLongDate(trip.EndsAt),
		ConfirmationLink: fmt.Sprintf("%s/trips/%s/confirm", s.linkBaseURL, trip.ID),
	}
	if err := s.emailService.SendTripConfirmation(ctx, data); err != nil {
		s.logger.Warn("trip confirmation email not sent", "trip_id", trip.ID, "err", err)
	}

	return trip, nil
}

func (s *tripService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return trip, nil
}

func (s *tripService) ConfirmTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	changed, err := s.tripRepo.Confirm(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("confirm trip: %w", err)
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	// Only the call that actually flipped the flag prompts the pending
	// participants; a redundant confirmation must not re-send mail.
	if changed {
		s.notifyPendingParticipants(ctx, trip)
	}

	return trip, nil
}

func (s *tripService) notifyPendingParticipants(ctx context.Context, trip *domain.Trip) {
	participants, err := s.participantRepo.ListByTripID(ctx, trip.ID)
	if err != nil {
		s.logger.Warn("could not list participants for confirmation emails", "trip_id", trip.ID, "err", err)
		return
	}
	for _, p := range participants {
		if p.IsOwner || p.IsConfirmed {
			continue
		}
		data := &domain.ParticipantInvitationEmailData{
			Email:            p.Email,
			Destination:      trip.Destination,
			StartsAt:         formatLongDate(trip.StartsAt),
			EndsAt:           formatLongDate(trip.EndsAt),
			ConfirmationLink: fmt.Sprintf("%s/participants/%s/confirm", s.linkBaseURL, p.ID),
		}
		if err := s.emailService.SendParticipantInvitation(ctx, data); err != nil {
			s.logger.Warn("participant invitation email not sent", "participant_id", p.ID, "err", err)
		}
	}
}
