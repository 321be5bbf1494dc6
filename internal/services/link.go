package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"planner/internal/domain"
)

type linkService struct {
	tripRepo       domain.TripRepository
	linkRepo       domain.LinkRepository
	contextTimeout time.Duration
}

// NewLinkService creates a LinkService.
func NewLinkService(tripRepo domain.TripRepository, linkRepo domain.LinkRepository, timeout time.Duration) domain.LinkService {
	return &linkService{
		tripRepo:       tripRepo,
		linkRepo:       linkRepo,
		contextTimeout: timeout,
	}
}

func (s *linkService) CreateLink(ctx context.Context, tripID, title, url string) (*domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(title) == "" || strings.TrimSpace(url) == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	l := &domain.Link{
		TripID:    tripID,
		Title:     title,
		URL:       url,
		CreatedAt: time.Now(),
	}
	if err := s.linkRepo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create link: %w", err)
	}
	return l, nil
}

func (s *linkService) ListLinks(ctx context.Context, tripID string) ([]*domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	links, err := s.linkRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}
