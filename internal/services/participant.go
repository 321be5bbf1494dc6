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

type participantService struct {
	tripRepo        domain.TripRepository
	participantRepo domain.ParticipantRepository
	emailService    domain.EmailService
	logger          *slog.Logger
	linkBaseURL     string
	contextTimeout  time.Duration
}

// NewParticipantService creates a ParticipantService.
func NewParticipantService(
	tripRepo domain.TripRepository,
	participantRepo domain.ParticipantRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	linkBaseURL string,
	timeout time.Duration,
) domain.ParticipantService {
	return &participantService{
		tripRepo:        tripRepo,
		participantRepo: participantRepo,
		emailService:    emailService,
		logger:          logger,
		linkBaseURL:     strings.TrimSuffix(linkBaseURL, "/"),
		contextTimeout:  timeout,
	}
}

// InviteParticipant creates a pending participant row for the email under the
// trip and requests delivery of the invitation. Repeat invites to the same
// email create distinct rows on purpose.
func (s *participantService) InviteParticipant(ctx context.Context, tripID, email string) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, domain.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	p := &domain.Participant{
		TripID:    tripID,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := s.participantRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
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

	return p, nil
}

// ConfirmParticipant marks the participant confirmed. Confirming an already
// confirmed participant is a successful no-op.
func (s *participantService) ConfirmParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.participantRepo.Confirm(ctx, participantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("confirm participant: %w", err)
	}

	p, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}
	return p, nil
}

func (s *participantService) ListParticipants(ctx context.Context, tripID string) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	participants, err := s.participantRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}
