package domain

import (
	"context"
	"time"
)

// Participant represents a person associated with a trip, either its owner or
// an invitee. The owner is created already confirmed; invitees start pending.
// swagger:model Participant
type Participant struct {
	ID          string    `json:"id"`
	TripID      string    `json:"trip_id"`
	Name        string    `json:"name,omitempty"` // empty for invitees
	Email       string    `json:"email"`
	IsOwner     bool      `json:"is_owner"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// ParticipantRepository defines storage operations for participants.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	GetByID(ctx context.Context, id string) (*Participant, error)
	// ListByTripID returns all participants of a trip in creation order.
	ListByTripID(ctx context.Context, tripID string) ([]*Participant, error)
	// Confirm sets is_confirmed on the participant. Returns changed=false
	// when already confirmed, ErrNotFound when it does not exist.
	Confirm(ctx context.Context, id string) (changed bool, err error)
}

// ParticipantService defines the participant confirmation workflow.
type ParticipantService interface {
	// InviteParticipant creates a pending participant under the trip and
	// requests delivery of an invitation email. Repeat invites to the same
	// email are intentionally not deduplicated: each call creates a
	// distinct participant row.
	InviteParticipant(ctx context.Context, tripID, email string) (*Participant, error)
	// ConfirmParticipant marks the participant confirmed. Idempotent:
	// confirming twice succeeds without further state change.
	ConfirmParticipant(ctx context.Context, participantID string) (*Participant, error)
	ListParticipants(ctx context.Context, tripID string) ([]*Participant, error)
}
