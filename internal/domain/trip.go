package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared across the domain.
var (
	// ErrNotFound is returned when a referenced trip, participant, activity,
	// or link does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a request is semantically invalid
	// (e.g. empty email on an invite).
	ErrInvalidInput = errors.New("invalid input")
)

// Sentinel errors for trip date validation.
var (
	ErrInvalidStartDate = errors.New("invalid trip start date")
	ErrInvalidEndDate   = errors.New("invalid trip end date")
)

// Trip represents a planned journey with a fixed date range. It is the root
// entity: participants, activities, and links all reference a trip by ID.
// swagger:model Trip
type Trip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTrip returns a new unconfirmed Trip. ID is set by the repository on create.
func NewTrip(destination string, startsAt, endsAt time.Time, createdAt, updatedAt time.Time) *Trip {
	return &Trip{
		Destination: destination,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// TripRepository defines the interface for trip storage.
type TripRepository interface {
	// CreateWithParticipants inserts the trip and all its participants in a
	// single transaction. On success trip.ID and every participant ID and
	// TripID are populated. A reader must never observe the trip without
	// its participants.
	CreateWithParticipants(ctx context.Context, trip *Trip, participants []*Participant) error
	GetByID(ctx context.Context, id string) (*Trip, error)
	// Confirm sets is_confirmed on the trip. Returns changed=false when the
	// trip was already confirmed, ErrNotFound when it does not exist.
	Confirm(ctx context.Context, id string) (changed bool, err error)
}

// CreateTripInput carries the caller-supplied fields for trip creation.
type CreateTripInput struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// TripService defines the business logic for the trip lifecycle.
type TripService interface {
	// CreateTrip validates the date range, persists the trip together with
	// the pre-confirmed owner participant and one pending participant per
	// invited email, and requests delivery of the owner confirmation email.
	// Returns ErrInvalidStartDate when StartsAt is in the past and
	// ErrInvalidEndDate when EndsAt is before StartsAt.
	CreateTrip(ctx context.Context, input CreateTripInput) (*Trip, error)
	GetTrip(ctx context.Context, tripID string) (*Trip, error)
	// ConfirmTrip marks the trip confirmed. Idempotent: repeated calls
	// succeed without changing state or re-sending participant emails.
	ConfirmTrip(ctx context.Context, tripID string) (*Trip, error)
}
