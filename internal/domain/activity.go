package domain

import (
	"context"
	"errors"
	"time"
)

// ErrActivityOutOfRange is returned when an activity date falls outside the
// owning trip's [StartsAt, EndsAt] range.
var ErrActivityOutOfRange = errors.New("activity date outside trip dates")

// Activity represents a dated, titled event scoped to a trip. The date must
// fall within the trip's date range, boundaries included.
// swagger:model Activity
type Activity struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityRepository defines storage operations for activities.
type ActivityRepository interface {
	Create(ctx context.Context, a *Activity) error
	// ListByTripID returns all activities of a trip ordered by date
	// ascending, ties broken by creation order.
	ListByTripID(ctx context.Context, tripID string) ([]*Activity, error)
}

// ActivityService defines activity scheduling against a trip's date range.
type ActivityService interface {
	// CreateActivity persists an activity after checking its date lies
	// within the trip's range. Returns ErrActivityOutOfRange otherwise.
	CreateActivity(ctx context.Context, tripID, title string, date time.Time) (*Activity, error)
	ListActivities(ctx context.Context, tripID string) ([]*Activity, error)
}
