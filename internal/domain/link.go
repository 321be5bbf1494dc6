package domain

import (
	"context"
	"time"
)

// Link is a reference URL attached to a trip. No workflow beyond "the trip
// must exist".
// swagger:model Link
type Link struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// LinkRepository defines storage operations for links.
type LinkRepository interface {
	Create(ctx context.Context, l *Link) error
	ListByTripID(ctx context.Context, tripID string) ([]*Link, error)
}

// LinkService defines link attachment operations.
type LinkService interface {
	CreateLink(ctx context.Context, tripID, title, url string) (*Link, error)
	ListLinks(ctx context.Context, tripID string) ([]*Link, error)
}
