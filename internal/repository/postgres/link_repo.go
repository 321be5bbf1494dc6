package postgres

import (
	"context"
	"database/sql"

	"planner/internal/domain"
)

type linkRepository struct {
	DB *sql.DB
}

func NewLinkRepository(db *sql.DB) domain.LinkRepository {
	return &linkRepository{
		DB: db,
	}
}

func (r *linkRepository) Create(ctx context.Context, l *domain.Link) error {
	query := `
		INSERT INTO links (trip_id, title, url, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, l.TripID, l.Title, l.URL, l.CreatedAt).
		Scan(&l.ID)
}

func (r *linkRepository) ListByTripID(ctx context.Context, tripID string) ([]*domain.Link, error) {
	query := `
		SELECT id, trip_id, title, url, created_at
		FROM links
		WHERE trip_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]*domain.Link, 0)
	for rows.Next() {
		l := &domain.Link{}
		if err := rows.Scan(&l.ID, &l.TripID, &l.Title, &l.URL, &l.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
