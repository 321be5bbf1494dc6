package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"planner/internal/domain"
)

type tripRepository struct {
	DB *sql.DB
}

func NewTripRepository(db *sql.DB) domain.TripRepository {
	return &tripRepository{
		DB: db,
	}
}

// CreateWithParticipants inserts the trip row and every participant row in a
// single transaction so a concurrent reader never sees a trip without its
// owner. Any failure rolls back the whole batch.
func (r *tripRepository) CreateWithParticipants(ctx context.Context, trip *domain.Trip, participants []*domain.Participant) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin trip transaction: %w", err)
	}
	defer tx.Rollback()

	tripQuery := `
		INSERT INTO trips (destination, starts_at, ends_at, is_confirmed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, tripQuery,
		trip.Destination, trip.StartsAt, trip.EndsAt, trip.IsConfirmed, trip.CreatedAt, trip.UpdatedAt,
	).Scan(&trip.ID)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}

	participantQuery := `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for _, p := range participants {
		p.TripID = trip.ID
		err = tx.QueryRowContext(ctx, participantQuery,
			p.TripID, p.Name, p.Email, p.IsOwner, p.IsConfirmed, p.CreatedAt,
		).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("insert participant %s: %w", p.Email, err)
		}
	}

	return tx.Commit()
}

func (r *tripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `
		SELECT id, destination, starts_at, ends_at, is_confirmed, created_at, updated_at
		FROM trips
		WHERE id = $1
	`
	t := &domain.Trip{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Destination, &t.StartsAt, &t.EndsAt, &t.IsConfirmed, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Confirm flips is_confirmed with a guarded update so concurrent duplicate
// calls are safe: only one of them observes changed=true.
func (r *tripRepository) Confirm(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE trips
		SET is_confirmed = TRUE, updated_at = NOW()
		WHERE id = $1 AND is_confirmed = FALSE
	`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows > 0 {
		return true, nil
	}
	// No row updated: either the trip is already confirmed or it does not
	// exist. A lookup distinguishes the two.
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}
