package postgres

import (
	"context"
	"database/sql"
	"errors"

	"planner/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{
		DB: db,
	}
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.TripID, p.Name, p.Email, p.IsOwner, p.IsConfirmed, p.CreatedAt,
	).Scan(&p.ID)
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	query := `
		SELECT id, trip_id, name, email, is_owner, is_confirmed, created_at
		FROM participants
		WHERE id = $1
	`
	p := &domain.Participant{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.TripID, &p.Name, &p.Email, &p.IsOwner, &p.IsConfirmed, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) ListByTripID(ctx context.Context, tripID string) ([]*domain.Participant, error) {
	query := `
		SELECT id, trip_id, name, email, is_owner, is_confirmed, created_at
		FROM participants
		WHERE trip_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p := &domain.Participant{}
		if err := rows.Scan(&p.ID, &p.TripID, &p.Name, &p.Email, &p.IsOwner, &p.IsConfirmed, &p.CreatedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// Confirm flips is_confirmed with a guarded update; see tripRepository.Confirm.
func (r *participantRepository) Confirm(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE participants
		SET is_confirmed = TRUE
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
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}
