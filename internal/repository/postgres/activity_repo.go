package postgres

import (
	"context"
	"database/sql"

	"planner/internal/domain"
)

type activityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) domain.ActivityRepository {
	return &activityRepository{
		DB: db,
	}
}

func (r *activityRepository) Create(ctx context.Context, a *domain.Activity) error {
	query := `
		INSERT INTO activities (trip_id, title, date, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, a.TripID, a.Title, a.Date, a.CreatedAt).
		Scan(&a.ID)
}

func (r *activityRepository) ListByTripID(ctx context.Context, tripID string) ([]*domain.Activity, error) {
	query := `
		SELECT id, trip_id, title, date, created_at
		FROM activities
		WHERE trip_id = $1
		ORDER BY date ASC, created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		a := &domain.Activity{}
		if err := rows.Scan(&a.ID, &a.TripID, &a.Title, &a.Date, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
