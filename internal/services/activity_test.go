package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"planner/internal/domain"
)

func TestActivityService_CreateActivity(t *testing.T) {
	trip := &domain.Trip{
		ID:          "trip-1",
		Destination: "Florianópolis, SC",
		StartsAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	newService := func(activityRepo *mockActivityRepository) domain.ActivityService {
		tripRepo := &mockTripRepository{trips: map[string]*domain.Trip{trip.ID: trip}}
		return NewActivityService(tripRepo, activityRepo, time.Second)
	}

	t.Run("schedules an activity inside the trip dates", func(t *testing.T) {
		activityRepo := &mockActivityRepository{}
		svc := newService(activityRepo)

		a, err := svc.CreateActivity(context.Background(), trip.ID, "Trilha na Lagoa", time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)
		require.Equal(t, trip.ID, a.TripID)
		require.Len(t, activityRepo.created, 1)
	})

	t.Run("the first and last days of the trip are valid", func(t *testing.T) {
		activityRepo := &mockActivityRepository{}
		svc := newService(activityRepo)

		_, err := svc.CreateActivity(context.Background(), trip.ID, "Check-in", trip.StartsAt)
		require.NoError(t, err)
		_, err = svc.CreateActivity(context.Background(), trip.ID, "Check-out", trip.EndsAt)
		require.NoError(t, err)
		require.Len(t, activityRepo.created, 2)
	})

	t.Run("rejects a date before the trip starts", func(t *testing.T) {
		activityRepo := &mockActivityRepository{}
		svc := newService(activityRepo)

		_, err := svc.CreateActivity(context.Background(), trip.ID, "Trilha", trip.StartsAt.Add(-time.Hour))
		require.ErrorIs(t, err, domain.ErrActivityOutOfRange)
		require.Empty(t, activityRepo.created)
	})

	t.Run("rejects a date after the trip ends", func(t *testing.T) {
		activityRepo := &mockActivityRepository{}
		svc := newService(activityRepo)

		_, err := svc.CreateActivity(context.Background(), trip.ID, "Trilha", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, domain.ErrActivityOutOfRange)
		require.Empty(t, activityRepo.created)
	})

	t.Run("rejects a blank title", func(t *testing.T) {
		svc := newService(&mockActivityRepository{})

		_, err := svc.CreateActivity(context.Background(), trip.ID, "  ", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("returns not found for an unknown trip", func(t *testing.T) {
		svc := NewActivityService(&mockTripRepository{}, &mockActivityRepository{}, time.Second)

		_, err := svc.CreateActivity(context.Background(), "missing", "Trilha", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestActivityService_ListActivities(t *testing.T) {
	trip := &domain.Trip{
		ID:       "trip-1",
		StartsAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("lists the trip activities", func(t *testing.T) {
		tripRepo := &mockTripRepository{trips: map[string]*domain.Trip{trip.ID: trip}}
		activityRepo := &mockActivityRepository{
			byTrip: map[string][]*domain.Activity{
				trip.ID: {
					{ID: "act-1", TripID: trip.ID, Title: "Check-in"},
					{ID: "act-2", TripID: trip.ID, Title: "Trilha"},
				},
			},
		}
		svc := NewActivityService(tripRepo, activityRepo, time.Second)

		activities, err := svc.ListActivities(context.Background(), trip.ID)
		require.NoError(t, err)
		require.Len(t, activities, 2)
	})

	t.Run("returns not found for an unknown trip", func(t *testing.T) {
		svc := NewActivityService(&mockTripRepository{}, &mockActivityRepository{}, time.Second)

		_, err := svc.ListActivities(context.Background(), "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
