package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"planner/internal/delivery/http/helpers"
	"planner/internal/domain"
)

const testParticipantID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

// stubParticipantService implements domain.ParticipantService with function fields.
type stubParticipantService struct {
	inviteFn  func(ctx context.Context, tripID, email string) (*domain.Participant, error)
	confirmFn func(ctx context.Context, participantID string) (*domain.Participant, error)
	listFn    func(ctx context.Context, tripID string) ([]*domain.Participant, error)
}

func (s *stubParticipantService) InviteParticipant(ctx context.Context, tripID, email string) (*domain.Participant, error) {
	return s.inviteFn(ctx, tripID, email)
}

func (s *stubParticipantService) ConfirmParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	return s.confirmFn(ctx, participantID)
}

func (s *stubParticipantService) ListParticipants(ctx context.Context, tripID string) ([]*domain.Participant, error) {
	return s.listFn(ctx, tripID)
}

func newParticipantMux(svc domain.ParticipantService) *http.ServeMux {
	ctrl := NewParticipantController(testLogger(), svc)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /trips/{tripID}/invites", ctrl.InviteParticipant)
	mux.HandleFunc("GET /trips/{tripID}/participants", ctrl.ListParticipants)
	mux.HandleFunc("GET /participants/{participantID}/confirm", ctrl.ConfirmParticipant)
	return mux
}

func TestParticipantController_InviteParticipant(t *testing.T) {
	t.Run("returns 201 with the participant id", func(t *testing.T) {
		var gotTripID, gotEmail string
		mux := newParticipantMux(&stubParticipantService{
			inviteFn: func(ctx context.Context, tripID, email string) (*domain.Participant, error) {
				gotTripID, gotEmail = tripID, email
				return &domain.Participant{ID: testParticipantID, TripID: tripID, Email: email}, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/trips/"+testTripID+"/invites",
			strings.NewReader(`{"email":"guest@example.com"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		var resp InviteParticipantResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		require.Equal(t, testParticipantID, resp.ParticipantID)
		require.Equal(t, testTripID, gotTripID)
		require.Equal(t, "guest@example.com", gotEmail)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		mux := newParticipantMux(&stubParticipantService{})

		req := httptest.NewRequest(http.MethodPost, "/trips/"+testTripID+"/invites",
			strings.NewReader(`{"email":"not-an-email"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a missing email", func(t *testing.T) {
		mux := newParticipantMux(&stubParticipantService{})

		req := httptest.NewRequest(http.MethodPost, "/trips/"+testTripID+"/invites",
			strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 404 for an unknown trip", func(t *testing.T) {
		mux := newParticipantMux(&stubParticipantService{
			inviteFn: func(ctx context.Context, tripID, email string) (*domain.Participant, error) {
				return nil, domain.ErrNotFound
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/trips/"+testTripID+"/invites",
			strings.NewReader(`{"email":"guest@example.com"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		require.Equal(t, helpers.ErrCodeNotFound, env.Error.Code)
	})
}

func TestParticipantController_ConfirmParticipant(t *testing.T) {
	t.Run("returns the confirmed participant", func(t *testing.T) {
		mux := newParticipantMux(&stubParticipantService{
			confirmFn: func(ctx context.Context, participantID string) (*domain.Participant, error) {
				return &domain.Participant{ID: participantID, IsConfirmed: true}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/participants/"+testParticipantID+"/confirm", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		var p domain.Participant
		require.NoError(t, json.Unmarshal(env.Data, &p))
		require.True(t, p.IsConfirmed)
	})

	t.Run("rejects a malformed participant id", func(t *testing.T) {
		mux := newParticipantMux(&stubParticipantService{})

		req := httptest.NewRequest(http.MethodGet, "/participants/not-a-uuid/confirm", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 404 for an unknown participant", func(t *testing.T) {
		mux := newParticipantMux(&stubParticipantService{
			confirmFn: func(ctx context.Context, participantID string) (*domain.Participant, error) {
				return nil, domain.ErrNotFound
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/participants/"+testParticipantID+"/confirm", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		require.Equal(t, "participant not found", env.Error.Message)
	})
}

func TestParticipantController_ListParticipants(t *testing.T) {
	t.Run("returns the participants", func(t *testing.T) {
		mux := newParticipantMux(&stubParticipantService{
			listFn: func(ctx context.Context, tripID string) ([]*domain.Participant, error) {
				return []*domain.Participant{
					{ID: "part-1", TripID: tripID, Email: "owner@example.com", IsOwner: true, IsConfirmed: true},
					{ID: "part-2", TripID: tripID, Email: "guest@example.com"},
				}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/trips/"+testTripID+"/participants", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		var participants []*domain.Participant
		require.NoError(t, json.Unmarshal(env.Data, &participants))
		require.Len(t, participants, 2)
	})

	t.Run("returns 404 for an unknown trip", func(t *testing.T) {
		mux := newParticipantMux(&stubParticipantService{
			listFn: func(ctx context.Context, tripID string) ([]*domain.Participant, error) {
				return nil, domain.ErrNotFound
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/trips/"+testTripID+"/participants", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
