package services

import (
	"context"
	"fmt"

	"planner/internal/domain"
)

// mockTripRepository is an in-memory TripRepository for service tests.
type mockTripRepository struct {
	trips     map[string]*domain.Trip
	createErr error

	createdTrips        []*domain.Trip
	createdParticipants [][]*domain.Participant
}

func (m *mockTripRepository) CreateWithParticipants(ctx context.Context, trip *domain.Trip, participants []*domain.Participant) error {
	if m.createErr != nil {
		return m.createErr
	}
	trip.ID = fmt.Sprintf("trip-%d", len(m.createdTrips)+1)
	for i, p := range participants {
		p.TripID = trip.ID
		p.ID = fmt.Sprintf("%s-part-%d", trip.ID, i+1)
	}
	m.createdTrips = append(m.createdTrips, trip)
	m.createdParticipants = append(m.createdParticipants, participants)
	if m.trips == nil {
		m.trips = map[string]*domain.Trip{}
	}
	m.trips[trip.ID] = trip
	return nil
}

func (m *mockTripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	t, ok := m.trips[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (m *mockTripRepository) Confirm(ctx context.Context, id string) (bool, error) {
	t, ok := m.trips[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if t.IsConfirmed {
		return false, nil
	}
	t.IsConfirmed = true
	return true, nil
}

// mockParticipantRepository is an in-memory ParticipantRepository.
type mockParticipantRepository struct {
	participants map[string]*domain.Participant
	byTrip       map[string][]*domain.Participant
	createErr    error
	listErr      error

	created []*domain.Participant
}

func (m *mockParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = fmt.Sprintf("part-%d", len(m.created)+1)
	m.created = append(m.created, p)
	if m.participants == nil {
		m.participants = map[string]*domain.Participant{}
	}
	m.participants[p.ID] = p
	if m.byTrip == nil {
		m.byTrip = map[string][]*domain.Participant{}
	}
	m.byTrip[p.TripID] = append(m.byTrip[p.TripID], p)
	return nil
}

func (m *mockParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	p, ok := m.participants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockParticipantRepository) ListByTripID(ctx context.Context, tripID string) ([]*domain.Participant, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.byTrip[tripID], nil
}

func (m *mockParticipantRepository) Confirm(ctx context.Context, id string) (bool, error) {
	p, ok := m.participants[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if p.IsConfirmed {
		return false, nil
	}
	p.IsConfirmed = true
	return true, nil
}

// mockActivityRepository records created activities.
type mockActivityRepository struct {
	byTrip    map[string][]*domain.Activity
	createErr error

	created []*domain.Activity
}

func (m *mockActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = fmt.Sprintf("act-%d", len(m.created)+1)
	m.created = append(m.created, a)
	return nil
}

func (m *mockActivityRepository) ListByTripID(ctx context.Context, tripID string) ([]*domain.Activity, error) {
	return m.byTrip[tripID], nil
}

// mockLinkRepository records created links.
type mockLinkRepository struct {
	byTrip    map[string][]*domain.Link
	createErr error

	created []*domain.Link
}

func (m *mockLinkRepository) Create(ctx context.Context, l *domain.Link) error {
	if m.createErr != nil {
		return m.createErr
	}
	l.ID = fmt.Sprintf("link-%d", len(m.created)+1)
	m.created = append(m.created, l)
	return nil
}

func (m *mockLinkRepository) ListByTripID(ctx context.Context, tripID string) ([]*domain.Link, error) {
	return m.byTrip[tripID], nil
}

// mockEmailService records emails instead of sending them.
type mockEmailService struct {
	sendErr error

	tripConfirmations []*domain.TripConfirmationEmailData
	invitations       []*domain.ParticipantInvitationEmailData
}

func (m *mockEmailService) SendTripConfirmation(ctx context.Context, data *domain.TripConfirmationEmailData) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.tripConfirmations = append(m.tripConfirmations, data)
	return nil
}

func (m *mockEmailService) SendParticipantInvitation(ctx context.Context, data *domain.ParticipantInvitationEmailData) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.invitations = append(m.invitations, data)
	return nil
}
