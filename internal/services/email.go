package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"planner/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendTripConfirmation sends the owner confirmation email using the
// "trip_confirmation" template and the given data.
func (s *emailService) SendTripConfirmation(ctx context.Context, data *domain.TripConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("trip confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("trip_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render trip_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.OwnerEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send trip confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Trip confirmation sent to %s", data.OwnerEmail)
	return nil
}

// SendParticipantInvitation sends an invitation email using the
// "participant_invitation" template and the given data.
func (s *emailService) SendParticipantInvitation(ctx context.Context, data *domain.ParticipantInvitationEmailData) error {
	if data == nil {
		return fmt.Errorf("participant invitation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("participant_invitation", data)
	if err != nil {
		return fmt.Errorf("failed to render participant_invitation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send participant invitation email: %w", err)
	}
	log.Printf("[EMAIL] Participant invitation sent to %s", data.Email)
	return nil
}

var longDateMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// formatLongDate renders a date the way the emails display it,
// e.g. "5 de março de 2025".
func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), longDateMonths[t.Month()-1], t.Year())
}
