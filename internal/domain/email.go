package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TripConfirmationEmailData holds data for the owner confirmation email sent
// after trip creation. Dates are pre-formatted display strings.
type TripConfirmationEmailData struct {
	OwnerName        string
	OwnerEmail       string
	Destination      string
	StartsAt         string
	EndsAt           string
	ConfirmationLink string
}

// ParticipantInvitationEmailData holds data for the invitation email sent to
// a pending participant, containing their personal confirmation link.
type ParticipantInvitationEmailData struct {
	Email            string
	Destination      string
	StartsAt         string
	EndsAt           string
	ConfirmationLink string
}

// EmailService defines the contract for sending domain-level emails.
// Implementations render and hand off to a Mailer; they perform no other I/O.
type EmailService interface {
	SendTripConfirmation(ctx context.Context, data *TripConfirmationEmailData) error
	SendParticipantInvitation(ctx context.Context, data *ParticipantInvitationEmailData) error
}
