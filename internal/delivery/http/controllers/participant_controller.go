package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"planner/internal/delivery/http/helpers"
	"planner/internal/domain"
)

type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.ParticipantService
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService) *ParticipantController {
	return &ParticipantController{
		Logger:  logger,
		Service: svc,
	}
}

// InviteParticipantRequest is the request body for POST /trips/{tripID}/invites.
type InviteParticipantRequest struct {
	Email string `json:"email"`
}

// Validate implements helpers.Validator.
func (r *InviteParticipantRequest) Validate() []string {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return []string{"email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return []string{"email must be a valid email"}
	}
	r.Email = email
	return nil
}

// InviteParticipantResponse is the success payload for POST /trips/{tripID}/invites.
type InviteParticipantResponse struct {
	ParticipantID string `json:"participant_id"`
}

// InviteParticipant godoc
// @Summary Invite a participant to a trip
// @Description Creates a pending participant for the email and sends an invitation with a personal confirmation link. Repeat invites to the same email create distinct participants.
// @Tags participants
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Param body body controllers.InviteParticipantRequest true "Invitee email"
// @Success 201 {object} helpers.APIResponse "data: controllers.InviteParticipantResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/{tripID}/invites [post]
func (c *ParticipantController) InviteParticipant(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	var req InviteParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	participant, err := c.Service.InviteParticipant(r.Context(), tripID, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "trip not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, InviteParticipantResponse{ParticipantID: participant.ID})
}

// ConfirmParticipant godoc
// @Summary Confirm a participant
// @Description Target of the confirmation link mailed to an invitee. Idempotent: confirming twice succeeds without further state change.
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data: domain.Participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{participantID}/confirm [get]
func (c *ParticipantController) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("participantID")
	if participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing participantID")
		return
	}
	if !uuidRegex.MatchString(participantID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid participantID")
		return
	}

	participant, err := c.Service.ConfirmParticipant(r.Context(), participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "participant not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, participant)
}

// ListParticipants godoc
// @Summary List trip participants
// @Tags participants
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data: []domain.Participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/{tripID}/participants [get]
func (c *ParticipantController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	participants, err := c.Service.ListParticipants(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "trip not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, participants)
}
