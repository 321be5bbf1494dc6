package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"planner/internal/delivery/http/helpers"
	"planner/internal/domain"
)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// emailRegex is a light format check; deliverability is the mailer's problem.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

type TripController struct {
	Logger  *slog.Logger
	Service domain.TripService
}

func NewTripController(logger *slog.Logger, svc domain.TripService) *TripController {
	return &TripController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateTripRequest is the request body for POST /trips.
type CreateTripRequest struct {
	Destination    string   `json:"destination"`
	StartsAt       string   `json:"starts_at"`
	EndsAt         string   `json:"ends_at"`
	OwnerName      string   `json:"owner_name"`
	OwnerEmail     string   `json:"owner_email"`
	EmailsToInvite []string `json:"emails_to_invite"`

	startsAt time.Time
	endsAt   time.Time
}

// Validate implements helpers.Validator.
func (r *CreateTripRequest) Validate() []string {
	var errs []string
	if len(strings.TrimSpace(r.Destination)) < 4 {
		errs = append(errs, "destination must be at least 4 characters")
	}
	t, err := parseDate(r.StartsAt)
	if err != nil {
		errs = append(errs, "starts_at must be a valid date")
	} else {
		r.startsAt = t
	}
	t, err = parseDate(r.EndsAt)
	if err != nil {
		errs = append(errs, "ends_at must be a valid date")
	} else {
		r.endsAt = t
	}
	if strings.TrimSpace(r.OwnerName) == "" {
		errs = append(errs, "owner_name is required")
	}
	if !emailRegex.MatchString(r.OwnerEmail) {
		errs = append(errs, "owner_email must be a valid email")
	}
	for _, email := range r.EmailsToInvite {
		if !emailRegex.MatchString(email) {
			errs = append(errs, "emails_to_invite contains an invalid email: "+email)
		}
	}
	return errs
}

// CreateTripResponse is the success payload for POST /trips.
type CreateTripResponse struct {
	TripID string `json:"trip_id"`
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Creates a trip with a pre-confirmed owner participant and one pending participant per invited email, then emails the owner a confirmation link.
// @Tags trips
// @Accept json
// @Produce json
// @Param body body controllers.CreateTripRequest true "Trip fields"
// @Success 201 {object} helpers.APIResponse "data: controllers.CreateTripResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, invalid_start_date, invalid_end_date"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips [post]
func (c *TripController) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	trip, err := c.Service.CreateTrip(r.Context(), domain.CreateTripInput{
		Destination:    req.Destination,
		StartsAt:       req.startsAt,
		EndsAt:         req.endsAt,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		EmailsToInvite: req.EmailsToInvite,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStartDate) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeInvalidStartDate, "trip start date must not be in the past")
			return
		}
		if errors.Is(err, domain.ErrInvalidEndDate) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeInvalidEndDate, "trip end date must not be before the start date")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateTripResponse{TripID: trip.ID})
}

// GetTrip godoc
// @Summary Get a trip
// @Tags trips
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data: domain.Trip"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/{tripID} [get]
func (c *TripController) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	trip, err := c.Service.GetTrip(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "trip not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, trip)
}

// ConfirmTrip godoc
// @Summary Confirm a trip
// @Description Target of the confirmation link mailed to the trip owner. Idempotent: confirming an already confirmed trip succeeds without re-sending participant emails.
// @Tags trips
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data: domain.Trip"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/{tripID}/confirm [get]
func (c *TripController) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	trip, err := c.Service.ConfirmTrip(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "trip not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, trip)
}

// tripIDFromPath extracts and validates the tripID path value. On failure it
// writes a 400 response and returns ok=false.
func tripIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	tripID := r.PathValue("tripID")
	if tripID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing tripID")
		return "", false
	}
	if !uuidRegex.MatchString(tripID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid tripID")
		return "", false
	}
	return tripID, true
}
