package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"planner/internal/delivery/http/helpers"
	"planner/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateActivityRequest is the request body for POST /trips/{tripID}/activities.
type CreateActivityRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`

	date time.Time
}

// Validate implements helpers.Validator.
func (r *CreateActivityRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "title is required")
	}
	t, err := parseDate(r.Date)
	if err != nil {
		errs = append(errs, "date must be a valid date")
	} else {
		r.date = t
	}
	return errs
}

// CreateActivityResponse is the success payload for POST /trips/{tripID}/activities.
type CreateActivityResponse struct {
	ActivityID string `json:"activity_id"`
}

// CreateActivity godoc
// @Summary Create an activity on a trip
// @Description Persists a dated activity. The date must fall within the trip's date range, boundaries included.
// @Tags activities
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Param body body controllers.CreateActivityRequest true "Activity fields"
// @Success 201 {object} helpers.APIResponse "data: controllers.CreateActivityResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, activity_out_of_range"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/{tripID}/activities [post]
func (c *ActivityController) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	var req CreateActivityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	activity, err := c.Service.CreateActivity(r.Context(), tripID, req.Title, req.date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "trip not found")
			return
		}
		if errors.Is(err, domain.ErrActivityOutOfRange) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeActivityOutOfRange, "activity date must be within the trip dates")
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

	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateActivityResponse{ActivityID: activity.ID})
}

// ListActivities godoc
// @Summary List trip activities
// @Description Returns all activities of the trip ordered by date ascending, ties broken by creation order.
// @Tags activities
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data: []domain.Activity"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/{tripID}/activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	activities, err := c.Service.ListActivities(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "trip not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, activities)
}
