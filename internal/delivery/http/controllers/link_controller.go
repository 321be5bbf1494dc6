package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"planner/internal/delivery/http/helpers"
	"planner/internal/domain"
)

type LinkController struct {
	Logger  *slog.Logger
	Service domain.LinkService
}

func NewLinkController(logger *slog.Logger, svc domain.LinkService) *LinkController {
	return &LinkController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateLinkRequest is the request body for POST /trips/{tripID}/links.
type CreateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Validate implements helpers.Validator.
func (r *CreateLinkRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "title is required")
	}
	u, err := url.ParseRequestURI(strings.TrimSpace(r.URL))
	if err != nil || u.Host == "" {
		errs = append(errs, "url must be a valid absolute URL")
	}
	return errs
}

// CreateLinkResponse is the success payload for POST /trips/{tripID}/links.
type CreateLinkResponse struct {
	LinkID string `json:"link_id"`
}

// CreateLink godoc
// @Summary Attach a reference link to a trip
// @Tags links
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Param body body controllers.CreateLinkRequest true "Link fields"
// @Success 201 {object} helpers.APIResponse "data: controllers.CreateLinkResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/{tripID}/links [post]
func (c *LinkController) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	var req CreateLinkRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	link, err := c.Service.CreateLink(r.Context(), tripID, req.Title, req.URL)
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

	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateLinkResponse{LinkID: link.ID})
}

// ListLinks godoc
// @Summary List trip links
// @Tags links
// @Produce json
// @Param tripID path string true "Trip ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data: []domain.Link"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/{tripID}/links [get]
func (c *LinkController) ListLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}

	links, err := c.Service.ListLinks(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "trip not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, links)
}
