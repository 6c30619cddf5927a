package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"confhub/internal/delivery/http/helpers"
	"confhub/internal/domain"
	"confhub/internal/filter"
)

// EventController serves the event catalog endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEventsResponse is the payload for GET /events. Filters echoes the
// normalized query string the request was interpreted as, so clients can
// use it as a canonical shareable link.
type ListEventsResponse struct {
	Events  []*domain.Event `json:"events"`
	Total   int             `json:"total"`
	Filters string          `json:"filters"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListEvents godoc
// @Summary List events
// @Description Returns events matching the given filters, ordered by start date. Multi-value filters (roles, techCategories, designCategories) are comma separated and match if any value matches; distinct filters must all match.
// @Tags events
// @Produce json
// @Param roles query string false "Target roles, comma separated"
// @Param techCategories query string false "Tech categories, comma separated"
// @Param designCategories query string false "Design categories, comma separated"
// @Param format query string false "Event format" Enums(online, offline, hybrid)
// @Param size query string false "Capacity bucket" Enums(small, medium, large)
// @Param priceType query string false "Price filter" Enums(free, paid, early_bird)
// @Param region query string false "Region name"
// @Param period query string false "Relative period" Enums(this_week, next_week, this_month, next_month)
// @Param keyword query string false "Keyword matched against title and description"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains events, total, and the normalized filter string"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	filters := filter.Parse(r.URL.Query())
	events, err := c.Service.ListEvents(r.Context(), filters)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Events:  events,
		Total:   len(events),
		Filters: filter.Encode(filters),
	})
}

// GetEventSuccessResponse is the success response envelope for GET /events/{slug} (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// EventListSuccessResponse is the success response envelope for the featured
// and upcoming listings (200).
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// FeaturedEvents godoc
// @Summary List featured events
// @Description Returns events flagged as featured, ordered by start date.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListSuccessResponse "data contains featured events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/featured [get]
func (c *EventController) FeaturedEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.FeaturedEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// UpcomingEvents godoc
// @Summary List upcoming events
// @Description Returns the next events that have not started yet, ordered by start date. An invalid or missing limit falls back to the default.
// @Tags events
// @Produce json
// @Param limit query int false "Maximum number of events (default 8)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains upcoming events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/upcoming [get]
func (c *EventController) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = v
		}
	}
	events, err := c.Service.UpcomingEvents(r.Context(), limit)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
