package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"confhub/internal/adapters/ical"
	"confhub/internal/calendar"
	"confhub/internal/delivery/http/helpers"
	"confhub/internal/domain"
	"confhub/internal/filter"
)

// CalendarController serves the date-grouped calendar views of the catalog.
type CalendarController struct {
	Logger   *slog.Logger
	Service  domain.EventService
	Location *time.Location
	Now      func() time.Time
}

func NewCalendarController(logger *slog.Logger, svc domain.EventService, loc *time.Location) *CalendarController {
	return &CalendarController{
		Logger:   logger,
		Service:  svc,
		Location: loc,
		Now:      time.Now,
	}
}

// MonthCalendarResponse is the payload for GET /calendar. Days covers the
// full visible grid, week-aligned around the month, so its length is always
// a multiple of seven. EventsByDate holds only dates that have events.
type MonthCalendarResponse struct {
	Month        string                     `json:"month"`
	Days         []string                   `json:"days"`
	EventsByDate map[string][]*domain.Event `json:"events_by_date"`
	Summaries    []calendar.DaySummary      `json:"summaries"`
	Total        int                        `json:"total"`
}

// MonthCalendarSuccessResponse is the success response envelope for GET /calendar (200).
type MonthCalendarSuccessResponse struct {
	Data  MonthCalendarResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// MonthCalendar godoc
// @Summary Month calendar view
// @Description Returns the week-aligned calendar grid for a month with events grouped by local date. A missing or malformed month parameter falls back to the current month.
// @Tags calendar
// @Produce json
// @Param month query string false "Month in YYYY-MM format"
// @Success 200 {object} controllers.MonthCalendarSuccessResponse "data contains the grid, grouped events, and per-day summaries"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar [get]
func (c *CalendarController) MonthCalendar(w http.ResponseWriter, r *http.Request) {
	year, month := calendar.ResolveMonthParam(r.URL.Query().Get("month"), c.Now().In(c.Location))

	grouped, err := c.Service.GroupedByMonth(r.Context(), year, month)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	days := calendar.CalendarDays(year, month, c.Location)
	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = calendar.DateKey(d, c.Location)
	}
	total := 0
	for _, evs := range grouped {
		total += len(evs)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MonthCalendarResponse{
		Month:        fmt.Sprintf("%04d-%02d", year, month),
		Days:         keys,
		EventsByDate: grouped,
		Summaries:    calendar.DaySummaries(days, grouped, month, c.Location),
		Total:        total,
	})
}

// TwoWeeksResponse is the payload for GET /calendar/two-weeks: fourteen
// consecutive days starting today, with events grouped by local date.
type TwoWeeksResponse struct {
	Days         []string                   `json:"days"`
	EventsByDate map[string][]*domain.Event `json:"events_by_date"`
	Total        int                        `json:"total"`
}

// TwoWeeksSuccessResponse is the success response envelope for GET /calendar/two-weeks (200).
type TwoWeeksSuccessResponse struct {
	Data  TwoWeeksResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TwoWeeks godoc
// @Summary Two week calendar view
// @Description Returns the fourteen days starting today with events grouped by local date.
// @Tags calendar
// @Produce json
// @Success 200 {object} controllers.TwoWeeksSuccessResponse "data contains the day list and grouped events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/two-weeks [get]
func (c *CalendarController) TwoWeeks(w http.ResponseWriter, r *http.Request) {
	days := calendar.TwoWeeksDays(c.Now().In(c.Location))
	start := calendar.StartOfDay(days[0], c.Location)
	end := calendar.StartOfDay(days[len(days)-1], c.Location).AddDate(0, 0, 1).Add(-time.Nanosecond)

	grouped, err := c.Service.GroupedByRange(r.Context(), start, end)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = calendar.DateKey(d, c.Location)
	}
	total := 0
	for _, evs := range grouped {
		total += len(evs)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, TwoWeeksResponse{
		Days:         keys,
		EventsByDate: grouped,
		Total:        total,
	})
}

// ICSFeed godoc
// @Summary iCalendar feed
// @Description Returns the catalog as a text/calendar publish feed for calendar subscriptions. Accepts the same query parameters as GET /events to scope the feed.
// @Tags calendar
// @Produce plain
// @Success 200 {string} string "iCalendar document"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar.ics [get]
func (c *CalendarController) ICSFeed(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context(), filter.Parse(r.URL.Query()))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="confhub.ics"`)
	_, _ = w.Write([]byte(ical.BuildCalendar(events)))
}
