package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"confhub/internal/delivery/http/controllers"
	"confhub/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, calendarController *controllers.CalendarController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/featured", eventController.FeaturedEvents)
	mux.HandleFunc("GET /events/upcoming", eventController.UpcomingEvents)
	mux.HandleFunc("GET /events/{slug}", eventController.GetEventBySlug)

	// Calendar
	mux.HandleFunc("GET /calendar", calendarController.MonthCalendar)
	mux.HandleFunc("GET /calendar/two-weeks", calendarController.TwoWeeks)
	mux.HandleFunc("GET /calendar.ics", calendarController.ICSFeed)

	mux.HandleFunc("GET /healthz", healthz)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// healthz godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains status ok"
// @Router /healthz [get]
func healthz(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
