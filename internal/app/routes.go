package app

import (
	"github.com/daybook/daybook/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Events
	r.HandleFunc("/api/event", deps.EventHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/event", deps.EventHandler.GetEvents).Methods("GET")

	// Date selection gate
	r.HandleFunc("/api/selection", deps.EventHandler.CheckSelection).Queries("date", "{date}").Methods("GET")

	// Calendar grid
	r.HandleFunc("/api/grid", deps.GridHandler.GetMonth).Queries("year", "{year}", "month", "{month}").Methods("GET")

	// iCalendar export
	r.HandleFunc("/api/calendar.ics", deps.ExportHandler.GetCalendar).Methods("GET")
}
