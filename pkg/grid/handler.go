package grid

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/daybook/daybook/internal/rest"
	"github.com/daybook/daybook/internal/utils"
	"github.com/daybook/daybook/pkg/event"
)

type Handler struct {
	service event.EventService
	clock   utils.Clock
}

func NewHandler(service event.EventService) *Handler {
	return &Handler{service: service, clock: &utils.SystemClock{}}
}

// GetMonth returns the full grid for ?year=&month=, one entry per day.
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, yearErr := strconv.Atoi(r.URL.Query().Get("year"))
	month, monthErr := strconv.Atoi(r.URL.Query().Get("month"))
	if yearErr != nil || monthErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "invalid_month",
			Details: "'year' and 'month' must be numbers",
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	grid, err := BuildMonth(year, time.Month(month), h.clock.Now(), h.service.EventsOn)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "invalid_month",
			Details: err.Error(),
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(grid); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
