package export

import (
	"net/http"

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

// GetCalendar serves the whole store as an iCalendar file.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	document, err := ICS(h.service.All(), h.clock.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"daybook.ics\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(document)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
