package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/daybook/daybook/internal/rest"
	log "github.com/sirupsen/logrus"
)

type EventHandler struct {
	service EventService
}

type EventDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Date        string `json:"date"`
	Warning     string `json:"warning,omitempty"`
}

type CandidateDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Date        string `json:"date"`
}

type SelectionDTO struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
}

func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service: service}
}

// CreateEvent accepts a candidate and answers 201 with the stored event, 400
// for missing or malformed fields, or 409 for past or conflicting instants.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var candidateDTO CandidateDTO
	if err := json.NewDecoder(r.Body).Decode(&candidateDTO); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "invalid_body",
			Details: "request body must be a JSON event candidate",
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	accepted, err := h.service.Submit(r.Context(), Candidate{
		Name:        candidateDTO.Name,
		Description: candidateDTO.Description,
		Time:        candidateDTO.Time,
		Date:        candidateDTO.Date,
	})

	dto := eventToDTO(accepted)
	if err != nil {
		if rejection, ok := AsRejection(err); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rejectionStatus(rejection.Reason))
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   string(rejection.Reason),
				Details: rejection.Detail,
			}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		if errors.Is(err, ErrPersistenceFailure) {
			// The event is in the store; tell the caller the write failed.
			dto.Warning = "event was saved for this session but could not be written to storage"
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetEvents lists events, all of them or only those on ?date=YYYY-MM-DD.
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	var events []Event
	if date == "" {
		events = h.service.All()
	} else {
		if _, err := time.ParseInLocation(DateLayout, date, time.Local); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "invalid_date",
				Details: "'date' must be in YYYY-MM-DD format",
			}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		events = h.service.EventsOn(date)
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	log.Tracef("Events returned: %d", len(dtos))
}

// CheckSelection answers whether a day can be opened for event creation.
func (h *EventHandler) CheckSelection(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	selectable, err := h.service.Select(date)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "invalid_date",
			Details: "'date' must be in YYYY-MM-DD format",
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SelectionDTO{Date: date, Selectable: selectable}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func rejectionStatus(reason RejectionReason) int {
	switch reason {
	case ReasonInPast, ReasonConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Time:        e.Time,
		Date:        e.Date,
	}
}
