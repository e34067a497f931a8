package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RejectionReason classifies why a candidate was turned down. Every rejection
// is user-correctable and leaves the store untouched.
type RejectionReason string

const (
	ReasonMissingField  RejectionReason = "missing_field"
	ReasonInvalidFormat RejectionReason = "invalid_format"
	ReasonInPast        RejectionReason = "in_past"
	ReasonConflict      RejectionReason = "conflict"
)

// RejectionError is the typed outcome of a failed validation.
type RejectionError struct {
	Reason RejectionReason
	Detail string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

func reject(reason RejectionReason, detail string) (Event, error) {
	return Event{}, &RejectionError{Reason: reason, Detail: detail}
}

// AsRejection unwraps err into a RejectionError, if it is one.
func AsRejection(err error) (*RejectionError, bool) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

// Validate decides whether a candidate becomes an event. It is a pure
// function: now is supplied by the caller and the store contents are passed
// in, so the same inputs always produce the same outcome.
//
// Checks run in order and stop at the first failure: required fields, date and
// time parse, not in the past (a candidate equal to now is accepted), no
// existing event on the exact same instant. On acceptance the returned event
// carries a fresh id and the date and time normalized from the parsed instant.
func Validate(c Candidate, existing []Event, now time.Time) (Event, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" || strings.TrimSpace(c.Time) == "" || strings.TrimSpace(c.Date) == "" {
		return reject(ReasonMissingField, "name, time and date are required")
	}

	instant, err := CombineInstant(c.Date, c.Time)
	if err != nil {
		return reject(ReasonInvalidFormat, fmt.Sprintf("date must be %s and time must be %s", DateLayout, TimeLayout))
	}

	if instant.Before(now) {
		return reject(ReasonInPast, "an event cannot be created in the past")
	}

	for _, e := range existing {
		existingInstant, err := e.Instant()
		if err != nil {
			// A stored row that no longer parses cannot collide with anything.
			continue
		}
		if existingInstant.Equal(instant) {
			return reject(ReasonConflict, fmt.Sprintf("an event already exists at %s %s", e.Date, e.Time))
		}
	}

	return Event{
		ID:          uuid.NewString(),
		Name:        name,
		Description: c.Description,
		Time:        instant.Format(TimeLayout),
		Date:        instant.Format(DateLayout),
	}, nil
}
