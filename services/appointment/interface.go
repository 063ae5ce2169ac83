// File: services/appointment/interface.go
package appointment

import (
	"context"

	"garagedesk/models"
)

// DayView is the calendar page payload for one date: the slot grid plus the
// day's appointments with their rendered spans.
type DayView struct {
	Date         string       `json:"date"`
	WorkingDay   bool         `json:"workingDay"`
	Slots        []string     `json:"slots"`
	Appointments []RenderedAppointment `json:"appointments"`
}

// RenderedAppointment pairs an appointment with its grid footprint so the
// client never re-derives the span walk.
type RenderedAppointment struct {
	models.Appointment
	SlotsConsumed int    `json:"slotsConsumed"`
	EndSlot       int    `json:"endSlot"`
	TimeRange     string `json:"timeRange"` // e.g. "09:00 - 12:00"
}

// Service books, edits and removes appointments, enforcing the overlap and
// rollover rules. A multi-day job is handled as one logical unit throughout.
type Service interface {
	// Save books a new job. The candidate's duration may exceed the start
	// day; segments are planned, checked and persisted all-or-nothing.
	Save(ctx context.Context, candidate models.Appointment) ([]models.Appointment, error)
	// Update re-plans an existing job (identified by any of its segment
	// ids) with new details, duration or position.
	Update(ctx context.Context, id string, candidate models.Appointment) ([]models.Appointment, error)
	// Delete removes a job and all of its rollover segments.
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Appointment, error)
	Day(ctx context.Context, date string) (*DayView, error)
	History(ctx context.Context, vehicleReg string) ([]models.Appointment, error)
}

// ConflictError reports a rejected save and the booking that blocks it.
type ConflictError struct {
	With *models.Appointment
}

func (e *ConflictError) Error() string {
	if e.With == nil {
		return "appointment conflicts with an existing booking"
	}
	return "appointment conflicts with an existing booking on " + e.With.Date
}
