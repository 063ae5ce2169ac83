package scheduling

import (
	"fmt"

	"garagedesk/models"
)

// ConflictResult is the outcome of an overlap check. A conflict is a normal
// result, not an error: the caller turns it into a user-facing rejection.
type ConflictResult struct {
	Conflict bool
	With     *models.Appointment // First conflicting appointment, when any
}

// SameTechnician reports whether two references identify the same
// technician. A field is only compared when both sides carry it, so a
// missing id can never produce a false positive against a name-only legacy
// record.
func SameTechnician(a, b models.TechnicianRef) bool {
	if a.ID != "" && b.ID != "" {
		return a.ID == b.ID
	}
	if a.Name != "" && b.Name != "" {
		return a.Name == b.Name
	}
	return false
}

// sameJob reports whether ex is the candidate itself or one of its rollover
// siblings, either of which is excluded from the conflict set on edit.
func sameJob(candidate, ex models.Appointment) bool {
	if candidate.ID != "" && candidate.ID == ex.ID {
		return true
	}
	if candidate.RolloverGroupID != "" && candidate.RolloverGroupID == ex.RolloverGroupID {
		return true
	}
	return false
}

// HasConflict checks a candidate appointment against the existing bookings
// of the same technician, walking forward across working days when the
// candidate's duration spills past its start day. Existing records are
// day-bounded, so only the candidate walks.
//
// The occupied row range of every appointment comes from ComputeSpan, and
// ranges intersect half-open: [s1,e1) and [s2,e2) clash iff s1 < e2 && s2 < e1.
// Appointments that merely touch do not conflict.
func (c *Calendar) HasConflict(candidate models.Appointment, existing []models.Appointment) (ConflictResult, error) {
	if err := c.validateCandidate(candidate); err != nil {
		return ConflictResult{}, err
	}

	cursor, err := ParseDate(candidate.Date)
	if err != nil {
		return ConflictResult{}, err
	}

	remaining := candidate.DurationSlots
	start := candidate.StartSlot

	for iter := 0; remaining > 0; iter++ {
		if iter >= c.MaxIterations {
			return ConflictResult{}, fmt.Errorf("%w: conflict walk for %s", ErrIterationBound, candidate.Date)
		}

		today := min(remaining, c.Table.BookableFrom(start))
		span, err := c.Table.ComputeSpan(start, today)
		if err != nil {
			return ConflictResult{}, err
		}

		cursorDate := FormatDate(cursor)
		for i := range existing {
			ex := &existing[i]
			if ex.Date != cursorDate || sameJob(candidate, *ex) {
				continue
			}
			if !SameTechnician(candidate.Technician, ex.Technician) {
				continue
			}
			exSpan, err := c.Table.ComputeSpan(ex.StartSlot, ex.DurationSlots)
			if err != nil {
				return ConflictResult{}, fmt.Errorf("existing appointment %s has an invalid span: %w", ex.ID, err)
			}
			if start < exSpan.EndSlot && span.EndSlot > ex.StartSlot {
				return ConflictResult{Conflict: true, With: ex}, nil
			}
		}

		remaining -= today
		if remaining > 0 {
			cursor, err = c.NextWorkingDay(cursor)
			if err != nil {
				return ConflictResult{}, err
			}
			start = 0
		}
	}

	return ConflictResult{}, nil
}

// validateCandidate applies the request-level sanity checks shared by the
// conflict walk and the splitter.
func (c *Calendar) validateCandidate(candidate models.Appointment) error {
	if candidate.DurationSlots <= 0 {
		return ErrInvalidDuration
	}
	if candidate.DurationSlots > c.Table.BookableSlots()*c.MaxIterations {
		return fmt.Errorf("%w: %d slots cannot fit within %d working days",
			ErrInvalidDuration, candidate.DurationSlots, c.MaxIterations)
	}
	if !c.Table.validStart(candidate.StartSlot) {
		return ErrInvalidStartSlot
	}
	return nil
}
