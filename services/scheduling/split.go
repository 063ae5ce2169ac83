package scheduling

import (
	"context"
	"fmt"

	"garagedesk/models"
)

// FetchAppointments retrieves the stored appointments for one date. The
// splitter uses it to pull each tail day's bookings before committing to a
// multi-day plan.
type FetchAppointments func(ctx context.Context, date string) ([]models.Appointment, error)

// PlanSegments divides a candidate into day-bounded segments. A candidate
// that fits between its start slot and the end of the working day comes back
// unchanged as a single segment. Anything longer becomes a head segment
// filling the rest of the start day plus tail segments on subsequent working
// days, each starting at the first slot. A job may roll over any number of
// days, bounded only by MaxIterations.
//
// The planner has no side effects: segment ids, rollover linkage and
// persistence belong to the caller.
func (c *Calendar) PlanSegments(candidate models.Appointment) ([]models.Appointment, error) {
	if err := c.validateCandidate(candidate); err != nil {
		return nil, err
	}

	cursor, err := ParseDate(candidate.Date)
	if err != nil {
		return nil, err
	}

	remaining := candidate.DurationSlots
	start := candidate.StartSlot
	var segments []models.Appointment

	for iter := 0; remaining > 0; iter++ {
		if iter >= c.MaxIterations {
			return nil, fmt.Errorf("%w: segment plan for %s", ErrIterationBound, candidate.Date)
		}

		take := min(remaining, c.Table.BookableFrom(start))
		seg := candidate
		seg.Date = FormatDate(cursor)
		seg.StartSlot = start
		seg.DurationSlots = take
		seg.Segment = len(segments)
		segments = append(segments, seg)

		remaining -= take
		if remaining > 0 {
			cursor, err = c.NextWorkingDay(cursor)
			if err != nil {
				return nil, err
			}
			start = 0
		}
	}

	return segments, nil
}

// PlanSegmentsChecked plans the segments and verifies every one of them
// against the bookings already stored for its day, fetched through the
// supplied callback. Scheduling is all-or-nothing: one conflicting segment
// rejects the whole plan and no segments are returned.
func (c *Calendar) PlanSegmentsChecked(ctx context.Context, candidate models.Appointment, fetch FetchAppointments) ([]models.Appointment, ConflictResult, error) {
	segments, err := c.PlanSegments(candidate)
	if err != nil {
		return nil, ConflictResult{}, err
	}

	for _, seg := range segments {
		existing, err := fetch(ctx, seg.Date)
		if err != nil {
			return nil, ConflictResult{}, fmt.Errorf("fetching appointments for %s: %w", seg.Date, err)
		}
		res, err := c.HasConflict(seg, existing)
		if err != nil {
			return nil, ConflictResult{}, err
		}
		if res.Conflict {
			return nil, res, nil
		}
	}

	return segments, ConflictResult{}, nil
}
