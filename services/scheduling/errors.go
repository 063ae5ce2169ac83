package scheduling

import "errors"

var (
	// ErrInvalidDuration rejects a candidate whose duration is zero, negative,
	// or beyond what the walk bound could ever place.
	ErrInvalidDuration = errors.New("appointment duration must be at least one slot")

	// ErrInvalidStartSlot rejects a start index outside the table or on the
	// lunch divider row.
	ErrInvalidStartSlot = errors.New("start slot is not a bookable row")

	// ErrSlotOutOfRange is returned by label lookups past the end of the table.
	ErrSlotOutOfRange = errors.New("slot index out of range")

	// ErrNoWorkingDay means the calendar walked its whole search horizon
	// without hitting a working day. Almost always a holiday ruleset mistake.
	ErrNoWorkingDay = errors.New("no working day found within search horizon")

	// ErrIterationBound means a day-by-day walk ran past its safety cap.
	// This indicates a logic defect, not a bad request.
	ErrIterationBound = errors.New("slot walk exceeded iteration bound")
)
