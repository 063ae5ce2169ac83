package scheduling

// Span is the footprint of an appointment on the day grid. EndSlot is
// exclusive, so the occupied row range is [startSlot, EndSlot).
type Span struct {
	SlotsConsumed int // Grid rows covered, lunch divider included
	EndSlot       int
}

// ComputeSpan walks the day grid from startSlot until durationSlots bookable
// slots are consumed or the table runs out. An ordinary row counts toward
// both the visual span and the duration; the lunch divider counts toward the
// visual span only. This is the single source of truth for appointment
// extent: the calendar layout and the conflict check must both use it, or
// the two drift apart.
func (t SlotTable) ComputeSpan(startSlot, durationSlots int) (Span, error) {
	if durationSlots <= 0 {
		return Span{}, ErrInvalidDuration
	}
	if !t.validStart(startSlot) {
		return Span{}, ErrInvalidStartSlot
	}

	remaining := durationSlots
	consumed := 0
	for i := startSlot; i < len(t.labels) && remaining > 0; i++ {
		consumed++
		if !t.IsLunch(i) {
			remaining--
		}
	}
	// A span ending exactly on the last morning slot must not drag the
	// divider along with it.
	if t.IsLunch(startSlot + consumed - 1) {
		consumed--
	}
	return Span{SlotsConsumed: consumed, EndSlot: startSlot + consumed}, nil
}
