package scheduling

import "fmt"

// LunchLabel marks the divider row in a slot table.
const LunchLabel = "Lunch"

// SlotTable is the fixed grid of rows making up one working day. Every row
// is a bookable 30-minute mark except the single lunch divider, which takes
// up one row of the grid but zero bookable time. The table is identical for
// every working day.
type SlotTable struct {
	labels     []string
	lunchIndex int // -1 when the table has no lunch divider
}

// NewSlotTable builds a table from ordered row labels. lunchIndex is the row
// occupied by the lunch divider, or -1 for a table without one.
func NewSlotTable(labels []string, lunchIndex int) (SlotTable, error) {
	if len(labels) == 0 {
		return SlotTable{}, fmt.Errorf("slot table must have at least one row")
	}
	if lunchIndex < -1 || lunchIndex >= len(labels) {
		return SlotTable{}, fmt.Errorf("lunch index %d out of range for %d rows", lunchIndex, len(labels))
	}
	prev := ""
	for i, label := range labels {
		if i == lunchIndex {
			continue
		}
		if prev != "" && label <= prev {
			return SlotTable{}, fmt.Errorf("slot labels must be strictly increasing: %q after %q", label, prev)
		}
		prev = label
	}
	out := SlotTable{labels: make([]string, len(labels)), lunchIndex: lunchIndex}
	copy(out.labels, labels)
	return out, nil
}

// DefaultSlotTable is the production workshop day: 09:00 to 12:00 and 13:30
// to 17:30 in half-hour slots, with the lunch divider between them. 17 rows,
// 16 of them bookable.
func DefaultSlotTable() SlotTable {
	return SlotTable{
		labels: []string{
			"09:00", "09:30",
			"10:00", "10:30",
			"11:00", "11:30",
			"12:00",
			LunchLabel,
			"13:30",
			"14:00", "14:30",
			"15:00", "15:30",
			"16:00", "16:30",
			"17:00", "17:30",
		},
		lunchIndex: 7,
	}
}

// Rows returns the number of rows in the table, lunch divider included.
func (t SlotTable) Rows() int {
	return len(t.labels)
}

// BookableSlots returns the number of bookable rows in the table.
func (t SlotTable) BookableSlots() int {
	if t.lunchIndex >= 0 {
		return len(t.labels) - 1
	}
	return len(t.labels)
}

// IsLunch reports whether row i is the lunch divider.
func (t SlotTable) IsLunch(i int) bool {
	return t.lunchIndex >= 0 && i == t.lunchIndex
}

// SlotIndex returns the row index for a bookable label.
func (t SlotTable) SlotIndex(label string) (int, bool) {
	for i, l := range t.labels {
		if l == label && !t.IsLunch(i) {
			return i, true
		}
	}
	return 0, false
}

// SlotLabel returns the label at row i.
func (t SlotTable) SlotLabel(i int) (string, error) {
	if i < 0 || i >= len(t.labels) {
		return "", fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	return t.labels[i], nil
}

// BookableFrom counts the bookable rows from start (inclusive) to the end of
// the working day.
func (t SlotTable) BookableFrom(start int) int {
	if start < 0 || start >= len(t.labels) {
		return 0
	}
	n := len(t.labels) - start
	if t.lunchIndex >= start {
		n--
	}
	return n
}

// validStart reports whether start is a bookable row index.
func (t SlotTable) validStart(start int) bool {
	return start >= 0 && start < len(t.labels) && !t.IsLunch(start)
}
