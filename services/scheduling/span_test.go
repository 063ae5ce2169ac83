package scheduling

import (
	"errors"
	"testing"
)

func TestComputeSpan_NoLunchCrossing(t *testing.T) {
	table := DefaultSlotTable()
	tests := []struct {
		name     string
		start    int
		duration int
		consumed int
		end      int
	}{
		{"morning only", 0, 4, 4, 4},
		{"single slot", 2, 1, 1, 3},
		{"ends exactly at noon", 4, 3, 3, 7},
		{"afternoon only", 8, 2, 2, 10},
		{"last slot of day", 16, 1, 1, 17},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			span, err := table.ComputeSpan(tc.start, tc.duration)
			if err != nil {
				t.Fatalf("ComputeSpan(%d, %d): %v", tc.start, tc.duration, err)
			}
			if span.SlotsConsumed != tc.consumed {
				t.Errorf("slots consumed: want %d, got %d", tc.consumed, span.SlotsConsumed)
			}
			if span.EndSlot != tc.end {
				t.Errorf("end slot: want %d, got %d", tc.end, span.EndSlot)
			}
			if span.SlotsConsumed != tc.duration {
				t.Errorf("span not crossing lunch must consume exactly its duration, got %d for %d", span.SlotsConsumed, tc.duration)
			}
		})
	}
}

func TestComputeSpan_LunchCrossingAddsOneRow(t *testing.T) {
	table := DefaultSlotTable()
	tests := []struct {
		name     string
		start    int
		duration int
		end      int
	}{
		{"noon into afternoon", 6, 2, 9},
		{"late morning block", 5, 3, 9},
		{"full day from open", 0, 16, 17},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			span, err := table.ComputeSpan(tc.start, tc.duration)
			if err != nil {
				t.Fatalf("ComputeSpan(%d, %d): %v", tc.start, tc.duration, err)
			}
			if want := tc.duration + 1; span.SlotsConsumed != want {
				t.Errorf("crossing span must consume duration+1 rows: want %d, got %d", want, span.SlotsConsumed)
			}
			if span.EndSlot != tc.end {
				t.Errorf("end slot: want %d, got %d", tc.end, span.EndSlot)
			}
		})
	}
}

func TestComputeSpan_Idempotent(t *testing.T) {
	table := DefaultSlotTable()
	first, err := table.ComputeSpan(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	second, err := table.ComputeSpan(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated calls diverged: %+v vs %+v", first, second)
	}
}

func TestComputeSpan_InvalidInput(t *testing.T) {
	table := DefaultSlotTable()

	if _, err := table.ComputeSpan(0, 0); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("zero duration: want ErrInvalidDuration, got %v", err)
	}
	if _, err := table.ComputeSpan(0, -2); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative duration: want ErrInvalidDuration, got %v", err)
	}
	if _, err := table.ComputeSpan(7, 1); !errors.Is(err, ErrInvalidStartSlot) {
		t.Errorf("lunch row start: want ErrInvalidStartSlot, got %v", err)
	}
	if _, err := table.ComputeSpan(17, 1); !errors.Is(err, ErrInvalidStartSlot) {
		t.Errorf("start past table: want ErrInvalidStartSlot, got %v", err)
	}
}

func TestSlotTable_Shape(t *testing.T) {
	table := DefaultSlotTable()
	if table.Rows() != 17 {
		t.Errorf("rows: want 17, got %d", table.Rows())
	}
	if table.BookableSlots() != 16 {
		t.Errorf("bookable slots: want 16, got %d", table.BookableSlots())
	}
	if !table.IsLunch(7) {
		t.Error("row 7 should be the lunch divider")
	}

	idx, ok := table.SlotIndex("13:30")
	if !ok || idx != 8 {
		t.Errorf("SlotIndex(13:30): want (8, true), got (%d, %v)", idx, ok)
	}
	if _, ok := table.SlotIndex(LunchLabel); ok {
		t.Error("the lunch divider must not resolve as a bookable slot")
	}
	if _, ok := table.SlotIndex("08:00"); ok {
		t.Error("unknown label must not resolve")
	}

	label, err := table.SlotLabel(0)
	if err != nil || label != "09:00" {
		t.Errorf("SlotLabel(0): want 09:00, got %q (%v)", label, err)
	}
	if _, err := table.SlotLabel(17); !errors.Is(err, ErrSlotOutOfRange) {
		t.Errorf("SlotLabel(17): want ErrSlotOutOfRange, got %v", err)
	}
}

func TestSlotTable_BookableFrom(t *testing.T) {
	table := DefaultSlotTable()
	tests := []struct {
		start int
		want  int
	}{
		{0, 16},
		{6, 10},
		{8, 9},
		{14, 3},
		{16, 1},
		{17, 0},
	}
	for _, tc := range tests {
		if got := table.BookableFrom(tc.start); got != tc.want {
			t.Errorf("BookableFrom(%d): want %d, got %d", tc.start, tc.want, got)
		}
	}
}

func TestNewSlotTable_Validation(t *testing.T) {
	if _, err := NewSlotTable(nil, -1); err == nil {
		t.Error("empty table should be rejected")
	}
	if _, err := NewSlotTable([]string{"09:00", "08:00"}, -1); err == nil {
		t.Error("non-increasing labels should be rejected")
	}
	if _, err := NewSlotTable([]string{"09:00"}, 3); err == nil {
		t.Error("out-of-range lunch index should be rejected")
	}
	table, err := NewSlotTable([]string{"09:00", "09:30", LunchLabel, "10:30"}, 2)
	if err != nil {
		t.Fatalf("valid table rejected: %v", err)
	}
	if table.BookableSlots() != 3 {
		t.Errorf("bookable slots: want 3, got %d", table.BookableSlots())
	}
}
