package scheduling

import (
	"errors"
	"testing"
	"time"
)

func testCalendar() *Calendar {
	return NewCalendar(DefaultSlotTable(), IrishHolidays())
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWorkingDay(t *testing.T) {
	cal := testCalendar()
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"ordinary Wednesday", date(2026, time.September, 2), true},
		{"Saturday", date(2026, time.September, 5), false},
		{"Sunday", date(2026, time.September, 6), false},
		{"New Year's Day", date(2026, time.January, 1), false},
		{"St Patrick's Day", date(2026, time.March, 17), false},
		{"Christmas Day", date(2026, time.December, 25), false},
		{"February bank holiday (first Monday)", date(2026, time.February, 2), false},
		{"August bank holiday (first Monday)", date(2026, time.August, 3), false},
		{"October bank holiday (last Monday)", date(2026, time.October, 26), false},
		{"Monday after October bank holiday week", date(2026, time.October, 19), true},
		{"day before February bank holiday", date(2026, time.January, 30), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.IsWorkingDay(tc.date); got != tc.want {
				t.Errorf("IsWorkingDay(%s): want %v, got %v", FormatDate(tc.date), tc.want, got)
			}
		})
	}
}

func TestIsWorkingDay_Deterministic(t *testing.T) {
	cal := testCalendar()
	d := date(2026, time.June, 1) // June bank holiday
	first := cal.IsWorkingDay(d)
	for i := 0; i < 10; i++ {
		if cal.IsWorkingDay(d) != first {
			t.Fatal("IsWorkingDay changed its answer for the same date")
		}
	}
}

func TestNextWorkingDay(t *testing.T) {
	cal := testCalendar()
	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{"midweek", date(2026, time.September, 2), date(2026, time.September, 3)},
		{"Friday skips the weekend", date(2026, time.September, 4), date(2026, time.September, 7)},
		{"weekend plus bank holiday", date(2026, time.July, 31), date(2026, time.August, 4)},
		{"before Christmas block", date(2026, time.December, 24), date(2026, time.December, 28)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cal.NextWorkingDay(tc.from)
			if err != nil {
				t.Fatalf("NextWorkingDay(%s): %v", FormatDate(tc.from), err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("NextWorkingDay(%s): want %s, got %s", FormatDate(tc.from), FormatDate(tc.want), FormatDate(got))
			}
			if !got.After(tc.from) {
				t.Errorf("NextWorkingDay must strictly advance, got %s from %s", FormatDate(got), FormatDate(tc.from))
			}
			if !cal.IsWorkingDay(got) {
				t.Errorf("NextWorkingDay returned a non-working day %s", FormatDate(got))
			}
		})
	}
}

func TestNextWorkingDay_HorizonExceeded(t *testing.T) {
	cal := testCalendar()
	cal.Horizon = 3
	// Friday 31 July 2026: Saturday, Sunday and the August bank holiday
	// exhaust a 3-day horizon.
	_, err := cal.NextWorkingDay(date(2026, time.July, 31))
	if !errors.Is(err, ErrNoWorkingDay) {
		t.Errorf("want ErrNoWorkingDay, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-02")
	if err != nil {
		t.Fatal(err)
	}
	if FormatDate(d) != "2026-09-02" {
		t.Errorf("round trip: got %s", FormatDate(d))
	}
	if _, err := ParseDate("Wed Sep 02 2026"); err == nil {
		t.Error("legacy toDateString format must be rejected by the core")
	}
}
