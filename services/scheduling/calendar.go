package scheduling

import (
	"fmt"
	"time"
)

// DateLayout is the storage format for appointment dates.
const DateLayout = "2006-01-02"

// ParseDate parses a stored "YYYY-MM-DD" date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate renders a date in the storage format.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// FixedHoliday is a year-independent month/day closure, e.g. Dec 25.
type FixedHoliday struct {
	Month time.Month
	Day   int
}

// WeekdayHoliday is a computed closure: the first or last occurrence of a
// weekday within a month, resolved per year. Covers the bank holidays.
type WeekdayHoliday struct {
	Month   time.Month
	Weekday time.Weekday
	Last    bool // false = first occurrence, true = last
}

// HolidayRules is the full closure ruleset for a site.
type HolidayRules struct {
	Fixed    []FixedHoliday
	Weekdays []WeekdayHoliday
}

// IrishHolidays returns the ruleset for the garage's Irish sites: New Year's
// Day, St Patrick's Day, Christmas Day, St Stephen's Day, the February, May,
// June and August bank holidays, and the October bank holiday.
func IrishHolidays() HolidayRules {
	return HolidayRules{
		Fixed: []FixedHoliday{
			{Month: time.January, Day: 1},
			{Month: time.March, Day: 17},
			{Month: time.December, Day: 25},
			{Month: time.December, Day: 26},
		},
		Weekdays: []WeekdayHoliday{
			{Month: time.February, Weekday: time.Monday},
			{Month: time.May, Weekday: time.Monday},
			{Month: time.June, Weekday: time.Monday},
			{Month: time.August, Weekday: time.Monday},
			{Month: time.October, Weekday: time.Monday, Last: true},
		},
	}
}

// Calendar combines the day grid with the working-day ruleset. All methods
// are pure; a Calendar is safe for concurrent use.
type Calendar struct {
	Table SlotTable
	Rules HolidayRules

	// Horizon bounds NextWorkingDay's search, in calendar days.
	Horizon int
	// MaxIterations bounds the day-by-day walks in the conflict check and
	// the splitter.
	MaxIterations int
}

const (
	defaultHorizon       = 60
	defaultMaxIterations = 100
)

// NewCalendar builds a calendar with the default search bounds.
func NewCalendar(table SlotTable, rules HolidayRules) *Calendar {
	return &Calendar{
		Table:         table,
		Rules:         rules,
		Horizon:       defaultHorizon,
		MaxIterations: defaultMaxIterations,
	}
}

// IsWorkingDay reports whether the workshop is open on the given date.
// Saturdays, Sundays and every configured holiday are closed.
func (c *Calendar) IsWorkingDay(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	for _, h := range c.Rules.Fixed {
		if date.Month() == h.Month && date.Day() == h.Day {
			return false
		}
	}
	for _, h := range c.Rules.Weekdays {
		if date.Month() != h.Month {
			continue
		}
		if date.Day() == nthWeekdayOfMonth(date.Year(), h.Month, h.Weekday, h.Last) {
			return false
		}
	}
	return true
}

// NextWorkingDay returns the first working day strictly after date. The
// search is bounded by Horizon; running past it returns ErrNoWorkingDay,
// which points at a broken holiday ruleset rather than a bad request.
func (c *Calendar) NextWorkingDay(date time.Time) (time.Time, error) {
	d := date
	for i := 0; i < c.Horizon; i++ {
		d = d.AddDate(0, 0, 1)
		if c.IsWorkingDay(d) {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: searched %d days from %s", ErrNoWorkingDay, c.Horizon, FormatDate(date))
}

// nthWeekdayOfMonth returns the day-of-month of the first (or last)
// occurrence of weekday in the given month and year.
func nthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, last bool) int {
	if last {
		// Day 0 of the next month is the last day of this one.
		end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
		return end.Day() - int((end.Weekday()-weekday+7)%7)
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return 1 + int((weekday-start.Weekday()+7)%7)
}
