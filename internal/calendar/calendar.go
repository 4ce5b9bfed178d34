// Package calendar does the month arithmetic behind the board: day counts,
// Monday-first grids, period parsing and weekday filters.
package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the layout used for every exported date.
const DateLayout = "2006-01-02"

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Validate checks that year and month describe a usable period.
func Validate(year int, month time.Month) error {
	if year <= 0 {
		return fmt.Errorf("invalid year %d (expected a positive number)", year)
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("invalid month %d (expected 1-12)", int(month))
	}
	return nil
}

// Date returns the UTC midnight of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDay formats a day of the period as YYYY-MM-DD.
func FormatDay(year int, month time.Month, day int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, int(month), day)
}

// FormatPeriod formats the period as YYYY-MM.
func FormatPeriod(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, int(month))
}

// Grid lays the month out in Monday-first weeks. Cells outside the month are 0.
func Grid(year int, month time.Month) [][7]int {
	first := Date(year, month, 1)
	// Monday = 0 ... Sunday = 6
	offset := (int(first.Weekday()) + 6) % 7
	days := DaysIn(year, month)

	var weeks [][7]int
	var week [7]int
	col := offset
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// Shift moves the period by delta months.
func Shift(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// ParseMonthYear parses --month and --year flag values into a period.
// Empty values default to the current month and year.
func ParseMonthYear(monthFlag, yearFlag string, now time.Time) (int, time.Month, error) {
	year := now.Year()
	if yearFlag != "" {
		y, err := strconv.Atoi(yearFlag)
		if err != nil || y <= 0 {
			return 0, 0, fmt.Errorf("invalid --year value %q (expected a positive number)", yearFlag)
		}
		year = y
	}

	month := now.Month()
	if monthFlag != "" {
		m, err := strconv.Atoi(monthFlag)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid --month value %q (expected 1-12)", monthFlag)
		}
		month = time.Month(m)
	}

	return year, month, nil
}
