package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected int
	}{
		{"january", 2026, time.January, 31},
		{"april", 2026, time.April, 30},
		{"february common year", 2026, time.February, 28},
		{"february leap year", 2024, time.February, 29},
		{"february century non-leap", 2100, time.February, 28},
		{"february 400-year leap", 2000, time.February, 29},
		{"december", 2026, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysIn(tt.year, tt.month))
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(2026, time.October))
	assert.Error(t, Validate(0, time.October))
	assert.Error(t, Validate(2026, 0))
	assert.Error(t, Validate(2026, 13))
}

func TestFormatDay(t *testing.T) {
	assert.Equal(t, "2026-02-05", FormatDay(2026, time.February, 5))
	assert.Equal(t, "2026-11-30", FormatDay(2026, time.November, 30))
	assert.Equal(t, "2026-02", FormatPeriod(2026, time.February))
}

func TestGridFebruary2026(t *testing.T) {
	// Feb 2026 starts on a Sunday.
	weeks := Grid(2026, time.February)

	require.Len(t, weeks, 5)
	assert.Equal(t, [7]int{0, 0, 0, 0, 0, 0, 1}, weeks[0])
	assert.Equal(t, [7]int{2, 3, 4, 5, 6, 7, 8}, weeks[1])
	assert.Equal(t, [7]int{23, 24, 25, 26, 27, 28, 0}, weeks[4])
}

func TestGridContainsEveryDayOnce(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		seen := map[int]int{}
		for _, week := range Grid(2026, m) {
			for _, d := range week {
				if d != 0 {
					seen[d]++
				}
			}
		}
		assert.Len(t, seen, DaysIn(2026, m), "month %s", m)
		for d, n := range seen {
			assert.Equal(t, 1, n, "day %d of %s", d, m)
		}
	}
}

func TestGridMondayStart(t *testing.T) {
	// Jun 2026 starts on a Monday, so no leading padding.
	weeks := Grid(2026, time.June)
	assert.Equal(t, 1, weeks[0][0])
}

func TestShift(t *testing.T) {
	y, m := Shift(2026, time.December, 1)
	assert.Equal(t, 2027, y)
	assert.Equal(t, time.January, m)

	y, m = Shift(2026, time.January, -1)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.December, m)

	y, m = Shift(2026, time.May, 0)
	assert.Equal(t, 2026, y)
	assert.Equal(t, time.May, m)
}

func TestParseMonthYear(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("defaults to current month", func(t *testing.T) {
		y, m, err := ParseMonthYear("", "", now)
		require.NoError(t, err)
		assert.Equal(t, 2026, y)
		assert.Equal(t, time.October, m)
	})

	t.Run("explicit month and year", func(t *testing.T) {
		y, m, err := ParseMonthYear("2", "2024", now)
		require.NoError(t, err)
		assert.Equal(t, 2024, y)
		assert.Equal(t, time.February, m)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, _, err := ParseMonthYear("13", "", now)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --month")
	})

	t.Run("invalid year", func(t *testing.T) {
		_, _, err := ParseMonthYear("", "abc", now)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --year")
	})
}
