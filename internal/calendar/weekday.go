package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// ParseWeekdays parses a weekday filter such as "mon,wed,fri", "weekdays" or
// "weekends". An empty string yields a nil filter.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "":
		return nil, nil
	case "weekdays", "every weekday":
		return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, nil
	case "weekends", "every weekend":
		return []time.Weekday{time.Saturday, time.Sunday}, nil
	}

	seen := make(map[time.Weekday]bool)
	var out []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		wd, ok := weekdayNames[part]
		if !ok {
			return nil, fmt.Errorf("unrecognized weekday %q", part)
		}
		if !seen[wd] {
			seen[wd] = true
			out = append(out, wd)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty weekday filter %q", s)
	}
	return out, nil
}

// CandidateDays returns the days of the month falling on one of the given
// weekdays, ascending. A nil filter returns every day of the month.
func CandidateDays(year int, month time.Month, weekdays []time.Weekday) ([]int, error) {
	days := DaysIn(year, month)
	if len(weekdays) == 0 {
		out := make([]int, days)
		for i := range out {
			out[i] = i + 1
		}
		return out, nil
	}

	byweekday := make([]rrule.Weekday, 0, len(weekdays))
	for _, wd := range weekdays {
		byweekday = append(byweekday, rruleWeekdays[wd])
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Byweekday: byweekday,
		Dtstart:   Date(year, month, 1),
		Until:     Date(year, month, days),
	})
	if err != nil {
		return nil, fmt.Errorf("building weekday rule: %w", err)
	}

	var out []int
	for _, t := range r.All() {
		out = append(out, t.Day())
	}
	return out, nil
}
