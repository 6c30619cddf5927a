// Package calendar holds the date math and date-keyed grouping used by the
// list and month views. Everything is pure: reference instants and the
// calendar location are passed in, never read from the wall clock.
package calendar

import (
	"regexp"
	"strconv"
	"time"

	"confhub/internal/domain"
)

// WeekStart anchors week boundaries. Changing this changes period-filter
// results and grid alignment.
const WeekStart = time.Sunday

// DateKeyLayout is the canonical grouping-map key format.
const DateKeyLayout = "2006-01-02"

// DateKey renders the canonical zero-padded YYYY-MM-DD key for an instant,
// evaluated in the given calendar location.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateKeyLayout)
}

// StartOfDay truncates an instant to midnight in the given location.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns midnight of the WeekStart day of t's week.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	offset := int(day.Weekday()) - int(WeekStart)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// EndOfWeek returns the last instant of t's week.
func EndOfWeek(t time.Time, loc *time.Location) time.Time {
	return StartOfWeek(t, loc).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// MonthRange returns the first and last instants of a calendar month.
// Month is 1-indexed. Boundaries are taken in the given location, not
// UTC-normalized, matching how events are bucketed on the site.
func MonthRange(year, month int, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// ResolvePeriod maps a named period to a concrete inclusive instant range
// relative to now, in now's location. ok is false for unrecognized names.
func ResolvePeriod(period string, now time.Time) (start, end time.Time, ok bool) {
	loc := now.Location()
	switch period {
	case domain.PeriodThisWeek:
		return StartOfWeek(now, loc), EndOfWeek(now, loc), true
	case domain.PeriodNextWeek:
		next := now.AddDate(0, 0, 7)
		return StartOfWeek(next, loc), EndOfWeek(next, loc), true
	case domain.PeriodThisMonth:
		start, end = MonthRange(now.Year(), int(now.Month()), loc)
		return start, end, true
	case domain.PeriodNextMonth:
		next := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
		start, end = MonthRange(next.Year(), int(next.Month()), loc)
		return start, end, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// CalendarDays enumerates every cell of the month grid: the week containing
// the 1st through the week containing the last day, padded with lead/trail
// days from adjacent months. The result length is always a multiple of 7
// (35 or 42 for 7-day weeks).
func CalendarDays(year, month int, loc *time.Location) []time.Time {
	monthStart, monthEnd := MonthRange(year, month, loc)
	first := StartOfWeek(monthStart, loc)
	last := EndOfWeek(monthEnd, loc)

	var days []time.Time
	for d := first; d.Before(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// TwoWeeksDays returns 14 consecutive days starting from now's date,
// independent of calendar-month alignment.
func TwoWeeksDays(now time.Time) []time.Time {
	loc := now.Location()
	start := StartOfDay(now, loc)
	days := make([]time.Time, 14)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

var monthParamRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ResolveMonthParam parses a YYYY-MM query token. Malformed tokens or months
// outside 1-12 fall back to now's year and month; this never fails.
func ResolveMonthParam(s string, now time.Time) (year, month int) {
	year, month = now.Year(), int(now.Month())
	m := monthParamRe.FindStringSubmatch(s)
	if m == nil {
		return year, month
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	if mo >= 1 && mo <= 12 {
		return y, mo
	}
	return year, month
}
