package calendar

import (
	"sort"
	"time"

	"confhub/internal/domain"
)

// GroupByMonth buckets the events of one calendar month by date key.
// Events whose start date falls within the month (inclusive instants) are
// sorted ascending by start date and grouped under their canonical
// YYYY-MM-DD key. Dates with zero events are absent from the map: a missing
// key means "zero events".
func GroupByMonth(events []*domain.Event, year, month int, loc *time.Location) map[string][]*domain.Event {
	start, end := MonthRange(year, month, loc)
	return GroupByRange(events, start, end, loc)
}

// GroupByRange is GroupByMonth against an arbitrary inclusive instant range;
// the rolling two-week view uses it directly.
func GroupByRange(events []*domain.Event, start, end time.Time, loc *time.Location) map[string][]*domain.Event {
	inRange := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if e.StartDate.Before(start) || e.StartDate.After(end) {
			continue
		}
		inRange = append(inRange, e)
	}
	sort.SliceStable(inRange, func(i, j int) bool {
		return inRange[i].StartDate.Before(inRange[j].StartDate)
	})

	grouped := make(map[string][]*domain.Event)
	for _, e := range inRange {
		key := DateKey(e.StartDate, loc)
		grouped[key] = append(grouped[key], e)
	}
	return grouped
}

// DaySummary is the per-cell aggregate for one grid day.
type DaySummary struct {
	Date    string               `json:"date"`
	Count   int                  `json:"count"`
	InMonth bool                 `json:"in_month"`
	Color   domain.CategoryColor `json:"color"`
}

// DaySummaries computes event counts and the color token for each grid day.
// Lead/trail padding days are consulted against the grouping too; they may
// hold events even though they render as out-of-month. The color comes from
// the first event's primary tech category.
func DaySummaries(days []time.Time, grouped map[string][]*domain.Event, month int, loc *time.Location) []DaySummary {
	out := make([]DaySummary, 0, len(days))
	for _, day := range days {
		key := DateKey(day, loc)
		bucket := grouped[key]
		color := domain.DefaultColor
		if len(bucket) > 0 {
			color = domain.PrimaryCategoryColor(bucket[0].TechCategories)
		}
		out = append(out, DaySummary{
			Date:    key,
			Count:   len(bucket),
			InMonth: int(day.In(loc).Month()) == month,
			Color:   color,
		})
	}
	return out
}
