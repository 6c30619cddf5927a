// Package ical renders catalog events as an iCalendar feed.
package ical

import (
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"confhub/internal/domain"
)

const prodID = "-//confhub//event calendar//JA"

// defaultDuration is assumed for events that publish no end time.
const defaultDuration = time.Hour

// BuildCalendar serializes the events into a VCALENDAR publish feed.
func BuildCalendar(events []*domain.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	for _, e := range events {
		ve := cal.AddEvent(e.Slug)
		ve.SetDtStampTime(e.UpdatedAt)
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetModifiedAt(e.UpdatedAt)
		ve.SetStartAt(e.StartDate)
		if e.EndDate != nil {
			ve.SetEndAt(*e.EndDate)
		} else {
			ve.SetEndAt(e.StartDate.Add(defaultDuration))
		}
		ve.SetSummary(e.Title)
		ve.SetURL(e.OfficialURL)

		if loc := eventLocation(e); loc != "" {
			ve.SetLocation(loc)
		}
		if desc := eventDescription(e); desc != "" {
			ve.SetDescription(desc)
		}
	}
	return cal.Serialize()
}

func eventLocation(e *domain.Event) string {
	var parts []string
	if e.Venue != nil && *e.Venue != "" {
		parts = append(parts, *e.Venue)
	}
	if e.Address != nil && *e.Address != "" {
		parts = append(parts, *e.Address)
	}
	return strings.Join(parts, " ")
}

func eventDescription(e *domain.Event) string {
	var parts []string
	if e.Description != nil && *e.Description != "" {
		parts = append(parts, *e.Description)
	}
	if e.OfficialURL != "" {
		parts = append(parts, e.OfficialURL)
	}
	return strings.Join(parts, "\n\n")
}
