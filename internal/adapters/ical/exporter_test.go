package ical

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"confhub/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestBuildCalendar(t *testing.T) {
	start := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	events := []*domain.Event{
		{
			Slug:        "go-conference-2026",
			Title:       "Go Conference 2026",
			Description: strPtr("Gopher のためのカンファレンス"),
			StartDate:   start,
			EndDate:     &end,
			Venue:       strPtr("東京国際フォーラム"),
			Address:     strPtr("東京都千代田区丸の内3-5-1"),
			OfficialURL: "https://gocon.example.com",
			CreatedAt:   start.AddDate(0, -1, 0),
			UpdatedAt:   start.AddDate(0, -1, 0),
		},
		{
			Slug:        "rustfest-2026",
			Title:       "RustFest 2026",
			StartDate:   start.AddDate(0, 0, 7),
			OfficialURL: "https://rustfest.example.com",
		},
	}

	out := BuildCalendar(events)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "UID:go-conference-2026")
	assert.Contains(t, out, "UID:rustfest-2026")
	assert.Contains(t, out, "SUMMARY:Go Conference 2026")
	assert.Contains(t, out, "DTSTART:20260305T100000Z")
	assert.Contains(t, out, "DTEND:20260305T180000Z")
	// The second event has no end time and gets a one hour default.
	assert.Contains(t, out, "DTSTART:20260312T100000Z")
	assert.Contains(t, out, "DTEND:20260312T110000Z")
	assert.Contains(t, out, "URL:https://gocon.example.com")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
}

func TestBuildCalendar_Empty(t *testing.T) {
	out := BuildCalendar(nil)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
