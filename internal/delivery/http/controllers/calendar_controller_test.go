package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confhub/internal/delivery/http/helpers"
	"confhub/internal/domain"
)

func newCalendarController(t *testing.T, svc *fakeEventService, now time.Time) *CalendarController {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	ctrl := NewCalendarController(testLogger, svc, loc)
	ctrl.Now = func() time.Time { return now }
	return ctrl
}

func TestMonthCalendar(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	svc := &fakeEventService{grouped: map[string][]*domain.Event{
		"2026-03-05": {sampleEvent("a"), sampleEvent("b")},
		"2026-03-20": {sampleEvent("c")},
	}}
	ctrl := newCalendarController(t, svc, now)

	req := httptest.NewRequest(http.MethodGet, "/calendar?month=2026-03", nil)
	rec := httptest.NewRecorder()
	ctrl.MonthCalendar(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MonthCalendarSuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)

	assert.Equal(t, 2026, svc.lastYear)
	assert.Equal(t, 3, svc.lastMonth)
	assert.Equal(t, "2026-03", resp.Data.Month)
	assert.Equal(t, 3, resp.Data.Total)

	// March 2026 renders as a five week grid, Sunday aligned.
	require.Len(t, resp.Data.Days, 35)
	assert.Equal(t, "2026-03-01", resp.Data.Days[0])
	assert.Equal(t, "2026-04-04", resp.Data.Days[34])
	assert.Len(t, resp.Data.Summaries, 35)
	assert.Len(t, resp.Data.EventsByDate["2026-03-05"], 2)
}

func TestMonthCalendar_MalformedMonthFallsBackToNow(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	svc := &fakeEventService{grouped: map[string][]*domain.Event{}}
	ctrl := newCalendarController(t, svc, now)

	req := httptest.NewRequest(http.MethodGet, "/calendar?month=banana", nil)
	rec := httptest.NewRecorder()
	ctrl.MonthCalendar(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MonthCalendarSuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-07", resp.Data.Month)
}

func TestMonthCalendar_ServiceError(t *testing.T) {
	svc := &fakeEventService{groupedErr: errors.New("boom")}
	ctrl := newCalendarController(t, svc, time.Now())

	req := httptest.NewRequest(http.MethodGet, "/calendar", nil)
	rec := httptest.NewRecorder()
	ctrl.MonthCalendar(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, helpers.ErrCodeInternalError, resp.Error.Code)
}

func TestTwoWeeks(t *testing.T) {
	// Noon JST on 2026-03-10.
	now := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
	svc := &fakeEventService{grouped: map[string][]*domain.Event{
		"2026-03-12": {sampleEvent("a")},
	}}
	ctrl := newCalendarController(t, svc, now)

	req := httptest.NewRequest(http.MethodGet, "/calendar/two-weeks", nil)
	rec := httptest.NewRecorder()
	ctrl.TwoWeeks(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp TwoWeeksSuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)

	require.Len(t, resp.Data.Days, 14)
	assert.Equal(t, "2026-03-10", resp.Data.Days[0])
	assert.Equal(t, "2026-03-23", resp.Data.Days[13])
	assert.Equal(t, 1, resp.Data.Total)

	// The queried range covers the fourteen local days end to end.
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	assert.True(t, svc.lastStart.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, loc)))
	assert.True(t, svc.lastEnd.Before(time.Date(2026, 3, 24, 0, 0, 0, 0, loc)))
	assert.True(t, svc.lastEnd.After(time.Date(2026, 3, 23, 23, 59, 59, 0, loc)))
}

func TestICSFeed(t *testing.T) {
	svc := &fakeEventService{events: []*domain.Event{sampleEvent("go-conference-2026")}}
	ctrl := newCalendarController(t, svc, time.Now())

	req := httptest.NewRequest(http.MethodGet, "/calendar.ics", nil)
	rec := httptest.NewRecorder()
	ctrl.ICSFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "UID:go-conference-2026")
	assert.True(t, svc.lastFilters.IsZero())
}

func TestICSFeed_ForwardsFilters(t *testing.T) {
	svc := &fakeEventService{}
	ctrl := newCalendarController(t, svc, time.Now())

	req := httptest.NewRequest(http.MethodGet, "/calendar.ics?format=online&roles=%E3%82%A8%E3%83%B3%E3%82%B8%E3%83%8B%E3%82%A2", nil)
	rec := httptest.NewRecorder()
	ctrl.ICSFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FormatOnline, svc.lastFilters.Format)
	assert.Equal(t, []string{"エンジニア"}, svc.lastFilters.Roles)
}
