package calendar

import (
	"testing"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

func TestToEventSummaryTimedEvent(t *testing.T) {
	event := &calendar.Event{
		Id:      "evt1",
		Summary: "Standup",
		Status:  "confirmed",
		Start:   &calendar.EventDateTime{DateTime: "2024-05-06T09:00:00Z"},
		End:     &calendar.EventDateTime{DateTime: "2024-05-06T09:15:00Z"},
		Creator: &calendar.EventCreator{Email: "ada@example.com"},
		Attendees: []*calendar.EventAttendee{
			{Email: "bob@example.com", ResponseStatus: "accepted"},
		},
		ConferenceData: &calendar.ConferenceData{
			EntryPoints: []*calendar.EntryPoint{
				{EntryPointType: "phone", Uri: "tel:+1234"},
				{EntryPointType: "video", Uri: "https://meet.google.com/abc"},
			},
		},
	}

	got := toEventSummary(event)
	if got.ID != "evt1" || got.Summary != "Standup" {
		t.Errorf("unexpected summary: %+v", got)
	}
	if got.AllDay {
		t.Error("timed event should not be marked all-day")
	}
	wantStart := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	if !got.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", got.Start, wantStart)
	}
	if got.Creator != "ada@example.com" {
		t.Errorf("Creator = %q", got.Creator)
	}
	if len(got.Attendees) != 1 || got.Attendees[0].ResponseStatus != "accepted" {
		t.Errorf("Attendees = %+v", got.Attendees)
	}
	if got.MeetLink != "https://meet.google.com/abc" {
		t.Errorf("MeetLink = %q", got.MeetLink)
	}
}

func TestToEventSummaryAllDayEvent(t *testing.T) {
	event := &calendar.Event{
		Id:    "evt2",
		Start: &calendar.EventDateTime{Date: "2024-05-06"},
		End:   &calendar.EventDateTime{Date: "2024-05-07"},
	}

	got := toEventSummary(event)
	if !got.AllDay {
		t.Error("date-only event should be marked all-day")
	}
	wantStart := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	if !got.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", got.Start, wantStart)
	}
}

func TestToCalendarInfo(t *testing.T) {
	entry := &calendar.CalendarListEntry{
		Id:         "primary-cal",
		Summary:    "Work",
		TimeZone:   "Europe/Berlin",
		Primary:    true,
		AccessRole: "owner",
	}

	got := toCalendarInfo(entry)
	if got.ID != "primary-cal" || !got.Primary || got.AccessRole != "owner" {
		t.Errorf("toCalendarInfo() = %+v", got)
	}
}

func TestClampResults(t *testing.T) {
	tests := []struct {
		in   int64
		want int64
	}{
		{0, 10},
		{-5, 10},
		{1, 1},
		{50, 50},
		{100, 100},
		{101, 100},
		{10000, 100},
	}
	for _, tt := range tests {
		if got := clampResults(tt.in); got != tt.want {
			t.Errorf("clampResults(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestListEventsValidation(t *testing.T) {
	c := &Client{}
	now := time.Now()

	if _, err := c.ListEvents("", now, now.Add(time.Hour), "", 10); err == nil {
		t.Error("expected error for empty calendar ID")
	}
	if _, err := c.ListEvents("primary", now, now, "", 10); err == nil {
		t.Error("expected error for empty time window")
	}
	if _, err := c.SearchEvents("primary", "", 10); err == nil {
		t.Error("expected error for empty query")
	}
	if _, err := c.GetEvent("primary", ""); err == nil {
		t.Error("expected error for empty event ID")
	}
	if _, err := c.QueryFreeBusy(now, now.Add(time.Hour), nil); err == nil {
		t.Error("expected error for empty calendar list")
	}
}
