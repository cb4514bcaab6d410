package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"

	"github.com/peapod-fundraiser/site/internal/catalog"
)

func mustDate(t *testing.T, s string) catalog.Date {
	t.Helper()
	d, err := catalog.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestWriteRoundTrip(t *testing.T) {
	deadline := mustDate(t, "2025-02-20")
	events := []catalog.Event{
		{Date: mustDate(t, "2025-03-01"), Title: "Plant Sale", Location: "Barn", Description: "Seedlings",
			OrderDeadline: &deadline, WebsiteURL: "https://example.org/plants"},
		{Date: mustDate(t, "2025-02-15"), Title: "Pancakes", Location: "Hall", Description: "Breakfast", Time: "8am"},
	}

	var buf bytes.Buffer
	stamp := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	if err := Write(&buf, events, "Peapod Events", stamp); err != nil {
		t.Fatalf("Write: %v", err)
	}

	cal, err := ical.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	vevents := cal.Events()
	if len(vevents) != 2 {
		t.Fatalf("events = %d, want 2", len(vevents))
	}

	first := vevents[0]
	if got := first.Props.Get(ical.PropSummary).Value; got != "Pancakes" {
		t.Errorf("first summary = %q, want Pancakes (sorted by date)", got)
	}
	if got := first.Props.Get(ical.PropDateTimeStart).Value; got != "20250215" {
		t.Errorf("DTSTART = %q, want 20250215", got)
	}
	if got := first.Props.Get(ical.PropDateTimeEnd).Value; got != "20250216" {
		t.Errorf("DTEND = %q, want 20250216", got)
	}
	desc, err := first.Props.Text(ical.PropDescription)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(desc, "Time: 8am") {
		t.Errorf("description = %q", desc)
	}

	second := vevents[1]
	if url := second.Props.Get(ical.PropURL); url == nil || url.Value != "https://example.org/plants" {
		t.Errorf("URL prop = %+v", url)
	}
	if second.Props.Get(ical.PropUID).Value != UID(events[0]) {
		t.Error("UID mismatch")
	}
}

func TestUIDStable(t *testing.T) {
	e := catalog.Event{Date: mustDate(t, "2025-03-01"), Title: "Plant Sale"}
	if UID(e) != UID(e) {
		t.Error("UID should be deterministic")
	}
	other := e
	other.Title = "Bake Sale"
	if UID(e) == UID(other) {
		t.Error("different events should have different UIDs")
	}
	if !strings.HasSuffix(UID(e), "@"+uidDomain) {
		t.Errorf("UID = %q", UID(e))
	}
}

func TestBuildEmpty(t *testing.T) {
	cal := Build(nil, "", time.Now())
	if len(cal.Events()) != 0 {
		t.Errorf("events = %d, want 0", len(cal.Events()))
	}
	if v := cal.Props.Get(ical.PropVersion); v == nil || v.Value != "2.0" {
		t.Errorf("VERSION = %+v", v)
	}
	if cal.Props.Get("X-WR-CALNAME") != nil {
		t.Error("unnamed calendar should not carry X-WR-CALNAME")
	}
}
