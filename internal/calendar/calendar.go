// Package calendar exports the fundraiser events as an iCalendar feed.
package calendar

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/peapod-fundraiser/site/internal/catalog"
	"github.com/peapod-fundraiser/site/internal/render"
)

// ProductID identifies the generator in exported calendars.
const ProductID = "-//Peapod Fundraiser//Events//EN"

// uidDomain qualifies event UIDs.
const uidDomain = "peapod-fundraiser"

// Build converts events into a VCALENDAR with one all-day VEVENT per event,
// ordered by date. stamp becomes every event's DTSTAMP.
func Build(events []catalog.Event, name string, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	if name != "" {
		cal.Props.SetText("X-WR-CALNAME", name)
	}

	for _, e := range render.SortEvents(events) {
		cal.Children = append(cal.Children, toVEvent(e, stamp.UTC()))
	}
	return cal
}

// Write encodes the calendar built from events to w.
func Write(w io.Writer, events []catalog.Event, name string, stamp time.Time) error {
	if err := ical.NewEncoder(w).Encode(Build(events, name, stamp)); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}

// UID returns a stable identifier for an event derived from its date and
// title, so re-exports update rather than duplicate subscribed entries.
func UID(e catalog.Event) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(e.Date.String()+"/"+e.Title))
	return id.String() + "@" + uidDomain
}

func toVEvent(e catalog.Event, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, UID(e))
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.SetDate(ical.PropDateTimeStart, e.Date.Time())
	ve.Props.SetDate(ical.PropDateTimeEnd, e.Date.Time().AddDate(0, 0, 1))
	ve.Props.SetText(ical.PropSummary, e.Title)

	if e.Location != "" {
		ve.Props.SetText(ical.PropLocation, e.Location)
	}
	if desc := description(e); desc != "" {
		ve.Props.SetText(ical.PropDescription, desc)
	}
	if e.WebsiteURL.Present() {
		if u, err := url.Parse(e.WebsiteURL.String()); err == nil && u.IsAbs() {
			ve.Props.SetURI(ical.PropURL, u)
		}
	}
	return ve
}

func description(e catalog.Event) string {
	lines := []string{e.Description}
	if e.Time.Present() {
		lines = append(lines, "Time: "+e.Time.String())
	}
	if e.Benefit.Present() {
		lines = append(lines, "Benefits: "+e.Benefit.String())
	}
	if e.OrderDeadline != nil && !e.OrderDeadline.IsZero() {
		lines = append(lines, "Order by "+e.OrderDeadline.Short())
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
