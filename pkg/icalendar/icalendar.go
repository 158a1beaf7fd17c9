// Package icalendar serialises events into an RFC 5545 calendar document.
package icalendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	DefaultName      = "My events"
	DefaultProductID = "-//poster-events//ics export//EN"

	// FileName is the download name offered to users.
	FileName = "events.ics"

	// ContentType for .ics payloads.
	ContentType = "text/calendar; charset=utf-8"

	localLayout = "20060102T150405"
)

var ErrNoEntries = errors.New("icalendar: no entries to export")

// Entry is one calendar event.
type Entry struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
}

// Options controls calendar level properties. Zero values fall back to defaults.
type Options struct {
	Name      string
	ProductID string

	// Location, when set, writes DTSTART with a TZID parameter in that zone.
	// When nil DTSTART is a floating local time.
	Location *time.Location

	Now    func() time.Time
	NewUID func() string
}

func (o *Options) setDefaults() {
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.ProductID == "" {
		o.ProductID = DefaultProductID
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewUID == nil {
		o.NewUID = func() string { return uuid.NewString() }
	}
}

// Export renders entries as a VCALENDAR with one VEVENT each. Events carry no DTEND.
func Export(entries []Entry, opts Options) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	opts.setDefaults()

	cal := ical.NewCalendar()
	cal.SetProductId(opts.ProductID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName(opts.Name)

	stamp := opts.Now().UTC()
	for _, e := range entries {
		ev := cal.AddEvent(opts.NewUID())
		ev.SetDtStampTime(stamp)
		setStart(ev, e.Start, opts.Location)
		ev.SetSummary(e.Summary)
		ev.SetDescription(e.Description)
		ev.SetLocation(e.Location)
	}

	return []byte(cal.Serialize()), nil
}

func setStart(ev *ical.VEvent, start time.Time, loc *time.Location) {
	if loc == nil {
		ev.SetProperty(ical.ComponentPropertyDtStart, start.Format(localLayout))
		return
	}
	// Wall clock is kept; only the zone is attached.
	wall := time.Date(start.Year(), start.Month(), start.Day(), start.Hour(), start.Minute(), start.Second(), 0, loc)
	ev.SetProperty(ical.ComponentPropertyDtStart, wall.Format(localLayout),
		&ical.KeyValues{Key: string(ical.ParameterTzid), Value: []string{loc.String()}})
}

// ParseStart combines a YYYY-MM-DD date and an HH:MM or HH:MM:SS time. An empty
// time means midnight. loc defaults to UTC and only carries the wall clock.
func ParseStart(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	date = strings.TrimSpace(date)
	day, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return day, nil
	}

	for _, layout := range []string{"15:04", time.TimeOnly} {
		if t, err := time.ParseInLocation(layout, clock, loc); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", clock)
}
