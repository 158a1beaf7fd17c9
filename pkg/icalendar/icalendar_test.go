package icalendar

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
)

func fixedOptions() Options {
	n := 0
	return Options{
		Now: func() time.Time { return time.Date(2024, 4, 20, 8, 0, 0, 0, time.UTC) },
		NewUID: func() string {
			n++
			return fmt.Sprintf("uid-%d", n)
		},
	}
}

func parse(t *testing.T, data []byte) *ical.Calendar {
	t.Helper()
	cal, err := ical.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseCalendar() error = %v\n%s", err, data)
	}
	return cal
}

func TestExport_FloatingTime(t *testing.T) {
	start, err := ParseStart("2024-05-01", "19:30", nil)
	if err != nil {
		t.Fatalf("ParseStart() error = %v", err)
	}

	data, err := Export([]Entry{{
		Summary:     "Concert",
		Description: "Jazz evening with the city orchestra",
		Location:    "City Hall",
		Start:       start,
	}}, fixedOptions())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	text := string(data)
	for _, want := range []string{"METHOD:PUBLISH", "X-WR-CALNAME:My events", "PRODID:" + DefaultProductID} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q\n%s", want, text)
		}
	}
	if strings.Contains(text, "DTEND") {
		t.Error("output must not contain DTEND")
	}

	events := parse(t, data).Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]

	checks := map[ical.ComponentProperty]string{
		ical.ComponentPropertyUniqueId:    "uid-1",
		ical.ComponentPropertySummary:     "Concert",
		ical.ComponentPropertyDescription: "Jazz evening with the city orchestra",
		ical.ComponentPropertyLocation:    "City Hall",
		ical.ComponentPropertyDtStart:     "20240501T193000",
		ical.ComponentPropertyDtstamp:     "20240420T080000Z",
	}
	for prop, want := range checks {
		p := ev.GetProperty(prop)
		if p == nil {
			t.Errorf("missing property %s", prop)
			continue
		}
		if p.Value != want {
			t.Errorf("%s = %q, want %q", prop, p.Value, want)
		}
	}
}

func TestExport_WithTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	start, _ := ParseStart("2024-05-01", "19:30", nil)

	opts := fixedOptions()
	opts.Location = loc
	opts.Name = "Posters"

	data, err := Export([]Entry{{Summary: "Concert", Start: start}}, opts)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	cal := parse(t, data)
	p := cal.Events()[0].GetProperty(ical.ComponentPropertyDtStart)
	if p == nil || p.Value != "20240501T193000" {
		t.Fatalf("unexpected DTSTART %+v", p)
	}
	if tz := p.ICalParameters[string(ical.ParameterTzid)]; len(tz) != 1 || tz[0] != "Europe/Moscow" {
		t.Errorf("TZID = %v, want Europe/Moscow", tz)
	}
	if !strings.Contains(string(data), "X-WR-CALNAME:Posters") {
		t.Error("expected custom calendar name")
	}
}

func TestExport_MultipleEntriesKeepOrder(t *testing.T) {
	a, _ := ParseStart("2024-05-01", "", nil)
	b, _ := ParseStart("2024-06-02", "10:00:15", nil)

	data, err := Export([]Entry{{Summary: "First", Start: a}, {Summary: "Second", Start: b}}, fixedOptions())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	events := parse(t, data).Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if got := events[0].GetProperty(ical.ComponentPropertyDtStart).Value; got != "20240501T000000" {
		t.Errorf("first DTSTART = %q", got)
	}
	if got := events[1].GetProperty(ical.ComponentPropertyDtStart).Value; got != "20240602T100015" {
		t.Errorf("second DTSTART = %q", got)
	}
	if events[0].Id() == events[1].Id() {
		t.Error("expected distinct UIDs")
	}
}

func TestExport_NoEntries(t *testing.T) {
	if _, err := Export(nil, Options{}); !errors.Is(err, ErrNoEntries) {
		t.Errorf("Export(nil) error = %v, want ErrNoEntries", err)
	}
}

func TestParseStart(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    time.Time
		wantErr bool
	}{
		{name: "date and time", date: "2024-05-01", clock: "19:30", want: time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC)},
		{name: "seconds", date: "2024-05-01", clock: "07:05:09", want: time.Date(2024, 5, 1, 7, 5, 9, 0, time.UTC)},
		{name: "empty time is midnight", date: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", date: " 2024-05-01 ", clock: " 19:30 ", want: time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC)},
		{name: "empty date", date: "", clock: "19:30", wantErr: true},
		{name: "bad date", date: "01.05.2024", wantErr: true},
		{name: "bad time", date: "2024-05-01", clock: "evening", wantErr: true},
		{name: "out of range time", date: "2024-05-01", clock: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStart(tt.date, tt.clock, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStart() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseStart() = %v, want %v", got, tt.want)
			}
		})
	}
}
