package model

// Event is one event extracted from a poster. Every field is free text; absent
// information is an empty string.
type Event struct {
	Title       string `json:"title"`
	Date        string `json:"date"`        // YYYY-MM-DD
	Time        string `json:"time"`        // HH:MM, 24-hour, or empty
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Event field names as they appear on the wire.
const (
	FieldTitle       = "title"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldLocation    = "location"
	FieldDescription = "description"
)

// EventFields lists the event fields in display order.
var EventFields = []string{FieldTitle, FieldDate, FieldTime, FieldLocation, FieldDescription}

// Get returns the value of the named field.
func (e Event) Get(field string) (string, bool) {
	switch field {
	case FieldTitle:
		return e.Title, true
	case FieldDate:
		return e.Date, true
	case FieldTime:
		return e.Time, true
	case FieldLocation:
		return e.Location, true
	case FieldDescription:
		return e.Description, true
	}
	return "", false
}

// With returns a copy of e with the named field replaced.
func (e Event) With(field, value string) (Event, bool) {
	switch field {
	case FieldTitle:
		e.Title = value
	case FieldDate:
		e.Date = value
	case FieldTime:
		e.Time = value
	case FieldLocation:
		e.Location = value
	case FieldDescription:
		e.Description = value
	default:
		return e, false
	}
	return e, true
}
