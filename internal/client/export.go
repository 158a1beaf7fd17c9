package client

import (
	"errors"
	"fmt"

	"poster-events/pkg/icalendar"
)

// Export renders the current events as an .ics document. A failure is also kept
// as the session error message so it survives re-renders; a later successful
// export clears it.
func (s *Session) Export() ([]byte, error) {
	data, err := s.export()
	s.setExportError(err)
	return data, err
}

func (s *Session) setExportError(err error) {
	s.mu.Lock()
	switch {
	case errors.Is(err, ErrNoEvents):
		s.errMsg = MsgNoEvents
	case err != nil:
		s.errMsg = err.Error()
	case s.errMsg != "":
		s.errMsg = ""
	default:
		s.mu.Unlock()
		return
	}
	s.notifyLocked()
}

func (s *Session) export() ([]byte, error) {
	st := s.Snapshot()
	if len(st.Events) == 0 {
		return nil, ErrNoEvents
	}

	entries := make([]icalendar.Entry, 0, len(st.Events))
	for i, e := range st.Events {
		start, err := icalendar.ParseStart(e.Date, e.Time, s.location)
		if err != nil {
			return nil, fmt.Errorf("event %d (%q): %w", i+1, e.Title, err)
		}
		entries = append(entries, icalendar.Entry{
			Summary:     e.Title,
			Description: e.Description,
			Location:    e.Location,
			Start:       start,
		})
	}

	return icalendar.Export(entries, icalendar.Options{
		Name:      s.calName,
		ProductID: s.productID,
		Location:  s.location,
		Now:       s.now,
		NewUID:    s.newUID,
	})
}
