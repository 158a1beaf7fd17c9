package client

import (
	"fmt"

	"poster-events/internal/model"
)

// EditField sets one field of one event. The collection is replaced, never
// mutated, so earlier snapshots keep their values.
func (s *Session) EditField(index int, field, value string) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.events) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	updated, ok := s.events[index].With(field, value)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	events := make([]model.Event, len(s.events))
	copy(events, s.events)
	events[index] = updated
	s.events = events
	s.notifyLocked()
	return nil
}
