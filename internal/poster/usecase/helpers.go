package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"

	"poster-events/internal/model"
	"poster-events/internal/poster"
)

const systemInstruction = "You extract structured event data from text recognized on event posters. " +
	"You answer with a single JSON object and nothing else."

const promptTemplate = `Analyze the following text from an event poster and extract the event information as JSON.

Follow these rules strictly:
- The result must be ONLY a JSON object, with no text before or after it.
- The object has one field "events", which must be an array even if the poster shows a single event.
- Every event has the string fields: title, date (format YYYY-MM-DD), time (format HH:MM, 24-hour), location and description.
- If some information is missing (for example the time), set that field to an empty string "".
- If the poster lists several dates for the same event, create a separate object in "events" for every date.
- If the poster advertises several different events, create a separate object for each of them.

Poster text:
---
%s
---`

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

func buildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFence.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}

type eventsReply struct {
	Events *[]*eventReply `json:"events"`
}

type eventReply struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// decodeEvents accepts exactly {"events": [...]} with string (or null) fields.
// Unknown keys are ignored. The reply is decoded as is first; fences and
// surrounding prose are only stripped when that fails, so string values that
// contain backticks or braces pass through untouched.
func decodeEvents(reply string) ([]model.Event, error) {
	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		return nil, errors.New("empty reply")
	}

	events, err := decodeStrict(trimmed)
	if err == nil {
		return events, nil
	}

	cleaned := sanitizeJSONResponse(trimmed)
	if cleaned == trimmed {
		return nil, err
	}
	return decodeStrict(cleaned)
}

func decodeStrict(text string) ([]model.Event, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	var out eventsReply
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON object")
	}
	if out.Events == nil {
		return nil, errors.New(`missing "events" array`)
	}

	events := make([]model.Event, 0, len(*out.Events))
	for i, e := range *out.Events {
		if e == nil {
			return nil, fmt.Errorf("event %d is null", i)
		}
		events = append(events, model.Event{
			Title:       deref(e.Title),
			Date:        deref(e.Date),
			Time:        deref(e.Time),
			Location:    deref(e.Location),
			Description: deref(e.Description),
		})
	}
	return events, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// classify maps an OCR or LLM failure onto the domain taxonomy while keeping the cause.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %v", poster.ErrCanceled, err)
	case errors.Is(err, context.DeadlineExceeded), isNetTimeout(err):
		return fmt.Errorf("%w: %v", poster.ErrTimeout, err)
	case ctx.Err() != nil:
		return classify(context.Background(), ctx.Err())
	default:
		return fmt.Errorf("%w: %v", poster.ErrUpstreamFailure, err)
	}
}

func isNetTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
