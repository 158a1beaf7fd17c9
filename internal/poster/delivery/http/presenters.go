package http

import (
	"poster-events/internal/model"
	"poster-events/internal/poster"
)

// --- Request DTOs ---

type extractReq struct {
	Filename string
	Image    []byte
}

func (r extractReq) validate() error {
	if len(r.Image) == 0 {
		return poster.ErrMissingFile
	}
	return nil
}

func (r extractReq) toInput() poster.ExtractInput {
	return poster.ExtractInput{
		Filename: r.Filename,
		Image:    r.Image,
	}
}

// --- Response DTOs ---

type eventResp struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Description: e.Description,
	}
}

type extractResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newExtractResp(out poster.ExtractOutput) extractResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	return extractResp{Events: events}
}
