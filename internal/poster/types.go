package poster

import "poster-events/internal/model"

// --- UseCase Inputs ---

type ExtractInput struct {
	Filename string
	Image    []byte
}

// --- UseCase Outputs ---

type ExtractOutput struct {
	Events []model.Event
}
