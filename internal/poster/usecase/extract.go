package usecase

import (
	"context"
	"fmt"
	"strings"

	"poster-events/internal/poster"
	"poster-events/pkg/imgprobe"
	"poster-events/pkg/llmprovider"
)

// Extract runs OCR on the image and asks the language model for the events in the
// recognized text. It is all-or-nothing: either every event or an error.
func (uc *implUseCase) Extract(ctx context.Context, input poster.ExtractInput) (poster.ExtractOutput, error) {
	if len(input.Image) == 0 {
		return poster.ExtractOutput{}, poster.ErrMissingFile
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	info, err := imgprobe.Probe(input.Image)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Extract probe %q: %v", input.Filename, err)
		return poster.ExtractOutput{}, fmt.Errorf("%w: %v", poster.ErrInvalidImage, err)
	}
	uc.l.Infof(ctx, "uc.Extract accepted %q (%s %dx%d, %d bytes)", input.Filename, info.Format, info.Width, info.Height, len(input.Image))

	raw, err := uc.ocr.Recognize(ctx, input.Image)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Extract Recognize: %v", err)
		return poster.ExtractOutput{}, classify(ctx, err)
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return poster.ExtractOutput{}, poster.ErrRecognitionEmpty
	}
	uc.l.Infof(ctx, "uc.Extract recognized %d characters", len([]rune(text)))
	uc.l.Debugf(ctx, "uc.Extract recognized text: %s", text)

	req := llmprovider.NewUserRequest(buildPrompt(text))
	req.SystemInstruction = &llmprovider.Message{
		Role:  llmprovider.RoleSystem,
		Parts: []llmprovider.Part{{Text: systemInstruction}},
	}
	req.MaxTokens = uc.maxTokens
	req.JSONOutput = true

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Extract GenerateContent: %v", err)
		return poster.ExtractOutput{}, classify(ctx, err)
	}

	reply := resp.Text()
	events, err := decodeEvents(reply)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Extract decode reply: %v. Raw=%q", err, reply)
		return poster.ExtractOutput{}, fmt.Errorf("%w: %v", poster.ErrExtractionMalformed, err)
	}

	uc.l.Infof(ctx, "uc.Extract extracted %d event(s)", len(events))
	return poster.ExtractOutput{Events: events}, nil
}
