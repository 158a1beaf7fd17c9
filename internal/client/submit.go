package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"poster-events/internal/model"
)

type processResp struct {
	Events []model.Event `json:"events"`
}

type errorResp struct {
	Error string `json:"error"`
}

// Submit uploads the selected file and replaces the event collection with the
// result. Without a file, or while its bytes are still being read, it only sets
// the error message. A second Submit while one
// is in flight returns ErrBusy and changes nothing.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrBusy
	}
	if s.reading {
		s.errMsg = MsgFileLoading
		s.notifyLocked()
		return ErrFileLoading
	}
	if s.fileName == "" && len(s.fileData) == 0 {
		s.errMsg = MsgSelectFile
		s.notifyLocked()
		return ErrNoFile
	}

	name, data := s.fileName, s.fileData
	s.loading = true
	s.errMsg = ""
	s.events = nil
	s.notifyLocked()

	events, err := s.upload(ctx, name, data)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = userMessage(err)
		s.events = nil
	} else {
		s.errMsg = ""
		s.events = events
	}
	s.notifyLocked()

	if err != nil {
		s.l.Warnf(ctx, "client.Submit: %v", err)
	}
	return err
}

// serverError carries the message reported by the server.
type serverError struct {
	status  int
	message string
}

func (e *serverError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.status, e.message)
}

func (e *serverError) Unwrap() error { return ErrSubmissionFailed }

func userMessage(err error) string {
	var se *serverError
	if errors.As(err, &se) && se.message != "" {
		return se.message
	}
	return MsgUnknownError
}

func (s *Session) upload(ctx context.Context, name string, data []byte) ([]model.Event, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+processPath, &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrSubmissionFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResp
		_ = json.Unmarshal(raw, &e)
		return nil, &serverError{status: resp.StatusCode, message: e.Error}
	}

	var out processResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrSubmissionFailed, err)
	}
	if out.Events == nil {
		out.Events = []model.Event{}
	}
	return out.Events, nil
}
