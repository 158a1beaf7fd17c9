package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"poster-events/internal/poster"
)

const fileField = "file"

// processExtractReq reads the uploaded file from the multipart body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq

	fh, err := c.FormFile(fileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, fmt.Errorf("%w: limit is %d bytes", poster.ErrFileTooLarge, tooLarge.Limit)
		}
		return req, fmt.Errorf("%w: %v", poster.ErrMissingFile, err)
	}

	f, err := fh.Open()
	if err != nil {
		return req, fmt.Errorf("%w: %v", poster.ErrMissingFile, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return req, fmt.Errorf("read upload: %w", err)
	}

	req.Filename = fh.Filename
	req.Image = data
	return req, req.validate()
}
