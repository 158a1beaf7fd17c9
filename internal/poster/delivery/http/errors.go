package http

import (
	"errors"
	"net/http"

	"poster-events/internal/poster"
	pkgErrors "poster-events/pkg/errors"
)

// StatusClientClosedRequest is reported when the caller went away mid-request.
const StatusClientClosedRequest = 499

var (
	errMissingFile         = pkgErrors.NewHTTPError(http.StatusBadRequest, "File not found")
	errInvalidImage        = pkgErrors.NewHTTPError(http.StatusBadRequest, "The uploaded file is not a supported image")
	errFileTooLarge        = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "The uploaded file is too large")
	errRecognitionEmpty    = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Could not recognize any text on the image")
	errExtractionMalformed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Could not extract events from the recognized text")
	errUpstreamFailure     = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Text recognition or extraction service failed")
	errTimeout             = pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "Processing took too long")
	errCanceled            = pkgErrors.NewHTTPError(StatusClientClosedRequest, "Request was canceled")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, poster.ErrMissingFile):
		return errMissingFile
	case errors.Is(err, poster.ErrInvalidImage):
		return errInvalidImage
	case errors.Is(err, poster.ErrFileTooLarge):
		return errFileTooLarge
	case errors.Is(err, poster.ErrRecognitionEmpty):
		return errRecognitionEmpty
	case errors.Is(err, poster.ErrExtractionMalformed):
		return errExtractionMalformed
	case errors.Is(err, poster.ErrUpstreamFailure):
		return errUpstreamFailure
	case errors.Is(err, poster.ErrTimeout):
		return errTimeout
	case errors.Is(err, poster.ErrCanceled):
		return errCanceled
	default:
		return pkgErrors.ErrInternalServerError
	}
}
