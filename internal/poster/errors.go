package poster

import "errors"

var (
	ErrMissingFile         = errors.New("no file was uploaded")
	ErrInvalidImage        = errors.New("uploaded file is not a readable image")
	ErrFileTooLarge        = errors.New("uploaded file is too large")
	ErrRecognitionEmpty    = errors.New("no text was recognized on the image")
	ErrExtractionMalformed = errors.New("language model reply is not the expected JSON")
	ErrUpstreamFailure     = errors.New("upstream service failed")
	ErrTimeout             = errors.New("processing timed out")
	ErrCanceled            = errors.New("request was canceled")
)
