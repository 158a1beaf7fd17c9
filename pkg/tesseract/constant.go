package tesseract

import "time"

const (
	// DefaultLanguage is the traineddata used when none is configured.
	DefaultLanguage = "rus"

	// DefaultPageSegMode is fully automatic page segmentation (PSM_AUTO).
	DefaultPageSegMode = 3

	DefaultTimeout = 30 * time.Second

	// DefaultMaxEngines bounds concurrent Tesseract instances, including ones
	// still running for requests that timed out.
	DefaultMaxEngines = 4
)
