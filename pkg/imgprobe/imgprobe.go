// Package imgprobe checks that uploaded bytes are an image the OCR engine can read
// before any expensive work starts.
package imgprobe

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fumiama/imgsz"
	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrEmpty       = errors.New("imgprobe: empty input")
	ErrUnsupported = errors.New("imgprobe: unsupported image format")
	ErrCorrupt     = errors.New("imgprobe: corrupt image header")
)

// Info describes a probed image. Width and Height are zero for formats whose
// header is not decoded (bmp, tiff).
type Info struct {
	MIME   string
	Format string
	Width  int
	Height int
}

// allowed maps sniffed MIME types to format names. Only formats with an imgsz
// decoder have their header checked.
var allowed = map[string]struct {
	format string
	decode bool
}{
	"image/png":  {"png", true},
	"image/jpeg": {"jpeg", true},
	"image/gif":  {"gif", true},
	"image/webp": {"webp", true},
	"image/bmp":  {"bmp", false},
	"image/tiff": {"tiff", false},
}

// Probe sniffs data and, when possible, decodes the image header.
func Probe(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, ErrEmpty
	}

	mt := mimetype.Detect(data)
	kind, ok := allowed[mt.String()]
	if !ok {
		return Info{MIME: mt.String()}, fmt.Errorf("%w: %s", ErrUnsupported, mt.String())
	}

	info := Info{MIME: mt.String(), Format: kind.format}
	if !kind.decode {
		return info, nil
	}

	size, format, err := imgsz.DecodeSize(bytes.NewReader(data))
	if err != nil {
		return info, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return info, fmt.Errorf("%w: zero dimension %dx%d", ErrCorrupt, size.Width, size.Height)
	}

	if format != "" {
		info.Format = format
	}
	info.Width, info.Height = size.Width, size.Height
	return info, nil
}
