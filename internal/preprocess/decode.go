package preprocess

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when no registered decoder accepts the input.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultMaxPixels matches Pillow's decompression bomb threshold.
const DefaultMaxPixels int64 = 89_478_485

// PixelLimitError is returned by DecodeLimited when the declared dimensions
// exceed the pixel budget.
type PixelLimitError struct {
	Width, Height int
	Max           int64
}

func (e *PixelLimitError) Error() string {
	return fmt.Sprintf("image %dx%d exceeds %d pixels", e.Width, e.Height, e.Max)
}

// IsTooManyPixels reports whether err is a PixelLimitError.
func IsTooManyPixels(err error) bool {
	var e *PixelLimitError
	return errors.As(err, &e)
}

// Decode decodes any registered image format and returns the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedFormat
		}
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// DecodeLimited reads the header first and refuses images whose declared
// width*height is above maxPixels before any pixel buffer is allocated.
// maxPixels <= 0 selects DefaultMaxPixels.
func DecodeLimited(r io.ReadSeeker, maxPixels int64) (image.Image, string, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedFormat
		}
		return nil, "", fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, "", &PixelLimitError{Width: cfg.Width, Height: cfg.Height, Max: maxPixels}
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("rewind image: %w", err)
	}
	return Decode(r)
}

// Sniff reports the MIME type detected from the leading bytes of an upload.
func Sniff(head []byte) string {
	return mimetype.Detect(head).String()
}

// IsImageMIME reports whether a sniffed MIME type names an image.
func IsImageMIME(m string) bool {
	return strings.HasPrefix(m, "image/")
}
