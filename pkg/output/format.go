package output

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

var ErrUnknownFormat = errors.New("output: unknown image format")

// Format names an image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatPPM:
		return FormatPPM, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatForPath infers the format from a file extension.
// Paths without a known extension, including "-" for stdout, use fallback.
func FormatForPath(path string, fallback Format) Format {
	if format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return format
	}
	return fallback
}

// Write encodes fb to w in the given format
func Write(w io.Writer, fb *renderer.Framebuffer, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, fb)
	case FormatPNG:
		return WritePNG(w, fb)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
