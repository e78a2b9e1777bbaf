package output

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names an output image encoding
type Format string

const (
	FormatPNG Format = "png"
	FormatPPM Format = "ppm"
)

// ParseFormat accepts "png" or "ppm" in any case
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatPPM:
		return FormatPPM, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want png or ppm)", name)
	}
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	if f == FormatPPM {
		return "image/x-portable-pixmap"
	}
	return "image/png"
}

// WritePNG writes img as a PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Write encodes img to w in the given format
func Write(w io.Writer, format Format, img image.Image) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		return WritePNG(w, img)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Encode returns img encoded in the given format
func Encode(format Format, img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, format, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveFile writes img to path, choosing the format from the file extension
// and creating parent directories as needed
func SaveFile(path string, img image.Image) error {
	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(file, format, img); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
