// Package carrier loads image files for the covert tool and describes them.
//
// Images are exchanged with the remote service as opaque bytes; decoding
// here is limited to the header, for the inspect report.
package carrier

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"stegcalc/internal/crypto"
	"stegcalc/internal/domain"
)

// lsbBitsPerPixel is how many bits an LSB embedder hides per pixel (one per
// RGB channel).
const lsbBitsPerPixel = 3

// ErrEmpty is returned for zero-length image files.
var ErrEmpty = errors.New("carrier: empty file")

// Load reads the image file at path. An empty path yields an empty Image so
// that request validation reports the missing field.
func Load(path string) (domain.Image, error) {
	if path == "" {
		return domain.Image{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Image{}, fmt.Errorf("carrier: %w", err)
	}
	if len(b) == 0 {
		return domain.Image{}, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return domain.Image{Name: filepath.Base(path), Data: b}, nil
}

// Report describes an image.
type Report struct {
	Name        string
	Size        int
	Format      string
	Width       int
	Height      int
	Fingerprint domain.Fingerprint
	// Capacity is the rough number of payload bytes an LSB embedder could
	// hide, before its own framing and encryption overhead.
	Capacity int
}

// Inspect decodes the image header and fingerprints the bytes.
func Inspect(img domain.Image) (Report, error) {
	if !img.Present() {
		return Report{}, ErrEmpty
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return Report{}, fmt.Errorf("carrier: %s: %w", img.Name, err)
	}
	return Report{
		Name:        img.Name,
		Size:        len(img.Data),
		Format:      format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Fingerprint: crypto.Fingerprint(img.Data),
		Capacity:    cfg.Width * cfg.Height * lsbBitsPerPixel / 8,
	}, nil
}
