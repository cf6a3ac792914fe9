package carrier_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"stegcalc/internal/carrier"
	"stegcalc/internal/crypto"
)

func writeImage(t *testing.T, name string, enc func(*bytes.Buffer, image.Image) error) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestLoadAndInspectPNG(t *testing.T) {
	path := writeImage(t, "cover.png", func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) })

	img, err := carrier.Load(path)
	require.NoError(t, err)
	require.Equal(t, "cover.png", img.Name)

	rep, err := carrier.Inspect(img)
	require.NoError(t, err)
	require.Equal(t, "png", rep.Format)
	require.Equal(t, 16, rep.Width)
	require.Equal(t, 8, rep.Height)
	require.Equal(t, 48, rep.Capacity)
	require.Equal(t, len(img.Data), rep.Size)
	require.Equal(t, crypto.Fingerprint(img.Data), rep.Fingerprint)
}

func TestInspectBMP(t *testing.T) {
	path := writeImage(t, "cover.bmp", func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) })
	img, err := carrier.Load(path)
	require.NoError(t, err)

	rep, err := carrier.Inspect(img)
	require.NoError(t, err)
	require.Equal(t, "bmp", rep.Format)
}

func TestLoadEdgeCases(t *testing.T) {
	img, err := carrier.Load("")
	require.NoError(t, err)
	require.False(t, img.Present())

	_, err = carrier.Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = carrier.Load(empty)
	require.ErrorIs(t, err, carrier.ErrEmpty)
}

func TestInspectRejectsNonImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just text"), 0o600))
	img, err := carrier.Load(path)
	require.NoError(t, err)

	_, err = carrier.Inspect(img)
	require.Error(t, err)
}
