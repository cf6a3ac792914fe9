package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"stegcalc/internal/app"
	"stegcalc/internal/clipboard"
	"stegcalc/internal/disguise"
	"stegcalc/internal/domain"
)

func TestNewWire(t *testing.T) {
	cfg := app.Default()
	cfg.Clipboard.Backend = "memory"
	cfg.Disguise.ClearOnReturn = true
	cfg.Download.Dir = t.TempDir()

	w, err := app.NewWire(cfg, new(bytes.Buffer))
	require.NoError(t, err)
	defer w.Close()

	require.IsType(t, &clipboard.Memory{}, w.Clipboard)
	require.Equal(t, cfg.Service.BaseURL, w.Remote.Base)
	require.Equal(t, cfg.Service.Timeout(), w.HTTP.Timeout)
	require.Equal(t, disguise.ClearCovertState, w.Disguise.Policy())
	require.Equal(t, domain.ModeCalculator, w.Disguise.Mode())
}

func TestNewWireUnknownClipboard(t *testing.T) {
	cfg := app.Default()
	cfg.Clipboard.Backend = "carrier-pigeon"
	_, err := app.NewWire(cfg, new(bytes.Buffer))
	require.ErrorIs(t, err, clipboard.ErrUnknownBackend)
}
