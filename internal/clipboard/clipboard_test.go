package clipboard_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"stegcalc/internal/clipboard"
)

func TestOSC52(t *testing.T) {
	var buf bytes.Buffer
	c := &clipboard.OSC52{W: &buf}
	require.NoError(t, c.WriteText("attack at dawn"))

	enc := base64.StdEncoding.EncodeToString([]byte("attack at dawn"))
	require.Contains(t, buf.String(), "\x1b]52;c;"+enc)
}

func TestMemory(t *testing.T) {
	c := &clipboard.Memory{}
	require.NoError(t, c.WriteText("a"))
	require.NoError(t, c.WriteText(" "))
	require.Equal(t, " ", c.Text())
	require.Equal(t, []string{"a", " "}, c.History())

	c.Fail = errors.New("denied")
	require.Error(t, c.WriteText("b"))
	require.Equal(t, " ", c.Text())
}

func TestByName(t *testing.T) {
	var buf bytes.Buffer
	c, err := clipboard.ByName("osc52", &buf)
	require.NoError(t, err)
	require.IsType(t, &clipboard.OSC52{}, c)

	c, err = clipboard.ByName("xclip", &buf)
	require.NoError(t, err)
	require.Equal(t, "xclip", c.(*clipboard.Exec).Name)

	c, err = clipboard.ByName("auto", &buf)
	require.NoError(t, err)
	require.NotNil(t, c)

	_, err = clipboard.ByName("carrier-pigeon", &buf)
	require.ErrorIs(t, err, clipboard.ErrUnknownBackend)
}

func TestExecMissingHelper(t *testing.T) {
	c := &clipboard.Exec{Name: "stegcalc-no-such-helper"}
	require.Error(t, c.WriteText("x"))
}
