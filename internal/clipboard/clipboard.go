package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"

	"stegcalc/internal/domain"
)

// ErrUnknownBackend is returned by ByName for names it does not know.
var ErrUnknownBackend = errors.New("clipboard: unknown backend")

// OSC52 writes the clipboard through the terminal.
type OSC52 struct {
	W io.Writer
	// Tmux wraps the sequence in a tmux passthrough.
	Tmux bool
}

var _ domain.Clipboard = (*OSC52)(nil)

// WriteText emits the OSC 52 sequence for text.
func (c *OSC52) WriteText(text string) error {
	seq := osc52.New(text)
	if c.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.W); err != nil {
		return fmt.Errorf("clipboard: osc52: %w", err)
	}
	return nil
}

// Exec writes the clipboard by piping text into a helper program.
type Exec struct {
	Name string
	Args []string
}

var _ domain.Clipboard = (*Exec)(nil)

// WriteText runs the helper with text on stdin.
func (c *Exec) WriteText(text string) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("clipboard: %s: %w: %s", c.Name, err, msg)
		}
		return fmt.Errorf("clipboard: %s: %w", c.Name, err)
	}
	return nil
}

// Memory is an in-process clipboard. Fail, when set, is returned by every
// write.
type Memory struct {
	mu      sync.Mutex
	text    string
	history []string
	Fail    error
}

var _ domain.Clipboard = (*Memory)(nil)

// WriteText stores text.
func (c *Memory) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return c.Fail
	}
	c.text = text
	c.history = append(c.history, text)
	return nil
}

// Text returns the current content.
func (c *Memory) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// History returns every write in order.
func (c *Memory) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.history...)
}

var helpers = map[string]Exec{
	"xclip":   {Name: "xclip", Args: []string{"-selection", "clipboard"}},
	"xsel":    {Name: "xsel", Args: []string{"--clipboard", "--input"}},
	"wl-copy": {Name: "wl-copy"},
	"pbcopy":  {Name: "pbcopy"},
}

// ByName returns the backend called name. OSC52 output goes to tty.
func ByName(name string, tty io.Writer) (domain.Clipboard, error) {
	switch name {
	case "", "auto":
		return detect(tty), nil
	case "osc52":
		return &OSC52{W: tty, Tmux: os.Getenv("TMUX") != ""}, nil
	case "memory":
		return &Memory{}, nil
	}
	if h, ok := helpers[name]; ok {
		return &h, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

func detect(tty io.Writer) domain.Clipboard {
	var order []string
	switch {
	case runtime.GOOS == "darwin":
		order = []string{"pbcopy"}
	case os.Getenv("WAYLAND_DISPLAY") != "":
		order = []string{"wl-copy", "xclip", "xsel"}
	case os.Getenv("DISPLAY") != "":
		order = []string{"xclip", "xsel"}
	}
	for _, name := range order {
		if _, err := exec.LookPath(name); err == nil {
			h := helpers[name]
			return &h
		}
	}
	return &OSC52{W: tty, Tmux: os.Getenv("TMUX") != ""}
}
