package app

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultBaseURL is where the remote service listens in development.
	DefaultBaseURL = "http://127.0.0.1:5000"

	defaultTimeout   = 60
	defaultLogLevel  = "NOTICE"
	defaultClipboard = "auto"
)

// ErrInvalidBaseURL is returned when Service.BaseURL is not an absolute
// http(s) URL.
var ErrInvalidBaseURL = errors.New("config: invalid service base URL")

// Service selects the remote encryption/steganography service.
type Service struct {
	// BaseURL is the service location, e.g. http://127.0.0.1:5000.
	BaseURL string
	// TimeoutSeconds bounds each request.
	TimeoutSeconds int
}

// Timeout returns the request timeout.
func (s Service) Timeout() time.Duration { return time.Duration(s.TimeoutSeconds) * time.Second }

// Clipboard selects the clipboard backend.
type Clipboard struct {
	// Backend is one of auto, osc52, xclip, xsel, wl-copy, pbcopy, memory.
	Backend string
}

// Download configures where carrier images are saved.
type Download struct {
	// Dir defaults to the current directory.
	Dir string
}

// Disguise configures the disguise state machine.
type Disguise struct {
	// ClearOnReturn wipes covert-tool fields and displayed plaintext when
	// going back to the calculator.
	ClearOnReturn bool
}

// Logging configures the log backend.
type Logging struct {
	File    string
	Level   string
	Disable bool
}

// Config holds runtime wiring options for building the app.
type Config struct {
	Service   Service
	Clipboard Clipboard
	Download  Download
	Disguise  Disguise
	Logging   Logging
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := new(Config)
	if err := cfg.FixupAndValidate(); err != nil {
		panic(err)
	}
	return cfg
}

// Load parses and validates a TOML configuration.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to load config file: unknown keys %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses, and validates the provided file.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return Load(b)
}

// FixupAndValidate applies defaults to config entries and validates them.
func (c *Config) FixupAndValidate() error {
	if c.Service.BaseURL == "" {
		c.Service.BaseURL = DefaultBaseURL
	}
	c.Service.BaseURL = strings.TrimRight(c.Service.BaseURL, "/")
	u, err := url.Parse(c.Service.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Service.BaseURL)
	}
	if c.Service.TimeoutSeconds < 0 {
		return fmt.Errorf("config: negative Service.TimeoutSeconds %d", c.Service.TimeoutSeconds)
	}
	if c.Service.TimeoutSeconds == 0 {
		c.Service.TimeoutSeconds = defaultTimeout
	}

	if c.Clipboard.Backend == "" {
		c.Clipboard.Backend = defaultClipboard
	}
	if c.Download.Dir == "" {
		c.Download.Dir = "."
	}
	c.Download.Dir = filepath.Clean(c.Download.Dir)

	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Level = strings.ToUpper(c.Logging.Level)
	return nil
}
