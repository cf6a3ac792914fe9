package app

import (
	"io"
	"net/http"

	"stegcalc/internal/clipboard"
	"stegcalc/internal/disguise"
	"stegcalc/internal/domain"
	"stegcalc/internal/log"
	"stegcalc/internal/remote"
	"stegcalc/internal/services/exchange"
	"stegcalc/internal/services/hygiene"
	"stegcalc/internal/status"
	"stegcalc/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config    *Config
	Log       *log.Backend
	Status    *status.Slot
	Remote    *remote.Client
	Downloads *store.Downloads
	Clipboard domain.Clipboard
	Exchange  *exchange.Service
	Hygiene   *hygiene.Service
	Disguise  *disguise.Machine
	HTTP      *http.Client
}

// NewWire constructs the dependency graph from cfg. tty receives OSC 52
// clipboard sequences.
func NewWire(cfg *Config, tty io.Writer) (*Wire, error) {
	backend, err := log.New(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Disable)
	if err != nil {
		return nil, err
	}
	cb, err := clipboard.ByName(cfg.Clipboard.Backend, tty)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.Service.Timeout()}
	st := status.New()
	rc := remote.New(cfg.Service.BaseURL, httpClient)
	downloads := store.NewDownloads(cfg.Download.Dir)

	exchangeSvc := exchange.New(rc, downloads, st, backend.GetLogger("exchange"))
	hygieneSvc := hygiene.New(cb, st, hygiene.WithLogger(backend.GetLogger("hygiene")))

	policy := disguise.KeepCovertState
	if cfg.Disguise.ClearOnReturn {
		policy = disguise.ClearCovertState
	}
	disguiseLog := backend.GetLogger("disguise")
	machine := disguise.New(
		disguise.WithReturnPolicy(policy),
		disguise.WithResetters(exchangeSvc),
		disguise.OnTransition(func(from, to domain.Mode) {
			disguiseLog.Infof("%s -> %s", from, to)
		}),
	)

	return &Wire{
		Config:    cfg,
		Log:       backend,
		Status:    st,
		Remote:    rc,
		Downloads: downloads,
		Clipboard: cb,
		Exchange:  exchangeSvc,
		Hygiene:   hygieneSvc,
		Disguise:  machine,
		HTTP:      httpClient,
	}, nil
}

// Close releases the log file.
func (w *Wire) Close() error { return w.Log.Close() }
