package commands

import (
	"context"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"stegcalc/internal/app"
)

var (
	configFile string
	serviceURL string
	logFile    string
	logLevel   string

	wire *app.Wire
)

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "stegcalc",
		Short: "A calculator",
		Long: "A terminal calculator.\n\n" +
			"Subcommands hide a message in an image, or reveal one, via the configured service.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			wire, err = app.NewWire(cfg, os.Stderr)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "TOML config file")
	pf.StringVar(&serviceURL, "service", "", "service base URL (e.g. http://127.0.0.1:5000)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&logLevel, "log-level", "", "log level (ERROR, WARNING, NOTICE, INFO, DEBUG)")

	root.AddCommand(runCmd(), encryptCmd(), decryptCmd(), inspectCmd())
	return root
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig() (*app.Config, error) {
	cfg := new(app.Config)
	if configFile != "" {
		var err error
		if cfg, err = app.LoadFile(configFile); err != nil {
			return nil, err
		}
	}
	if serviceURL != "" {
		cfg.Service.BaseURL = serviceURL
	}
	if logFile != "" {
		cfg.Logging.File = logFile
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := newRoot()
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(versioninfo.Short()),
		fang.WithErrorHandler(errorHandlerWithUsage(root)),
	); err != nil {
		os.Exit(1)
	}
}
