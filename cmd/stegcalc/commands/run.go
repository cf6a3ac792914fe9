package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"stegcalc/internal/tui"
)

// run: show the calculator. Same as stegcalc with no subcommand.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Show the calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context())
		},
	}
}

func runInteractive(ctx context.Context) error {
	m := tui.New(ctx, tui.Deps{
		Machine:  wire.Disguise,
		Exchange: wire.Exchange,
		Hygiene:  wire.Hygiene,
		Status:   wire.Status,
	})
	if err := tui.Run(ctx, m); err != nil {
		return err
	}
	return waitForScrubs(ctx)
}

// waitForScrubs keeps the process alive until copied plaintext has been
// overwritten. An interrupt abandons the wait.
func waitForScrubs(ctx context.Context) error {
	if wire.Hygiene.Pending() == 0 {
		return nil
	}
	fmt.Fprintln(os.Stderr, "Waiting for the clipboard to be cleared...")
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return wire.Hygiene.Wait(ctx)
}
