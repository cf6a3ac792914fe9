package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"stegcalc/internal/app"
)

// errorHandlerWithUsage prints err and, for argument mistakes, the usage
// text of cmd.
func errorHandlerWithUsage(cmd *cobra.Command) fang.ErrorHandler {
	return func(w io.Writer, styles fang.Styles, err error) {
		_, _ = fmt.Fprintln(w, styles.ErrorHeader.String())
		_, _ = fmt.Fprintln(w, styles.ErrorText.Render(strings.TrimSuffix(err.Error(), ".")+"."))
		_, _ = fmt.Fprintln(w)

		if !isUsageError(err) {
			_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(
				lipgloss.Left,
				styles.ErrorText.UnsetWidth().Render("Try"),
				styles.Program.Flag.Render("--help"),
				styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render("for usage."),
			))
			_, _ = fmt.Fprintln(w)
			return
		}
		cw := colorprofile.NewWriter(w, nil)
		cmd.SetOut(cw)
		if help := cmd.HelpFunc(); help != nil {
			help(cmd, nil)
		}
	}
}

func isUsageError(err error) bool {
	if errors.Is(err, app.ErrInvalidBaseURL) {
		return true
	}
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
		"required flag",
		"accepts",
		"arg(s), received",
		"failed to load config file",
	} {
		if strings.Contains(s, prefix) {
			return true
		}
	}
	return false
}
