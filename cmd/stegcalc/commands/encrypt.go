package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stegcalc/internal/carrier"
	"stegcalc/internal/domain"
)

// readPassword prompts on stderr and reads a password without echo.
func readPassword(prompt string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("password required (--password) when stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// resultError turns a failed workflow into a command error.
func resultError(res domain.ExchangeResult) error {
	if res.OK {
		return nil
	}
	return errors.New(res.Message)
}

// encrypt --message <text> --image <cover>: hide a message and save the
// carrier image.
func encryptCmd() *cobra.Command {
	var (
		message  string
		image    string
		outDir   string
		password string
	)
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Hide an encrypted message in a cover image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := carrier.Load(image)
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = readPassword("Password: "); err != nil {
					return err
				}
			}
			if outDir != "" {
				wire.Downloads.Dir = outDir
			}

			res := wire.Exchange.Encrypt(cmd.Context(), domain.EncryptRequest{
				Message:    message,
				Password:   password,
				CoverImage: img,
			})
			if err := resultError(res); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), wire.Status.Text())
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to hide")
	cmd.Flags().StringVarP(&image, "image", "i", "", "cover image")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to save secret.png in (default from config)")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted for when empty)")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}
