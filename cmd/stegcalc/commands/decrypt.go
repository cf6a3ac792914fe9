package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stegcalc/internal/carrier"
	"stegcalc/internal/domain"
)

// decrypt --image <stego>: reveal a hidden message.
func decryptCmd() *cobra.Command {
	var (
		image    string
		password string
		copyOut  bool
	)
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Reveal the message hidden in an image",
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

			res := wire.Exchange.Decrypt(cmd.Context(), domain.DecryptRequest{
				Password:   password,
				StegoImage: img,
			})
			if err := resultError(res); err != nil {
				return err
			}
			defer wire.Exchange.Reset()

			if !copyOut {
				fmt.Fprintln(cmd.OutOrStdout(), wire.Exchange.Plaintext())
				return nil
			}
			sc, err := wire.Hygiene.Copy(wire.Exchange.Plaintext())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), wire.Status.Text())
			<-sc.Done()
			return sc.Err()
		},
	}
	cmd.Flags().StringVarP(&image, "image", "i", "", "image holding the message")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted for when empty)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the message to the clipboard instead of printing it; waits for the scrub")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}
