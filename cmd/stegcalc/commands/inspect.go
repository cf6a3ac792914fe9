package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stegcalc/internal/carrier"
)

// inspect <image>: print format, dimensions and fingerprint of an image.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <image>",
		Short: "Describe an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := carrier.Load(args[0])
			if err != nil {
				return err
			}
			r, err := carrier.Inspect(img)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:        %s\n", r.Name)
			fmt.Fprintf(out, "format:      %s\n", r.Format)
			fmt.Fprintf(out, "size:        %d bytes\n", r.Size)
			fmt.Fprintf(out, "dimensions:  %dx%d\n", r.Width, r.Height)
			fmt.Fprintf(out, "capacity:    ~%d bytes\n", r.Capacity)
			fmt.Fprintf(out, "fingerprint: %s\n", r.Fingerprint)
			return nil
		},
	}
}
