package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rxscan/rxscan/internal/barcode"
	"github.com/rxscan/rxscan/internal/decode"
)

// decodeCmd runs the fallback cascade and prints the raw payload.
var decodeCmd = &cobra.Command{
	Use:   "decode <image>",
	Short: "Decode a GS1 Data Matrix symbol from an image",
	Long: `Decode a Data Matrix symbol from a photograph and print the raw GS1
payload to standard output.

The image is run through a fixed cascade of preprocessing recipes and
rotations; the first strategy that yields a valid decode wins.

Exit codes:
  0  a payload was decoded
  1  usage error (missing or nonexistent file)
  2  no symbol found, or the image could not be processed

Examples:
  rxscan decode vial.jpg
  rxscan decode --verbose blister.png`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := requireImageArg(cmd, args)
		if err != nil {
			return err
		}

		pipeline := decode.New(barcode.NewBackend(), decodeConfig())
		out, err := pipeline.DecodeFile(cmd.Context(), path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out.Payload)
		return nil
	},
}

// requireImageArg validates the single image-path argument. A missing
// argument or nonexistent file is a usage error (exit 1), reported on
// stderr with a usage hint.
func requireImageArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) != 1 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s\n", cmd.UseLine())
		return "", errors.New("expected exactly one image path")
	}
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s\nno such file: %s\n", cmd.UseLine(), path)
		return "", fmt.Errorf("no such file: %s", path)
	}
	return path, nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
