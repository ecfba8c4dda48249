package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rxscan/rxscan/internal/gs1"
)

// parseCmd parses an already-decoded payload string.
var parseCmd = &cobra.Command{
	Use:   "parse <payload>",
	Short: "Parse a GS1 payload string into a structured record",
	Long: `Parse a raw GS1 payload (as printed by "rxscan decode") into its typed
fields: GTIN, NDC, expiration date and lot number.

Parsing is best-effort: fields that cannot be extracted are left empty,
and derivation problems (e.g. an impossible expiration date) are
reported as a warning while the partial record is still printed.

Examples:
  rxscan parse 010034928158905817131028100U42275AA
  rxscan parse --format json 0100349281589058`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s\n", cmd.UseLine())
			return errors.New("expected exactly one payload string")
		}

		rec, parseErr := gs1.Parse(args[0])
		if parseErr != nil {
			// Non-fatal: the partial record is still printed.
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", parseErr)
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = GetConfig().Output.Format
		}
		return writeRecord(cmd, rec, format)
	},
}

// writeRecord renders a record as text or JSON on stdout.
func writeRecord(cmd *cobra.Command, rec gs1.Record, format string) error {
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "text":
		fmt.Fprintf(w, "Raw:        %s\n", rec.Raw)
		if rec.GTIN != "" {
			fmt.Fprintf(w, "GTIN:       %s\n", rec.GTIN)
		}
		if rec.NDC != "" {
			fmt.Fprintf(w, "NDC:        %s\n", rec.NDC)
		}
		if rec.Expiration != "" {
			fmt.Fprintf(w, "Expires:    %s (%s)\n", rec.Expiration, rec.ExpirationRaw)
		} else if rec.ExpirationRaw != "" {
			fmt.Fprintf(w, "Expires:    %s (unresolved)\n", rec.ExpirationRaw)
		}
		if rec.Lot != "" {
			fmt.Fprintf(w, "Lot:        %s\n", rec.Lot)
		}
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be text or json)", format)
	}
}

func init() {
	parseCmd.Flags().String("format", "", "output format: text or json (default from config)")
	rootCmd.AddCommand(parseCmd)
}
