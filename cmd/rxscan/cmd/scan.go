package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rxscan/rxscan/internal/barcode"
	"github.com/rxscan/rxscan/internal/decode"
	"github.com/rxscan/rxscan/internal/gs1"
	"github.com/rxscan/rxscan/internal/lookup"
)

// scanResult is the combined output of a full scan.
type scanResult struct {
	Record   gs1.Record          `json:"record"`
	Strategy string              `json:"strategy"`
	Attempts int                 `json:"attempts"`
	Drugs    []lookup.DrugRecord `json:"drugs,omitempty"`
}

// scanCmd decodes an image and parses the payload in one step.
var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Decode an image and parse the payload into a drug record",
	Long: `Run the full pipeline: decode the Data Matrix symbol, parse the GS1
payload, and optionally resolve the derived NDC against the drug
database.

Examples:
  rxscan scan vial.jpg
  rxscan scan vial.jpg --format json
  rxscan scan vial.jpg --lookup`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := requireImageArg(cmd, args)
		if err != nil {
			return err
		}
		cfg := GetConfig()

		pipeline := decode.New(barcode.NewBackend(), decodeConfig())
		out, err := pipeline.DecodeFile(cmd.Context(), path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return err
		}

		rec, parseErr := gs1.Parse(out.Payload)
		if parseErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", parseErr)
		}

		result := scanResult{Record: rec, Strategy: out.Strategy, Attempts: out.Attempts}

		withLookup, _ := cmd.Flags().GetBool("lookup")
		if withLookup && rec.NDC != "" {
			client := lookup.NewClient(cfg.Lookup.BaseURL, time.Duration(cfg.Lookup.TimeoutSec)*time.Second)
			drugs, lookupErr := client.Lookup(cmd.Context(), rec.NDC)
			switch {
			case errors.Is(lookupErr, lookup.ErrNoMatch):
				fmt.Fprintf(cmd.ErrOrStderr(), "No drug record matches NDC %s\n", rec.NDC)
			case lookupErr != nil:
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: drug lookup failed: %v\n", lookupErr)
			default:
				result.Drugs = drugs
			}
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = cfg.Output.Format
		}
		return writeScanResult(cmd, result, format)
	},
}

func writeScanResult(cmd *cobra.Command, result scanResult, format string) error {
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "text":
		if err := writeRecord(cmd, result.Record, format); err != nil {
			return err
		}
		fmt.Fprintf(w, "Strategy:   %s (attempt %d)\n", result.Strategy, result.Attempts)
		for _, d := range result.Drugs {
			fmt.Fprintf(w, "Drug:       %s (%s) by %s\n", d.BrandName, d.GenericName, d.LabelerName)
		}
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be text or json)", format)
	}
}

func init() {
	scanCmd.Flags().String("format", "", "output format: text or json (default from config)")
	scanCmd.Flags().Bool("lookup", false, "resolve the derived NDC against the drug database")
	rootCmd.AddCommand(scanCmd)
}
