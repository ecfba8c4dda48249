package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rxscan/rxscan/internal/decode"
	"github.com/rxscan/rxscan/internal/preprocess"
)

// recipesCmd dumps the preprocessing catalog and strategy order.
var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Print the preprocessing catalog and strategy order",
	Long: `Print the fixed preprocessing recipes as YAML, followed by the decode
strategy cascade in evaluation order. Useful for understanding why a
particular capture decodes (or fails to).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(preprocess.Catalog())
		if err != nil {
			return fmt.Errorf("marshaling recipe catalog: %w", err)
		}
		w := cmd.OutOrStdout()
		fmt.Fprint(w, string(data))

		fmt.Fprintln(w, "strategy_order:")
		for i, st := range decode.DefaultStrategies(decodeConfig()) {
			fmt.Fprintf(w, "  %d. %s\n", i+1, st.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recipesCmd)
}
