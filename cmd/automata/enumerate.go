package main

import (
	"github.com/spf13/cobra"
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "List two-state DFAs over an alphabet",
	Long: `Enumerates DFAs with states q0 and q1 in a fixed order: every transition table, and for
each table every accept set. --max-states is accepted but the state count is always 2.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		alphabet, _ := cmd.Flags().GetStringSlice("alphabet")
		maxStates, _ := cmd.Flags().GetInt("max-states")
		count, _ := cmd.Flags().GetInt("count")

		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return app.Enumerate(alphabet, maxStates, count)
	},
}

func init() {
	rootCmd.AddCommand(enumerateCmd)

	enumerateCmd.Flags().StringSliceP("alphabet", "a", []string{"a", "b"}, "Input symbols")
	enumerateCmd.Flags().Int("max-states", 2, "Maximum number of states (currently always 2)")
	enumerateCmd.Flags().IntP("count", "n", 20, "Number of DFAs to print")
}
