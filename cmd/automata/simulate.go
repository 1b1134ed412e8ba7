package main

import (
	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/pkg/simulator"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <file> [input...]",
	Short: "Run the compiled decider on input strings",
	Long: `Compiles every definition in the file and runs the resulting Turing machine on each input,
one tape cell per character. With no inputs, the empty string is simulated.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		trace, _ := cmd.Flags().GetBool("trace")

		inputs := args[1:]
		if len(inputs) == 0 {
			inputs = []string{""}
		}

		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return app.Simulate(args[0], cli.SimulateOptions{
			Inputs:   inputs,
			MaxSteps: maxSteps,
			Trace:    trace,
		})
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().Int("max-steps", simulator.DefaultMaxSteps, "Step bound before giving up")
	simulateCmd.Flags().BoolP("trace", "t", false, "Print every tape configuration")
}
