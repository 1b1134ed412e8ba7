package main

import (
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every program on built-in sample automata",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		inputs, _ := cmd.Flags().GetStringSlice("inputs")

		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return app.Demo(count, inputs)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().IntP("count", "n", 20, "Number of DFAs to enumerate")
	demoCmd.Flags().StringSlice("inputs", []string{"aab", "aa"}, "Inputs simulated on the even-a decider")
}
