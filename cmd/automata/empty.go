package main

import (
	"github.com/spf13/cobra"
)

var emptyCmd = &cobra.Command{
	Use:   "empty <file>",
	Short: "Decide whether each DFA recognizes the empty language",
	Long:  `Searches the states reachable from the start state. Non-empty languages are reported with a shortest accepted word.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return app.Empty(args[0])
	},
}

func init() {
	rootCmd.AddCommand(emptyCmd)
}
