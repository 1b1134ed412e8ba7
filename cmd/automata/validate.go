package main

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check DFA definitions for structural well-formedness",
	Long: `Prints 1 for every well-formed definition in the file and 0 with the first failed check
otherwise. Exits non-zero when any definition is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return app.Validate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
