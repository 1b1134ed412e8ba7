package main

import (
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export a DFA as a Mermaid diagram",
	Long:  `Outputs a Mermaid flowchart (graph LR) of one definition. With --input, the states visited on that input are highlighted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, _ := cmd.Flags().GetInt("index")

		var input *string
		if cmd.Flags().Changed("input") {
			value, _ := cmd.Flags().GetString("input")
			input = &value
		}

		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return app.Graph(args[0], index, input)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Int("index", 0, "Which definition of the file to draw")
	graphCmd.Flags().String("input", "", "Highlight the run on this input")
}
