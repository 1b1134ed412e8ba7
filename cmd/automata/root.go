package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/metrics"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Automata validates, enumerates, compiles and analyzes DFAs",
	Long: `Automata is a small computational-theory toolkit. It checks DFA definitions written in
YAML or JSON, enumerates two-state DFAs, compiles a DFA into a decider Turing machine,
simulates that machine with a full tape trace, and decides whether a DFA's language is empty.`,
	SilenceUsage: true,
}

// recorder collects metrics for the lifetime of the process.
var recorder = metrics.New()

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if path, _ := rootCmd.PersistentFlags().GetString("metrics-file"); path != "" {
		if werr := recorder.WriteFile(path); werr != nil {
			fmt.Fprintf(os.Stderr, "failed to write metrics: %v\n", werr)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable markdown rendering and colors")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file on exit")
}

// newApp builds the command runner from the persistent flags.
func newApp(cmd *cobra.Command) (*cli.App, error) {
	levelFlag, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelFlag)
	if err != nil {
		return nil, err
	}

	outputFlag, _ := cmd.Flags().GetString("output")
	output, err := cli.ParseOutput(outputFlag)
	if err != nil {
		return nil, err
	}

	plain, _ := cmd.Flags().GetBool("plain")
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		plain = true
	}

	return cli.New(cli.Options{
		Out:     cmd.OutOrStdout(),
		Logger:  logging.New(os.Stderr, level),
		Metrics: recorder,
		Output:  output,
		Plain:   plain,
	}), nil
}
