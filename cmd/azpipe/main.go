// Command azpipe runs the Azerbaijani Wikipedia NLP pipeline: corpus
// collection, vocabulary and statistics, subword merge training, confusion
// matrix building, spelling correction, and the HTTP suggestion service.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	config     Config
)

var rootCmd = &cobra.Command{
	Use:           "azpipe",
	Short:         "Azerbaijani Wikipedia NLP pipeline",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		var err error
		config, err = loadConfig(configPath, cmd.Flags().Changed("config"))
		return err
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "azpipe.yaml", "pipeline configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newCollectCmd(),
		newVocabCmd(),
		newStatsCmd(),
		newHeapsCmd(),
		newBPECmd(),
		newConfusionCmd(),
		newSpellCmd(),
		newEvalCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
