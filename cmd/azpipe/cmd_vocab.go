package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kamal578/CSCI-6515-Project1/corpus"
	"github.com/Kamal578/CSCI-6515-Project1/tokenizer"
	"github.com/Kamal578/CSCI-6515-Project1/vocab"
)

func newVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Build the token frequency table from the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := buildVocab()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(config.Vocab.Path), 0o755); err != nil {
				return err
			}
			if err := table.Save(config.Vocab.Path); err != nil {
				return err
			}
			slog.Info("vocabulary written",
				"path", config.Vocab.Path,
				"types", table.Types(),
				"tokens", table.Tokens())
			return nil
		},
	}
	return cmd
}

// buildVocab tokenizes the whole corpus and applies the configured filters.
func buildVocab() (vocab.Table, error) {
	pages, err := corpus.LoadCSV(config.Corpus.Path)
	if err != nil {
		return nil, err
	}

	table := make(vocab.Table)
	for _, p := range pages {
		table.Add(tokenizer.Words(p.Text, config.Vocab.Lowercase))
	}

	return table.Filter(vocab.FilterOptions{
		MinFreq:   config.Vocab.MinFreq,
		MinLen:    config.Vocab.MinLen,
		AlphaOnly: config.Vocab.AlphaOnly,
	}), nil
}

// loadVocab reads a previously built table.
func loadVocab() (vocab.Table, error) {
	return vocab.Load(config.Vocab.Path)
}
