package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kamal578/CSCI-6515-Project1/confusion"
	"github.com/Kamal578/CSCI-6515-Project1/typos"
)

func newConfusionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confusion",
		Short: "Build a typo confusion matrix from synthetic corruption pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadVocab()
			if err != nil {
				return err
			}

			corruptor := typos.NewCorruptor(typos.CorruptOptions{Seed: config.Confusion.Seed})
			pairs := corruptor.Pairs(table.Words(), config.Confusion.PairsPerWord)

			matrix, err := confusion.Build(pairs, confusion.Options{Smoothing: config.Confusion.Smoothing})
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(config.Confusion.MatrixPath), 0o755); err != nil {
				return err
			}
			if err := matrix.Save(config.Confusion.MatrixPath); err != nil {
				return err
			}
			slog.Info("confusion matrix written",
				"path", config.Confusion.MatrixPath,
				"pairs", len(pairs),
				"min_edit_cost", matrix.MinEditCost())
			return nil
		},
	}
}
