package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Kamal578/CSCI-6515-Project1/corpus"
	"github.com/Kamal578/CSCI-6515-Project1/stats"
	"github.com/Kamal578/CSCI-6515-Project1/tokenizer"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print corpus summary and write the Zipf rank-frequency table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadVocab()
			if err != nil {
				return err
			}

			summary := stats.Summarize(table)
			fmt.Println(summary)

			if err := os.MkdirAll(filepath.Dir(config.Stats.ZipfPath), 0o755); err != nil {
				return err
			}
			f, err := os.Create(config.Stats.ZipfPath)
			if err != nil {
				return err
			}
			if err := stats.WriteZipfCSV(f, stats.Zipf(table)); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			slog.Info("zipf table written", "path", config.Stats.ZipfPath, "types", table.Types())
			return nil
		},
	}
}

func newHeapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heaps",
		Short: "Fit Heaps' law over the corpus token stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := corpus.LoadCSV(config.Corpus.Path)
			if err != nil {
				return err
			}

			var tokens []string
			for _, p := range pages {
				tokens = append(tokens, tokenizer.Words(p.Text, config.Vocab.Lowercase)...)
			}

			points := stats.GrowthCurve(tokens, config.Stats.Stride)
			fit, err := stats.FitHeaps(points)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(config.Stats.HeapsPath), 0o755); err != nil {
				return err
			}
			if err := writeHeapsCSV(config.Stats.HeapsPath, points); err != nil {
				return err
			}

			fmt.Printf("V(N) = %.4f * N^%.4f  (R² = %.4f, %d points)\n", fit.K, fit.Beta, fit.R2, len(points))
			slog.Info("heaps curve written", "path", config.Stats.HeapsPath, "k", fit.K, "beta", fit.Beta)
			return nil
		},
	}
}

func writeHeapsCSV(path string, points []stats.HeapsPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"tokens", "types"}); err != nil {
		return err
	}
	for _, p := range points {
		if err := w.Write([]string{strconv.Itoa(p.Tokens), strconv.Itoa(p.Types)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
