package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kamal578/CSCI-6515-Project1/bpe"
)

func newBPECmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bpe",
		Short: "Learn and apply subword merge rules",
	}
	cmd.AddCommand(newBPETrainCmd(), newBPEEncodeCmd())
	return cmd
}

func newBPETrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Learn merge rules from the vocabulary frequency table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadVocab()
			if err != nil {
				return err
			}

			rules, err := bpe.Train(table, config.BPE.NumMerges, config.BPE.MinWordFreq)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(config.BPE.RulesPath), 0o755); err != nil {
				return err
			}
			if err := bpe.SaveRules(config.BPE.RulesPath, rules); err != nil {
				return err
			}
			slog.Info("merge rules written",
				"path", config.BPE.RulesPath,
				"rules", len(rules),
				"symbols", len(bpe.SymbolVocab(table, rules)))
			return nil
		},
	}
}

func newBPEEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <word>...",
		Short: "Segment words with previously learned merge rules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := bpe.LoadRules(config.BPE.RulesPath)
			if err != nil {
				return err
			}
			for _, word := range args {
				symbols := bpe.Encode(word, rules)
				fmt.Printf("%s\t%s\n", word, strings.Join(symbols, " "))
			}
			return nil
		},
	}
}
