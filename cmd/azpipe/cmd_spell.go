package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Kamal578/CSCI-6515-Project1/confusion"
	"github.com/Kamal578/CSCI-6515-Project1/spell"
	"github.com/Kamal578/CSCI-6515-Project1/typos"
)

// loadChecker assembles a spelling checker from the vocabulary table and the
// confusion matrix the earlier pipeline stages produced.
func loadChecker() (*spell.Checker, error) {
	table, err := loadVocab()
	if err != nil {
		return nil, err
	}
	matrix, err := confusion.Load(config.Confusion.MatrixPath)
	if err != nil {
		return nil, err
	}
	return spell.NewChecker(table, matrix, spell.CheckerOptions{
		Engine:  spell.Options{MaxLenDiff: config.Spell.MaxLenDiff},
		MaxCost: config.Spell.MaxCost,
	}), nil
}

func newSpellCmd() *cobra.Command {
	var text bool
	cmd := &cobra.Command{
		Use:   "spell <word>...",
		Short: "Suggest corrections for misspelled words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := loadChecker()
			if err != nil {
				return err
			}

			if text {
				for _, arg := range args {
					fmt.Println(checker.CorrectText(arg))
				}
				return nil
			}

			for _, word := range args {
				if checker.IsCorrect(word) {
					fmt.Printf("%s\tok\n", word)
					continue
				}
				out, err := checker.Suggest(word, config.Spell.TopK)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", word)
				for _, c := range out {
					fmt.Printf("\t%s\t%.4f\n", c.Word, c.Cost)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&text, "text", false, "treat each argument as running text and correct it in place")
	return cmd
}

func newEvalCmd() *cobra.Command {
	var samplesPerWord int
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Score the corrector on synthetically corrupted vocabulary words",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadVocab()
			if err != nil {
				return err
			}
			matrix, err := confusion.Load(config.Confusion.MatrixPath)
			if err != nil {
				return err
			}

			words := table.Words()
			corruptor := typos.NewCorruptor(typos.CorruptOptions{Seed: config.Confusion.Seed})

			var samples []spell.Sample
			for _, w := range words {
				for i := 0; i < samplesPerWord; i++ {
					corrupted := corruptor.Corrupt(w)
					if corrupted == w || corrupted == "" {
						continue
					}
					samples = append(samples, spell.Sample{Correct: w, Corrupted: corrupted})
				}
			}
			if len(samples) == 0 {
				return fmt.Errorf("no usable evaluation samples generated from %d words", len(words))
			}

			acc, err := spell.Evaluate(samples, words, matrix, config.Spell.TopK)
			if err != nil {
				return err
			}

			fmt.Printf("samples   %d\n", acc.Total)
			fmt.Printf("top-1     %.4f\n", acc.Top1)
			fmt.Printf("top-%d     %.4f\n", config.Spell.TopK, acc.TopK)
			slog.Info("evaluation finished", "samples", acc.Total, "top1", acc.Top1, "topk", acc.TopK)
			return nil
		},
	}
	cmd.Flags().IntVar(&samplesPerWord, "samples-per-word", 1, "corrupted samples to draw per vocabulary word")
	return cmd
}
