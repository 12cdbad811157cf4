package main

import (
	"compress/bzip2"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kamal578/CSCI-6515-Project1/corpus"
)

func newCollectCmd() *cobra.Command {
	var (
		random   int
		category string
		limit    int
		dump     string
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect articles into the corpus CSV",
		Long: `Collect fetches Azerbaijani Wikipedia articles, cleans the wikitext,
and writes the corpus CSV. Sources: --random N live articles, --category
NAME live category members, or --dump FILE for an offline XML dump
(.bz2 accepted).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				pages []corpus.Page
				err   error
			)

			switch {
			case dump != "":
				pages, err = collectFromDump(cmd, dump, maxPages)
			case category != "":
				pages, err = collectFromAPI(cmd, 0, category, limit)
			default:
				if random <= 0 {
					random = 500
				}
				pages, err = collectFromAPI(cmd, random, "", 0)
			}
			if err != nil {
				return err
			}
			if len(pages) == 0 {
				return fmt.Errorf("no documents collected")
			}

			if err := os.MkdirAll(filepath.Dir(config.Corpus.Path), 0o755); err != nil {
				return err
			}
			if err := corpus.SaveCSV(config.Corpus.Path, pages); err != nil {
				return err
			}
			slog.Info("corpus written", "path", config.Corpus.Path, "documents", len(pages))
			return nil
		},
	}

	cmd.Flags().IntVar(&random, "random", 0, "number of random articles to fetch")
	cmd.Flags().StringVar(&category, "category", "", "fetch members of this category instead")
	cmd.Flags().IntVar(&limit, "limit", 500, "maximum category members to fetch")
	cmd.Flags().StringVar(&dump, "dump", "", "read articles from this MediaWiki XML dump")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "cap on dump pages kept (0 = unlimited)")
	return cmd
}

func collectFromAPI(cmd *cobra.Command, random int, category string, limit int) ([]corpus.Page, error) {
	client := corpus.NewClient(corpus.ClientOptions{
		APIURL:            config.Corpus.APIURL,
		RequestsPerSecond: config.Corpus.RequestsPerSecond,
		Retries:           config.Corpus.Retries,
		Logger:            slog.Default(),
	})
	ctx := cmd.Context()

	var (
		titles []string
		err    error
	)
	if category != "" {
		titles, err = client.CategoryTitles(ctx, category, limit)
	} else {
		titles, err = client.RandomTitles(ctx, random)
	}
	if err != nil {
		return nil, err
	}
	slog.Info("fetched titles", "count", len(titles))

	return client.FetchPages(ctx, titles, config.Corpus.MinChars)
}

func collectFromDump(cmd *cobra.Command, path string, maxPages int) ([]corpus.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(f)
	}
	return corpus.ReadDump(cmd.Context(), r, config.Corpus.MinChars, maxPages)
}
