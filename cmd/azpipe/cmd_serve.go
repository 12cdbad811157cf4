package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Kamal578/CSCI-6515-Project1/confusion"
	"github.com/Kamal578/CSCI-6515-Project1/server"
	"github.com/Kamal578/CSCI-6515-Project1/spell"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the spelling suggestion HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadVocab()
			if err != nil {
				return err
			}
			matrix, err := confusion.Load(config.Confusion.MatrixPath)
			if err != nil {
				return err
			}

			var dict server.Dictionary
			if config.Server.RedisAddr != "" {
				client := redis.NewClient(&redis.Options{Addr: config.Server.RedisAddr})
				pingCtx, cancel := context.WithTimeout(cmd.Context(), 3*time.Second)
				err := client.Ping(pingCtx).Err()
				cancel()
				if err != nil {
					return err
				}
				dict = server.NewRedisDictionary(client)
				slog.Info("custom dictionary backed by redis", "addr", config.Server.RedisAddr)
			} else {
				dict = server.NewMemoryDictionary()
				slog.Info("custom dictionary held in memory")
			}

			srv, err := server.New(table, matrix, dict, server.Config{
				TopK:      config.Spell.TopK,
				CacheSize: config.Server.CacheSize,
				Engine:    spell.Options{MaxLenDiff: config.Spell.MaxLenDiff},
				MaxCost:   config.Spell.MaxCost,
				Logger:    slog.Default(),
			})
			if err != nil {
				return err
			}

			httpSrv := &http.Server{
				Addr:              config.Server.Addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				slog.Info("listening", "addr", config.Server.Addr, "vocab_size", table.Types())
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			slog.Info("server stopped")
			return nil
		},
	}
}
