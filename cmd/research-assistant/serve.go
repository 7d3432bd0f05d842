// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/research-assistant/internal/server"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assistant over an HTTP JSON API",
	Long: `Serve starts an HTTP server with the same operations as the CLI:

  POST /api/submit         {"input": "..."}
  POST /api/search         {"topic": "...", "max_results": 5}
  GET  /api/papers/fetch   ?id=...
  GET  /api/papers/lookup  ?id=...
  POST /api/assistant      {"query": "..."}
  GET  /api/topics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFor(cmd)
		if err != nil {
			return err
		}
		if a.cfg.Log.Level != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		engine := server.NewEngine(server.Deps{
			Router:            a.router,
			Directory:         a.directory,
			Lookup:            a.lookup,
			Assistant:         a.assistant,
			Topics:            a.store,
			DefaultMaxResults: a.cfg.Search.MaxResults,
			Logger:            logger.Named("http"),
		})
		srv := &http.Server{Addr: a.cfg.Server.Addr, Handler: engine}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", zap.String("addr", srv.Addr))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-cmd.Context().Done():
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default \":8080\")")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}
