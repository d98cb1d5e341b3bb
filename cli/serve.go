package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/promptaudit/config"
	"github.com/fwojciec/promptaudit/gemini"
	"github.com/fwojciec/promptaudit/httpserver"
)

// shutdownGrace bounds how long in-flight requests may run after a
// shutdown signal.
const shutdownGrace = 10 * time.Second

func newServeCmd() *cobra.Command {
	var (
		host string
		port string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if cfg.APIKey == "" {
				return fmt.Errorf("GEMINI_API_KEY environment variable required")
			}
			if host == "" {
				host = cfg.Host
			}
			if port == "" {
				port = cfg.Port
			}

			client, err := gemini.NewClient(cmd.Context(), cfg.APIKey)
			if err != nil {
				return fmt.Errorf("failed to create Gemini client: %w", err)
			}

			logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
			analyzer := gemini.NewAnalyzer(client, cfg.Model, gemini.WithTimeout(cfg.Timeout))
			srv := httpserver.NewServer(analyzer, httpserver.WithLogger(logger))

			addr := net.JoinHostPort(host, port)
			logger.Info("starting server", "addr", addr, "model", cfg.Model)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return srv.ListenAndServe(addr)
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "interface to bind (default 127.0.0.1)")
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default 8080)")

	return cmd
}
