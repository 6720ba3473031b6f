package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/displaycard/pkg/server"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the live server",
		Long: `Run the live showcase server.

Each page view opens a session. The browser reports image load and
error events over a WebSocket and receives DOM patches back.

Examples:
  displaycard serve
  displaycard serve --port=8080
  displaycard serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if port > 0 {
				a.cfg.Server.Port = port
			}
			if host != "" {
				a.cfg.Server.Host = host
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, a)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}

func runServe(ctx context.Context, a *app) error {
	sessions := server.DefaultManagerConfig()
	sessions.AttachTimeout = a.cfg.AttachTimeout()
	sessions.MaxSessions = a.cfg.Session.MaxSessions

	srv := server.New(server.Config{
		Address:         a.cfg.Address(),
		ShutdownTimeout: a.cfg.ShutdownTimeout(),
		Sessions:        sessions,
		Registry:        a.registry,
		Logger:          a.log.Logger,
	}, a.site.Page)

	a.log.Info("serving", "address", "http://"+a.cfg.Address(), "config", a.cfg.Path())
	return srv.Run(ctx)
}
