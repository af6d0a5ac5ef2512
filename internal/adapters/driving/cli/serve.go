package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sandipbaste/My-Portfolio/internal/adapters/driving/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API that backs the portfolio frontend.

Endpoints:
  POST /api/chat     answer a chat message
  POST /api/contact  submit a contact message
  GET  /health       liveness, pipeline mode and corpus staleness`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The server is headless; social navigation reports URLs instead of
	// launching a browser on the host.
	app, err := bootstrap(ctx, false)
	if err != nil {
		return err
	}
	defer app.Close()

	stale := func() bool { return false }
	if app.Watcher != nil {
		stale = app.Watcher.Stale
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Assistant: app.Assistant,
		Contact:   app.Contact,
		Mode:      app.Assistant.Mode().String(),
		Stale:     stale,
	}, app.Config.Server.AllowedOrigins)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", app.Config.Server.Host, app.Config.Server.Port)
	return server.Run(ctx, addr)
}
