package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Serve component previews, the component API and search",
		Long: `Start the HTTP server.

Routes:
  GET /                        component index
  GET /components/{name}       preview page, props from the query string
  GET /api/components          component list
  GET /api/components/{name}   resolved options as JSON
  GET /api/search?q=&limit=    search results as JSON
  GET /health                  health check
  GET /metrics                 Prometheus metrics

Examples:
  bsui serve
  bsui serve --port 3000
  BSUI_SEARCH_CONTENT_ROOT=./site bsui serve`,
		RunE: runServe,
	}

	cmd.Flags().IntP("port", "p", 0, "Port to serve on (default from config)")
	cmd.Flags().String("host", "", "Host to bind to (default from config)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if flag := cmd.Flags().Lookup("port"); flag.Changed {
		viper.Set("server.port", flag.Value.String())
	}
	if flag := cmd.Flags().Lookup("host"); flag.Changed {
		viper.Set("server.host", flag.Value.String())
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info(ctx, "Starting bsui server",
		"addr", a.server.Addr(),
		"components", len(a.engine.Names()),
		"content_root", a.config.Search.ContentRoot)

	if err := a.server.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
