package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hoist/internal/demo"
	"github.com/vango-dev/hoist/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the album example",
		Long: `Serve the album example page.

Every page answers three requests on one URL: the document, its
stylesheet (?css=1) and its script (?js=1).

Examples:
  hoist serve
  hoist serve --port=8080
  hoist serve --host=0.0.0.0 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if metrics {
				cfg.Metrics.Enabled = true
			}

			logger := newLogger(os.Stderr, cfg)

			sc := server.FromConfig(cfg)
			sc.Head = demo.Head()

			srv := server.New(sc)
			srv.SetLogger(logger.With("component", "server"))
			demo.Register(srv)

			success("Serving %s", cfg.Name)
			info("Document:   %s/", cfg.URL())
			info("Stylesheet: %s/?css=1", cfg.URL())
			info("Script:     %s/?js=1", cfg.URL())
			if cfg.Metrics.Enabled {
				info("Metrics:    %s%s", cfg.URL(), sc.MetricsPath)
			}

			return srv.Run(context.Background())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics")

	return cmd
}
