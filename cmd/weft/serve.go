package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/weft-dev/weft/internal/config"
	"github.com/weft-dev/weft/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server for the showcase pages.

Pages are rendered per request; live reload pushes a refresh to
connected browsers when the server broadcasts a change.

Examples:
  weft serve
  weft serve --port=3000
  weft serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from weft.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from weft.json)")

	return cmd
}

func runServe(port int, host string) error {
	cfg := loadConfigOrDefault()
	if port != 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv := server.New(&server.Config{
		Address:     cfg.ServerAddress(),
		Title:       cfg.Name,
		StyleSheets: cfg.StyleSheets,
		Pretty:      cfg.Server.Pretty,
		LiveReload:  cfg.Server.LiveReload,
	})
	for _, route := range showcaseRoutes {
		srv.HandlePage(route.Pattern, route.Page)
	}

	printBanner()
	success("Preview server ready")
	info("Listening on %s", cfg.ServerURL())

	return srv.ListenAndServe(context.Background())
}

// loadConfigOrDefault loads weft.json from the working directory tree,
// falling back to defaults when no project file exists.
func loadConfigOrDefault() *config.Config {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return config.New()
	}
	return cfg
}
