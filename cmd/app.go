package cmd

import (
	"os"

	"github.com/conneroisu/bsui/internal/components"
	"github.com/conneroisu/bsui/internal/config"
	"github.com/conneroisu/bsui/internal/logging"
	"github.com/conneroisu/bsui/internal/renderer"
	"github.com/conneroisu/bsui/internal/routes"
	"github.com/conneroisu/bsui/internal/scanner"
	"github.com/conneroisu/bsui/internal/search"
	"github.com/conneroisu/bsui/internal/server"
)

// app holds the services shared by the commands.
type app struct {
	config     *config.Config
	logger     logging.Logger
	components *config.ComponentConfig
	engine     *components.Engine
	renderer   *renderer.ComponentRenderer
	routes     *routes.Table
	search     *search.Service
	server     *server.Server
}

// newApp loads the configuration and wires the services.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Log)

	bags, err := config.BuildComponentConfig(cfg.Components)
	if err != nil {
		return nil, err
	}

	engine := components.NewEngine(bags, components.WithLogger(logger))

	table := routes.NewTable()
	for _, r := range cfg.Search.Routes {
		table.Add(routes.Route{Name: r.Name, Path: r.Path})
	}

	tree := &scanner.ContentScanner{
		Root:         cfg.Search.ContentRoot,
		Extensions:   cfg.Search.Extensions,
		ExcludeDirs:  cfg.Search.ExcludeDirs,
		IgnoreMarker: cfg.Search.IgnoreMarker,
		MaxFileSize:  scanner.DefaultMaxFileSize,
		Logger:       logger,
	}

	svc := search.NewService(tree, table, searchPages(cfg.Search.Pages), search.Config{
		InternalRoutePrefix: cfg.Search.InternalRoutePrefix,
		DefaultLimit:        cfg.Search.DefaultLimit,
		CacheSize:           cfg.Search.CacheSize,
	}, logger)

	return &app{
		config:     cfg,
		logger:     logger,
		components: bags,
		engine:     engine,
		renderer:   renderer.NewComponentRenderer(engine),
		routes:     table,
		search:     svc,
		// The server records its named routes in table, so the search
		// command indexes them too.
		server: server.New(cfg.Server, engine, svc, table, logger),
	}, nil
}

func newLogger(cfg config.LogConfig) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Level),
		Format: cfg.Format,
		Output: os.Stderr,
	})
}

func searchPages(pages []config.PageConfig) []search.Page {
	out := make([]search.Page, 0, len(pages))
	for _, p := range pages {
		out = append(out, search.Page{
			Title:       p.Title,
			Description: p.Description,
			URL:         p.URL,
			Type:        p.Type,
			Keywords:    p.Keywords,
		})
	}
	return out
}
