package main

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"go.uber.org/zap"

	"helixio.app/web/content"
	"helixio.app/web/internal/catalog"
	"helixio.app/web/internal/cms"
	"helixio.app/web/internal/config"
	"helixio.app/web/internal/handlers"
	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/observability"
	"helixio.app/web/locales"
	"helixio.app/web/public"
)

// app is everything both subcommands need, loaded once at startup.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	bundle  *i18n.Bundle
	site    *handlers.Site
	assets  fs.FS
}

func loadApp(flags *rootFlags) (*app, error) {
	var warnings []string
	cfg, err := config.Load(flags.envFile, func(msg string) { warnings = append(warnings, msg) })
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Dev)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}
	return newApp(cfg, logger)
}

func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	var localesFS fs.FS = locales.FS
	if cfg.LocalesDir != "" {
		localesFS = os.DirFS(cfg.LocalesDir)
	}
	bundle, err := i18n.Load(localesFS, i18n.Primary, i18n.All)
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}

	cat, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var contentFS fs.FS = content.FS
	if cfg.ContentDir != "" {
		contentFS = os.DirFS(cfg.ContentDir)
	}
	store := cms.NewStore(contentFS)
	if cfg.Dev {
		store.SetCacheDuration(0)
	}

	assets, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: observability.NewMetrics(),
		bundle:  bundle,
		site:    handlers.New(cfg, bundle, cat, store),
		assets:  assets,
	}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func (a *app) router() http.Handler {
	return a.site.Router(handlers.RouterOptions{
		Logger:  a.logger,
		Metrics: a.metrics,
		Assets:  a.assets,
		Timeout: a.cfg.WriteTimeout,
	})
}
