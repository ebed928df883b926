package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"helixio.app/web/internal/export"
)

func newExportCommand(flags *rootFlags) *cobra.Command {
	var (
		out     string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page in both locales to static files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()
			if out != "" {
				a.cfg.ExportDir = out
			}
			res, err := a.export(cmd.Context(), workers)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d pages, %d files and %d assets to %s\n",
				res.Pages, res.Files, res.Assets, a.cfg.ExportDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory (overrides HELIXIO_EXPORT_DIR)")
	cmd.Flags().IntVar(&workers, "workers", 4, "pages rendered in parallel")
	return cmd
}

func (a *app) export(ctx context.Context, workers int) (export.Result, error) {
	start := time.Now()
	entries, err := a.site.Entries(ctx)
	if err != nil {
		return export.Result{}, fmt.Errorf("list pages: %w", err)
	}
	pages := make([]string, 0, len(entries))
	for _, e := range entries {
		pages = append(pages, e.Path)
	}
	res, err := export.Run(ctx, export.Options{
		Handler: a.router(),
		Pages:   pages,
		Files:   []string{"/sitemap.xml", "/robots.txt"},
		Assets:  a.assets,
		OutDir:  a.cfg.ExportDir,
		Workers: workers,
		Logger:  a.logger,
		Metrics: a.metrics,
	})
	if err != nil {
		return export.Result{}, err
	}
	a.logger.Info("export complete", zap.Duration("elapsed", time.Since(start)))
	return res, nil
}
