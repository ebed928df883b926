package handlers

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	mw "helixio.app/web/internal/middleware"
	"helixio.app/web/internal/observability"
)

// RouterOptions carries the runtime pieces the router needs besides the site.
type RouterOptions struct {
	Logger  *zap.Logger
	Metrics *observability.Metrics // nil disables /metrics
	Assets  fs.FS                  // nil disables /assets
	Timeout time.Duration
}

// Router builds the full route table: localized pages at the root and under
// /en, generated files, assets and probes.
func (s *Site) Router(opts RouterOptions) http.Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.RequestLogger(opts.Logger, opts.Metrics))
	r.Use(mw.Recover)
	r.Use(mw.LocalePrefix)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(opts.Timeout))

	r.Get("/healthz", Healthz)
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}
	if opts.Assets != nil {
		r.Handle("/assets/*", mw.AssetsWithCache(opts.Assets, "/assets", ""))
	}
	r.Get("/sitemap.xml", s.Sitemap)
	r.Get("/robots.txt", s.Robots)

	s.Routes(r)
	r.Route("/en", s.Routes)
	r.NotFound(s.NotFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		mw.WriteError(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})
	return r
}
