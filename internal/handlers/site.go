// Package handlers serves the pages of the marketing site.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"helixio.app/web/internal/catalog"
	"helixio.app/web/internal/cms"
	"helixio.app/web/internal/components"
	"helixio.app/web/internal/config"
	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/middleware"
	"helixio.app/web/internal/nav"
	"helixio.app/web/internal/observability"
	"helixio.app/web/internal/seo"
)

// Site holds what the page handlers render from.
type Site struct {
	Bundle    *i18n.Bundle
	Catalog   *catalog.Catalog
	Content   *cms.Store
	SiteURL   string
	SignupURL string
	Analytics config.Analytics
}

// New binds the loaded content to the runtime settings in cfg.
func New(cfg config.Config, bundle *i18n.Bundle, cat *catalog.Catalog, store *cms.Store) *Site {
	return &Site{
		Bundle:    bundle,
		Catalog:   cat,
		Content:   store,
		SiteURL:   cfg.SiteURL,
		SignupURL: cfg.SignupURL,
		Analytics: cfg.Analytics,
	}
}

// Routes registers every localized page on r. Mount it once at the root and
// once under the /en prefix.
func (s *Site) Routes(r chi.Router) {
	r.Get("/", s.Home)
	r.Get("/features", s.Features)
	r.Get("/pricing", s.Pricing)
	r.Get("/pricing/cards", s.PricingCards)
	r.Get("/faq", s.FAQ)
	r.Get("/legal", s.LegalIndex)
	r.Get("/legal/{slug}", s.Legal)
}

// Healthz answers liveness probes.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// page builds the shared view model for the request. title is the page's
// own title; the site name is appended unless it is the home page.
func (s *Site) page(r *http.Request, title, description string) components.Page {
	l := middleware.Locale(r.Context())
	tr := s.Bundle.For(l)
	siteName := tr.T("meta.siteName")
	if title == "" {
		title = tr.T("meta.title")
	} else {
		title += " | " + siteName
	}
	if description == "" {
		description = tr.T("meta.description")
	}
	p := components.Page{
		Meta:      seo.PageMeta(s.SiteURL, siteName, i18n.Strip(r.URL.Path), l, title, description),
		T:         tr,
		Path:      r.URL.Path,
		SignupURL: s.SignupURL,
		Menu:      nav.NewMobileMenu(&nav.BodyScroll{}),
		Analytics: s.Analytics,
	}
	if suggest, ok := middleware.Suggestion(r.Context()); ok {
		p.Suggest = suggest
	}
	return p
}

// absolute is the public URL of the canonical path in the page locale.
func (s *Site) absolute(p components.Page, path string) string {
	return seo.Absolute(s.SiteURL, p.T.Path(path))
}

func (s *Site) breadcrumbs(p components.Page, current string) map[string]any {
	crumbs := nav.Breadcrumbs(p.Path, p.T.Locale)
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		name := c.Label
		if c.LabelKey != "" {
			name = p.T.T(c.LabelKey)
		}
		if c.Active && current != "" {
			name = current
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: seo.Absolute(s.SiteURL, c.Href)})
	}
	return seo.BreadcrumbList(items)
}

func render(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
	}
}

func localeOf(r *http.Request) i18n.Locale { return middleware.Locale(r.Context()) }

// NotFound renders the localized 404 page.
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	p := s.page(r, s.Bundle.T(localeOf(r), "notFound.title"), "")
	p.Meta.Robots = "noindex"
	p.Meta.Alternates = nil
	p.Meta.Canonical = ""
	// the language switch leads to the other locale's home page
	p.Path = p.T.Path("/")
	render(w, r, http.StatusNotFound, components.Layout(p, components.NotFoundPage(p)))
}
