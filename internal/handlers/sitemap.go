package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/middleware"
	"helixio.app/web/internal/observability"
	"helixio.app/web/internal/sitemap"
)

// Entries lists every canonical page of the site. Each one exists in every
// locale. Legal pages carry their last update date.
func (s *Site) Entries(ctx context.Context) ([]sitemap.Entry, error) {
	entries := []sitemap.Entry{
		{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
		{Path: "/features", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/pricing", ChangeFreq: "weekly", Priority: 0.9},
		{Path: "/faq", ChangeFreq: "monthly", Priority: 0.6},
		{Path: "/legal", ChangeFreq: "yearly", Priority: 0.3},
	}
	slugs, err := s.Content.Slugs(legalKind)
	if err != nil {
		return nil, err
	}
	for _, slug := range slugs {
		page, err := s.Content.Page(ctx, legalKind, slug, i18n.Primary)
		if err != nil {
			return nil, err
		}
		entries = append(entries, sitemap.Entry{
			Path:       "/legal/" + slug,
			LastMod:    page.UpdatedAt,
			ChangeFreq: "yearly",
			Priority:   0.3,
		})
	}
	return entries, nil
}

// Sitemap serves sitemap.xml with hreflang alternates for every page.
func (s *Site) Sitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := s.Entries(r.Context())
	if err != nil {
		observability.FromContext(r.Context()).Error("build sitemap", zap.Error(err))
		middleware.WriteError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if err := sitemap.Write(w, s.SiteURL, entries); err != nil {
		observability.FromContext(r.Context()).Error("write sitemap", zap.Error(err))
	}
}

// Robots serves robots.txt.
func (s *Site) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(sitemap.Robots(s.SiteURL)))
}
