package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"helixio.app/web/internal/cms"
	"helixio.app/web/internal/components"
	"helixio.app/web/internal/middleware"
	"helixio.app/web/internal/observability"
	"helixio.app/web/internal/seo"
)

const legalKind = "legal"

// Legal renders one legal page. A page missing in the secondary locale is
// shown in the primary one.
func (s *Site) Legal(w http.ResponseWriter, r *http.Request) {
	l := localeOf(r)
	page, err := s.Content.Page(r.Context(), legalKind, chi.URLParam(r, "slug"), l)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			s.NotFound(w, r)
			return
		}
		observability.FromContext(r.Context()).Error("load legal page", zap.Error(err))
		middleware.WriteError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	title, desc := page.Title, page.Summary
	if page.SEO.Title != "" {
		title = page.SEO.Title
	}
	if page.SEO.Description != "" {
		desc = page.SEO.Description
	}
	p := s.page(r, title, desc)
	p.Meta.OG.Type = "article"
	var modified string
	if !page.UpdatedAt.IsZero() {
		modified = page.UpdatedAt.Format("2006-01-02")
	}
	p.Meta.JSONLD = []map[string]any{
		seo.Article(page.Title, p.Meta.Canonical, page.Lang.String(), modified),
		s.breadcrumbs(p, page.Title),
	}

	render(w, r, http.StatusOK, components.Layout(p, components.LegalPage(p, page)))
}

// LegalIndex lists the legal pages.
func (s *Site) LegalIndex(w http.ResponseWriter, r *http.Request) {
	pages, err := s.legalPages(r)
	if err != nil {
		observability.FromContext(r.Context()).Error("list legal pages", zap.Error(err))
		middleware.WriteError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	tr := s.Bundle.For(localeOf(r))
	p := s.page(r, tr.T("footer.legal"), tr.T("footer.tagline"))
	p.Meta.JSONLD = []map[string]any{s.breadcrumbs(p, tr.T("footer.legal"))}
	render(w, r, http.StatusOK, components.Layout(p, components.LegalIndexPage(p, pages)))
}

func (s *Site) legalPages(r *http.Request) ([]cms.ContentPage, error) {
	slugs, err := s.Content.Slugs(legalKind)
	if err != nil {
		return nil, err
	}
	pages := make([]cms.ContentPage, 0, len(slugs))
	for _, slug := range slugs {
		page, err := s.Content.Page(r.Context(), legalKind, slug, localeOf(r))
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
