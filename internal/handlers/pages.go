package handlers

import (
	"net/http"
	"net/url"

	"github.com/samber/lo"

	"helixio.app/web/internal/components"
	"helixio.app/web/internal/faq"
	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/pricing"
	"helixio.app/web/internal/seo"
	"helixio.app/web/internal/showcase"
)

// Home renders the landing page with every section.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	p := s.page(r, "", "")
	board := s.board(p, r)
	defer board.Close()
	seq := showcase.NewSequencer(s.Catalog.LocalizedPanels(p.T), 0)
	defer seq.Close()
	acc := faq.NewAccordion(faq.Items(p.T))

	siteName := p.T.T("meta.siteName")
	p.Meta.JSONLD = []map[string]any{
		seo.Organization(siteName, seo.Absolute(s.SiteURL, "/"), seo.Absolute(s.SiteURL, "/assets/img/favicon.svg")),
		seo.WebSite(siteName, s.absolute(p, "/"), p.T.Locale.String()),
		s.softwareApplication(p, board.Plans()),
	}

	render(w, r, http.StatusOK, components.Layout(p,
		components.Hero(p),
		components.Showcase(p, seq),
		components.PricingSection(p, board),
		components.FAQSection(p, acc),
		components.CTASection(p),
	))
}

// Features renders the showcase on its own.
func (s *Site) Features(w http.ResponseWriter, r *http.Request) {
	tr := s.Bundle.For(localeOf(r))
	p := s.page(r, tr.T("nav.features"), tr.T("showcase.title"))
	seq := showcase.NewSequencer(s.Catalog.LocalizedPanels(p.T), 0)
	defer seq.Close()
	p.Meta.JSONLD = []map[string]any{s.breadcrumbs(p, "")}

	render(w, r, http.StatusOK, components.Layout(p,
		components.Showcase(p, seq),
		components.CTASection(p),
	))
}

// Pricing renders the plans for the cycle in the query string, monthly by
// default.
func (s *Site) Pricing(w http.ResponseWriter, r *http.Request) {
	tr := s.Bundle.For(localeOf(r))
	p := s.page(r, tr.T("nav.pricing"), tr.T("pricing.subtitle"))
	board := s.board(p, r)
	defer board.Close()
	acc := faq.NewAccordion(faq.Items(p.T))
	p.Meta.JSONLD = []map[string]any{
		s.softwareApplication(p, board.Plans()),
		s.breadcrumbs(p, ""),
	}

	render(w, r, http.StatusOK, components.Layout(p,
		components.PricingSection(p, board),
		components.FAQSection(p, acc),
		components.CTASection(p),
	))
}

// PricingCards is the htmx fragment behind the cycle toggle. It returns the
// toggle and the cards for the requested cycle and pushes the matching page
// URL into the browser history.
func (s *Site) PricingCards(w http.ResponseWriter, r *http.Request) {
	tr := s.Bundle.For(localeOf(r))
	cycle := pricing.CycleOrDefault(r.URL.Query().Get("cycle"))
	ctrl := pricing.NewController(cycle)
	board := pricing.NewBoard(ctrl, s.Catalog.LocalizedPlans(tr, s.SignupURL))
	defer board.Close()

	w.Header().Set("X-Robots-Tag", "noindex")
	w.Header().Set("Vary", "HX-Request, HX-Current-URL")
	w.Header().Set("HX-Push-Url", pushURL(r, tr, cycle))
	render(w, r, http.StatusOK, components.PricingWidget(tr, board))
}

// pushURL keeps the visitor on the page the toggle lives on and records the
// cycle in its query string. Without a usable HX-Current-URL it falls back
// to the pricing page.
func pushURL(r *http.Request, tr i18n.Translator, c pricing.Cycle) string {
	target := &url.URL{Path: tr.Path("/pricing")}
	if cur, err := url.Parse(r.Header.Get("HX-Current-URL")); err == nil && cur.Path != "" {
		if cur.Host == "" || cur.Host == r.Host {
			target = &url.URL{Path: cur.Path, RawQuery: cur.RawQuery}
		}
	}
	q := target.Query()
	q.Set("cycle", c.String())
	target.RawQuery = q.Encode()
	target.Fragment = ""
	if target.Path != tr.Path("/pricing") {
		target.Fragment = "pricing"
	}
	return target.String()
}

// FAQ renders the questions with their structured data.
func (s *Site) FAQ(w http.ResponseWriter, r *http.Request) {
	tr := s.Bundle.For(localeOf(r))
	p := s.page(r, tr.T("nav.faq"), tr.T("faq.title"))
	items := faq.Items(p.T)
	acc := faq.NewAccordion(items)
	p.Meta.JSONLD = []map[string]any{
		seo.FAQPage(lo.Map(items, func(it faq.Item, _ int) seo.Question {
			return seo.Question{Name: it.Question, Answer: it.Answer}
		})),
		s.breadcrumbs(p, ""),
	}

	render(w, r, http.StatusOK, components.Layout(p,
		components.FAQSection(p, acc),
		components.CTASection(p),
	))
}

func (s *Site) board(p components.Page, r *http.Request) *pricing.Board {
	ctrl := pricing.NewController(pricing.CycleOrDefault(r.URL.Query().Get("cycle")))
	return pricing.NewBoard(ctrl, s.Catalog.LocalizedPlans(p.T, s.SignupURL))
}

func (s *Site) softwareApplication(p components.Page, plans []pricing.Plan) map[string]any {
	offers := lo.Map(plans, func(pl pricing.Plan, _ int) seo.Offer {
		return seo.Offer{Name: pl.Name, Price: pl.PriceMonthly, Currency: "IDR", URL: pl.CTAHref}
	})
	return seo.SoftwareApplication(p.T.T("meta.siteName"), p.T.T("meta.description"), s.absolute(p, "/"), offers)
}
