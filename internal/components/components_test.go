package components

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "maragu.dev/gomponents/html"

	"helixio.app/web/content"
	"helixio.app/web/internal/catalog"
	"helixio.app/web/internal/cms"
	"helixio.app/web/internal/faq"
	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/nav"
	"helixio.app/web/internal/pricing"
	"helixio.app/web/internal/seo"
	"helixio.app/web/internal/showcase"
	"helixio.app/web/internal/testutil"
	"helixio.app/web/locales"
)

const (
	siteURL   = "https://helixio.app"
	signupURL = "https://app.helixio.id/register"
)

func testPage(t *testing.T, path string) Page {
	t.Helper()
	b, err := i18n.Load(locales.FS, i18n.Primary, nil)
	require.NoError(t, err)
	l := i18n.Resolve(path)
	tr := b.For(l)
	return Page{
		Meta:      seo.PageMeta(siteURL, "Helixio", i18n.Strip(path), l, tr.T("meta.title"), tr.T("meta.description")),
		T:         tr,
		Path:      path,
		SignupURL: signupURL,
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func attr(t *testing.T, s *goquery.Selection, name string) string {
	t.Helper()
	v, ok := s.Attr(name)
	require.Truef(t, ok, "missing attribute %s", name)
	return v
}

func TestLayoutHead(t *testing.T) {
	t.Parallel()

	p := testPage(t, "/en/pricing")
	p.Meta.JSONLD = []map[string]any{seo.WebSite("Helixio", siteURL, "en")}
	doc := testutil.Render(t, Layout(p, Div()))

	assert.Equal(t, "en", attr(t, doc.Find("html"), "lang"))
	assert.Equal(t, "https://helixio.app/en/pricing", attr(t, doc.Find(`link[rel="canonical"]`), "href"))

	alts := map[string]string{}
	doc.Find(`link[rel="alternate"]`).Each(func(_ int, s *goquery.Selection) {
		alts[attr(t, s, "hreflang")] = attr(t, s, "href")
	})
	assert.Equal(t, map[string]string{
		"id":        "https://helixio.app/pricing",
		"en":        "https://helixio.app/en/pricing",
		"x-default": "https://helixio.app/pricing",
	}, alts)

	assert.Equal(t, "en_US", attr(t, doc.Find(`meta[property="og:locale"]`), "content"))
	assert.Equal(t, "id_ID", attr(t, doc.Find(`meta[property="og:locale:alternate"]`), "content"))

	var ld map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc.Find(`script[type="application/ld+json"]`).Text()), &ld))
	assert.Equal(t, "WebSite", ld["@type"])

	assert.Equal(t, 1, doc.Find("header.navbar").Length())
	assert.Equal(t, 1, doc.Find("footer.footer").Length())
	assert.Equal(t, 0, doc.Find("[data-suggest]").Length())
	assert.Equal(t, 0, doc.Find(`script[src*="googletagmanager"]`).Length())
}

func TestLayoutAnalytics(t *testing.T) {
	t.Parallel()

	p := testPage(t, "/")
	p.Analytics.GA4MeasurementID = "G-ABC123'"
	doc := testutil.Render(t, Layout(p))

	assert.Equal(t, 1, doc.Find(`script[src*="gtag/js?id=G-ABC123"]`).Length())
	assert.Contains(t, doc.Text(), "gtag('config','G-ABC123'")
}

func TestSuggestBanner(t *testing.T) {
	t.Parallel()

	p := testPage(t, "/pricing")
	p.Suggest = i18n.EN
	doc := testutil.Render(t, SuggestBanner(p))
	banner := doc.Find("[data-suggest]")
	require.Equal(t, 1, banner.Length())
	assert.Equal(t, "en", attr(t, banner, "data-suggest"))
	assert.Equal(t, "/en/pricing", attr(t, banner.Find("a"), "href"))

	p.Suggest = i18n.ID
	assert.Nil(t, SuggestBanner(p))
}

func TestNavbar(t *testing.T) {
	t.Parallel()

	p := testPage(t, "/pricing")
	doc := testutil.Render(t, Navbar(p))

	links := doc.Find(".nav-desktop a")
	require.Equal(t, len(nav.Main), links.Length())
	active := doc.Find(`.nav-desktop a[aria-current="page"]`)
	assert.Equal(t, "/pricing", attr(t, active, "href"))
	assert.Equal(t, "Harga", active.Text())

	flags := doc.Find(".navbar-actions .flag-toggle")
	assert.Equal(t, "🇮🇩", strings.TrimSpace(flags.Find(".flag-toggle-btn.active").Text()))
	other := flags.Find("a.flag-toggle-btn")
	assert.Equal(t, "/en/pricing", attr(t, other, "href"))
	assert.Equal(t, "Switch to English", attr(t, other, "title"))

	toggle := doc.Find("[data-menu-toggle]")
	assert.Equal(t, "false", attr(t, toggle, "aria-expanded"))
	assert.Equal(t, mobileMenuID, attr(t, toggle, "aria-controls"))
	menu := doc.Find("#" + mobileMenuID)
	assert.Equal(t, "closed", attr(t, menu, "data-menu-state"))

	delays := []string{}
	menu.Find(".mobile-menu-item").Each(func(_ int, s *goquery.Selection) {
		delays = append(delays, attr(t, s, "style"))
	})
	assert.Equal(t, []string{
		"transition-delay: 50ms",
		"transition-delay: 100ms",
		"transition-delay: 150ms",
		"transition-delay: 200ms",
	}, delays)
	assert.Equal(t, len(nav.Main), menu.Find(`a.mobile-menu-link[data-menu-close]`).Length())
}

func TestNavbarOpenMenu(t *testing.T) {
	t.Parallel()

	lock := &nav.BodyScroll{}
	p := testPage(t, "/en")
	p.Menu = nav.NewMobileMenu(lock)
	p.Menu.Toggle()
	doc := testutil.Render(t, Navbar(p))

	toggle := doc.Find("[data-menu-toggle]")
	assert.Equal(t, "true", attr(t, toggle, "aria-expanded"))
	assert.Equal(t, "Close menu", attr(t, toggle, "aria-label"))
	assert.Equal(t, "open", attr(t, doc.Find("#"+mobileMenuID), "data-menu-state"))
	assert.True(t, lock.Locked())
}

func TestPricingWidget(t *testing.T) {
	t.Parallel()

	p := testPage(t, "/")
	plans := testCatalog(t).LocalizedPlans(p.T, signupURL)
	ctrl := pricing.NewController(pricing.Monthly)
	board := pricing.NewBoard(ctrl, plans)
	defer board.Close()

	doc := testutil.Render(t, PricingWidget(p.T, board))
	starter := doc.Find(`.pricing-card[data-plan="starter"]`)
	assert.Equal(t, "Rp 99.000", starter.Find(".price-display").Text())
	assert.Equal(t, 0, starter.Find(".price-save").Length())
	assert.Equal(t, 1, doc.Find(".pricing-card--popular .badge-popular").Length())

	toggle := doc.Find(".pricing-toggle")
	assert.Equal(t, "true", attr(t, toggle.Find(`[data-cycle="monthly"]`), "aria-pressed"))
	assert.Equal(t, "Hemat 10%", toggle.Find(`[data-cycle="six-months"] .pricing-toggle-badge`).Text())
	assert.Equal(t, "Hemat 20%", toggle.Find(`[data-cycle="yearly"] .pricing-toggle-badge`).Text())
	assert.Equal(t, "/pricing/cards?cycle=yearly", attr(t, toggle.Find(`[data-cycle="yearly"]`), "hx-get"))
	assert.Equal(t, "/pricing?cycle=yearly", attr(t, toggle.Find(`[data-cycle="yearly"]`), "href"))

	ctrl.Set(pricing.Yearly)
	doc = testutil.Render(t, PricingWidget(p.T, board))
	assert.Equal(t, "yearly", attr(t, doc.Find("#"+PricingWidgetID), "data-cycle"))
	starter = doc.Find(`.pricing-card[data-plan="starter"]`)
	assert.Equal(t, "Rp 79.200", starter.Find(".price-display").Text())
	assert.Equal(t, "Rp 99.000", starter.Find(".price-list").Text())
	assert.Equal(t, "-20%", starter.Find(".price-save").Text())
	assert.Equal(t, "Rp 950.400 / tahun", starter.Find(".price-billed").Text())
	assert.Equal(t, 0, doc.Find(`.pricing-toggle a[data-cycle="yearly"] .pricing-toggle-badge`).Length())

	free := doc.Find(`.pricing-card[data-plan="free"]`)
	assert.Equal(t, "Rp 0", free.Find(".price-display").Text())
	assert.Equal(t, 0, free.Find(".price-save").Length())
	assert.Equal(t, signupURL, attr(t, free.Find("a.btn"), "href"))
	assert.Equal(t, signupURL+"?plan=starter", attr(t, starter.Find("a.btn"), "href"))
}

func TestPricingCardSaveSign(t *testing.T) {
	t.Parallel()

	p := testPage(t, "/")
	plan := pricing.Plan{ID: "pro", Name: "Pro", PriceMonthly: 100000, PriceSixMonths: 630000, PriceYearly: 1200000}

	tests := []struct {
		name  string
		cycle pricing.Cycle
		save  string
		shown bool
	}{
		{"negative saving", pricing.SixMonths, "+5%", true},
		{"no saving", pricing.Yearly, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testutil.Render(t, PricingCard(p.T, plan, pricing.Quote(plan, tt.cycle)))
			save := doc.Find(".price-save")
			if !tt.shown {
				assert.Equal(t, 0, save.Length())
				return
			}
			assert.Equal(t, tt.save, save.Text())
			assert.NotContains(t, doc.Text(), "--")
		})
	}
}

func TestPricingToggleSecondaryLocale(t *testing.T) {
	t.Parallel()

	p := testPage(t, "/en/pricing")
	doc := testutil.Render(t, PricingToggle(p.T, pricing.SixMonths))
	six := doc.Find(`[data-cycle="six-months"]`)
	assert.Equal(t, "/en/pricing/cards?cycle=six-months", attr(t, six, "hx-get"))
	assert.Equal(t, "#"+PricingWidgetID, attr(t, six, "hx-target"))
	assert.Equal(t, 0, six.Find(".pricing-toggle-badge").Length())
	assert.Equal(t, "Save 20%", doc.Find(`[data-cycle="yearly"] .pricing-toggle-badge`).Text())
}

func TestShowcaseServerFrame(t *testing.T) {
	t.Parallel()

	p := testPage(t, "/")
	panels := testCatalog(t).LocalizedPanels(p.T)
	require.Len(t, panels, 4)
	seq := showcase.NewSequencer(panels, 0)
	defer seq.Close()

	doc := testutil.Render(t, Showcase(p, seq))
	wide := doc.Find(".showcase-wide")

	var tl struct {
		Panels int       `json:"panels"`
		Labels []float64 `json:"labels"`
	}
	require.NoError(t, json.Unmarshal([]byte(attr(t, wide, "data-timeline")), &tl))
	assert.Equal(t, 4, tl.Panels)
	assert.Len(t, tl.Labels, 4)

	roots := wide.Find(`[data-el="panel"]`)
	require.Equal(t, 4, roots.Length())
	assert.Contains(t, attr(t, roots.Eq(0), "style"), "visibility: visible")
	for i := 1; i < 4; i++ {
		assert.Contains(t, attr(t, roots.Eq(i), "style"), "visibility: hidden")
	}
	assert.Equal(t, "transform: translate(-60px, 0px) scale(0.92); opacity: 0", attr(t, roots.Eq(1).Find(`[data-el="visual"]`), "style"))
	assert.Equal(t, "height: 25%", attr(t, wide.Find(".showcase-progress-fill"), "style"))
	assert.Equal(t, 1, wide.Find(".showcase-dot.active").Length())
	assert.Equal(t, 1, roots.Eq(0).Find(`[data-el="badge"]`).Length())
	assert.Equal(t, 1, roots.Eq(0).Find(`[data-el="limits"]`).Length())

	narrow := doc.Find(".showcase-narrow .showcase-mobile-panel")
	require.Equal(t, 4, narrow.Length())
	narrow.Each(func(_ int, s *goquery.Selection) {
		assert.Equal(t, "pending", attr(t, s, "data-reveal"))
	})
	highlights := narrow.Eq(0).Find(".showcase-highlight")
	assert.Equal(t, "transition-delay: 300ms", attr(t, highlights.Eq(0), "style"))
	assert.Equal(t, "transition-delay: 400ms", attr(t, highlights.Eq(1), "style"))
}

func TestShowcaseScrubbedFrame(t *testing.T) {
	t.Parallel()

	p := testPage(t, "/")
	seq := showcase.NewSequencer(testCatalog(t).LocalizedPanels(p.T), 1280)
	defer seq.Close()
	seq.Scroll(1)

	doc := testutil.Render(t, Showcase(p, seq))
	roots := doc.Find(`.showcase-wide [data-el="panel"]`)
	assert.Contains(t, attr(t, roots.Eq(0), "style"), "visibility: hidden")
	assert.Contains(t, attr(t, roots.Eq(3), "style"), "visibility: visible")
	assert.Equal(t, "3", attr(t, doc.Find(".showcase-wide"), "data-active"))
	assert.Equal(t, "height: 100%", attr(t, doc.Find(".showcase-progress-fill"), "style"))
}

func TestShowcaseEmpty(t *testing.T) {
	t.Parallel()

	seq := showcase.NewSequencer(nil, 0)
	defer seq.Close()
	assert.Nil(t, Showcase(testPage(t, "/"), seq))
}

func TestFAQSection(t *testing.T) {
	t.Parallel()

	p := testPage(t, "/en/faq")
	acc := faq.NewAccordion(faq.Items(p.T))
	acc.Toggle(1)
	doc := testutil.Render(t, FAQSection(p, acc))

	triggers := doc.Find("[data-faq-toggle]")
	require.Equal(t, 4, triggers.Length())
	assert.Equal(t, "false", attr(t, triggers.Eq(0), "aria-expanded"))
	assert.Equal(t, "faq-1-answer", attr(t, triggers.Eq(0), "aria-controls"))
	assert.Equal(t, "true", attr(t, triggers.Eq(1), "aria-expanded"))

	_, hidden := doc.Find("#faq-1-answer").Attr("hidden")
	assert.True(t, hidden)
	_, hidden = doc.Find("#faq-2-answer").Attr("hidden")
	assert.False(t, hidden)
}

func TestLegalPage(t *testing.T) {
	t.Parallel()

	store := cms.NewStore(content.FS)
	page, err := store.Page(context.Background(), "legal", "privacy", i18n.ID)
	require.NoError(t, err)

	p := testPage(t, "/legal/privacy")
	doc := testutil.Render(t, LegalPage(p, page))

	assert.Equal(t, "Kebijakan Privasi", doc.Find("h1").Text())
	assert.Equal(t, "2025-06-01", attr(t, doc.Find("time"), "datetime"))
	assert.Equal(t, "1 Juni 2025", doc.Find("time").Text())
	assert.Equal(t, "#data-yang-kami-kumpulkan", attr(t, doc.Find(".legal-toc a").First(), "href"))
	assert.Equal(t, 1, doc.Find(`.legal-body h2#data-yang-kami-kumpulkan`).Length())

	crumbs := doc.Find(".breadcrumbs li")
	require.Equal(t, 3, crumbs.Length())
	assert.Equal(t, "Beranda", crumbs.Eq(0).Text())
	assert.Equal(t, "/legal", attr(t, crumbs.Eq(1).Find("a"), "href"))
	assert.Equal(t, "Kebijakan Privasi", crumbs.Eq(2).Text())
}

func TestNotFoundPage(t *testing.T) {
	t.Parallel()

	doc := testutil.Render(t, NotFoundPage(testPage(t, "/en/missing")))
	assert.Equal(t, "Page not found", doc.Find("h1").Text())
	assert.Equal(t, "/en", attr(t, doc.Find("a.btn"), "href"))
}
