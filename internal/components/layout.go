package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"helixio.app/web/internal/config"
	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/nav"
	"helixio.app/web/internal/seo"
)

const (
	fontAwesomeURL = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css"
	htmxURL        = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
)

// Page carries what every full page needs besides its own sections.
type Page struct {
	Meta      seo.Meta
	T         i18n.Translator
	Path      string // request path, including the locale prefix
	SignupURL string
	// Suggest is the locale the visitor's browser prefers when it differs
	// from the page locale; empty hides the banner.
	Suggest   i18n.Locale
	Menu      *nav.MobileMenu
	Analytics config.Analytics
}

func Layout(p Page, content ...g.Node) g.Node {
	m := p.Meta
	if m.Title == "" {
		m.Title = p.T.T("meta.title")
	}
	if m.Description == "" {
		m.Description = p.T.T("meta.description")
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(p.T.Locale.String()),
			Class("no-js"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(m.Title)),
				Meta(Name("description"), Content(m.Description)),
				g.If(m.Robots != "", Meta(Name("robots"), Content(m.Robots))),
				g.If(m.Canonical != "", Link(Rel("canonical"), Href(m.Canonical))),
				g.Group(g.Map(m.Alternates, func(a seo.Alternate) g.Node {
					return Link(Rel("alternate"), g.Attr("hreflang", a.Hreflang), Href(a.Href))
				})),

				Meta(g.Attr("property", "og:title"), Content(m.OG.Title)),
				Meta(g.Attr("property", "og:description"), Content(m.OG.Description)),
				Meta(g.Attr("property", "og:type"), Content(m.OG.Type)),
				Meta(g.Attr("property", "og:url"), Content(m.Canonical)),
				Meta(g.Attr("property", "og:image"), Content(m.OG.Image)),
				Meta(g.Attr("property", "og:site_name"), Content(m.OG.SiteName)),
				Meta(g.Attr("property", "og:locale"), Content(m.OG.Locale)),
				g.Group(g.Map(m.AlternateLocales(), func(l string) g.Node {
					return Meta(g.Attr("property", "og:locale:alternate"), Content(l))
				})),
				Meta(Name("twitter:card"), Content(m.Twitter.Card)),
				g.If(m.Twitter.Site != "", Meta(Name("twitter:site"), Content(m.Twitter.Site))),
				Meta(Name("twitter:image"), Content(m.Twitter.Image)),

				Link(Rel("icon"), Href("/assets/img/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href(fontAwesomeURL)),
				Link(Rel("stylesheet"), Href("/assets/css/site.css")),

				g.Group(g.Map(m.JSONLD, func(v map[string]any) g.Node {
					return Script(Type("application/ld+json"), g.Raw(seo.JSON(v)))
				})),
				analytics(p.Analytics),

				Script(Src(htmxURL), g.Attr("defer")),
				Script(Src("/assets/js/site.js"), g.Attr("defer")),
			),
			Body(
				Class("site"),
				A(Href("#main"), Class("skip-link"), g.Text(p.T.T("nav.skip"))),
				SuggestBanner(p),
				Navbar(p),
				Main(ID("main"), g.Group(content)),
				PageFooter(p),
			),
		),
	})
}

// SuggestBanner offers the page in the browser's preferred language. It never
// redirects.
func SuggestBanner(p Page) g.Node {
	if p.Suggest == "" || p.Suggest == p.T.Locale {
		return nil
	}
	href := i18n.Localize(p.Path, p.Suggest)
	return Div(
		Class("suggest-banner"),
		Role("status"),
		Data("suggest", p.Suggest.String()),
		Lang(p.Suggest.String()),
		Span(g.Text(p.T.T("suggest.message"))),
		A(Href(href), Class("suggest-banner-link"), g.Attr("hreflang", p.Suggest.String()), g.Text(p.T.T("suggest.action"))),
		Button(Type("button"), Class("suggest-banner-dismiss"), Data("suggest-dismiss", ""), Aria("label", p.T.T("nav.close")), Icon("fa-xmark")),
	)
}

func analytics(a config.Analytics) g.Node {
	var nodes []g.Node
	if a.GTMContainerID != "" {
		nodes = append(nodes, Script(g.Rawf(
			`(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;j.src='https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);})(window,document,'script','dataLayer','%s');`,
			jsString(a.GTMContainerID),
		)))
	}
	if a.GA4MeasurementID != "" {
		nodes = append(nodes,
			Script(g.Attr("async"), Src("https://www.googletagmanager.com/gtag/js?id="+a.GA4MeasurementID)),
			Script(g.Rawf(
				`window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config','%s',{debug_mode:%t});`,
				jsString(a.GA4MeasurementID), a.Debug,
			)),
		)
	}
	return g.Group(nodes)
}
