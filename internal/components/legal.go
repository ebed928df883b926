package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"helixio.app/web/internal/cms"
	"helixio.app/web/internal/format"
	"helixio.app/web/internal/nav"
)

// LegalPage renders a markdown page. The body was sanitized when the page
// was loaded.
func LegalPage(p Page, page cms.ContentPage) g.Node {
	crumbs := nav.Breadcrumbs(p.Path, p.T.Locale)
	return Article(
		Class("legal container container-narrow"),
		Data("slug", page.Slug),
		g.If(page.Fallback(p.T.Locale), Lang(page.Lang.String())),
		Breadcrumbs(p, crumbs, page.Title),
		Header(
			Class("legal-header"),
			H1(g.Text(page.Title)),
			g.If(page.Summary != "", P(Class("legal-summary"), g.Text(page.Summary))),
			g.If(!page.UpdatedAt.IsZero(), P(
				Class("legal-updated"),
				g.Text(p.T.T("legal.updated")+": "),
				g.El("time", g.Attr("datetime", page.UpdatedAt.Format("2006-01-02")), g.Text(format.Date(page.UpdatedAt, p.T.Locale.String()))),
				g.If(page.Version != "", Span(Class("legal-version"), g.Text(" · v"+page.Version))),
			)),
		),
		g.If(len(page.TOC) > 1, Nav(
			Class("legal-toc"),
			Aria("label", page.Title),
			Ol(g.Group(g.Map(page.TOC, func(h cms.Heading) g.Node {
				return Li(A(Href("#"+h.ID), g.Text(h.Title)))
			}))),
		)),
		Div(Class("legal-body prose"), g.Raw(page.HTML)),
	)
}

// Breadcrumbs renders the trail. The last crumb uses current as its label
// when set.
func Breadcrumbs(p Page, crumbs []nav.Crumb, current string) g.Node {
	return Nav(
		Class("breadcrumbs"),
		Aria("label", p.T.T("nav.breadcrumb")),
		Ol(g.Group(g.Map(crumbs, func(c nav.Crumb) g.Node {
			label := c.Label
			if c.LabelKey != "" {
				label = p.T.T(c.LabelKey)
			}
			if c.Active {
				if current != "" {
					label = current
				}
				return Li(Span(Aria("current", "page"), g.Text(label)))
			}
			return Li(A(Href(c.Href), g.Text(label)))
		}))),
	)
}

// LegalIndexPage lists the legal pages available in the page locale.
func LegalIndexPage(p Page, pages []cms.ContentPage) g.Node {
	return Section(
		Class("legal container container-narrow"),
		Breadcrumbs(p, nav.Breadcrumbs(p.Path, p.T.Locale), p.T.T("footer.legal")),
		H1(g.Text(p.T.T("footer.legal"))),
		Ul(
			Class("legal-index"),
			g.Group(g.Map(pages, func(page cms.ContentPage) g.Node {
				return Li(
					A(Href(p.T.Path("/legal/"+page.Slug)), g.Text(page.Title)),
					g.If(page.Summary != "", P(Class("legal-summary"), g.Text(page.Summary))),
				)
			})),
		),
	)
}

func NotFoundPage(p Page) g.Node {
	return Section(
		Class("not-found container"),
		Span(Class("not-found-code"), g.Text("404")),
		H1(g.Text(p.T.T("notFound.title"))),
		P(g.Text(p.T.T("notFound.message"))),
		A(Href(p.T.Path("/")), Class("btn btn-primary"), Icon("fa-arrow-left", "mr-2"), g.Text(p.T.T("notFound.back"))),
	)
}
