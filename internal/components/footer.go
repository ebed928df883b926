package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"helixio.app/web/internal/nav"
)

// LegalSlugs are the legal pages linked from every footer.
var LegalSlugs = []string{"privacy", "terms"}

func PageFooter(p Page) g.Node {
	items := nav.Build(p.Path, p.T.Locale)
	return Footer(
		Class("footer"),
		Div(
			Class("container footer-inner"),
			Div(
				Class("footer-brand"),
				A(Href(p.T.Path("/")), Logo(p.T.T("meta.siteName"))),
				P(Class("footer-tagline"), g.Text(p.T.T("footer.tagline"))),
			),
			Nav(
				Class("footer-links"),
				Aria("label", p.T.T("nav.label")),
				Ul(g.Group(g.Map(items, func(it nav.RenderedItem) g.Node {
					return Li(A(Href(it.Href), g.Text(p.T.T(it.LabelKey))))
				}))),
			),
			Nav(
				Class("footer-legal"),
				Aria("label", p.T.T("footer.legal")),
				H4(g.Text(p.T.T("footer.legal"))),
				Ul(g.Group(g.Map(LegalSlugs, func(slug string) g.Node {
					return Li(A(Href(p.T.Path("/legal/"+slug)), g.Text(p.T.T("footer."+slug))))
				}))),
			),
		),
		Div(
			Class("container footer-bottom"),
			P(g.Textf("© %d %s. %s", time.Now().Year(), p.T.T("meta.siteName"), p.T.T("footer.rights"))),
			LangSwitch(p.Path),
		),
	)
}
