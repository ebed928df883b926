package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(p Page) g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-inner"),
			Span(Class("eyebrow"), g.Text(p.T.T("hero.eyebrow"))),
			H1(Class("hero-title"), g.Text(p.T.T("hero.title"))),
			P(Class("hero-subtitle"), g.Text(p.T.T("hero.subtitle"))),
			Div(
				Class("hero-actions"),
				ExternalLink(p.SignupURL, Class("btn btn-primary btn-lg"), g.Text(p.T.T("hero.ctaPrimary")), Icon("fa-arrow-right", "ml-2")),
				A(Href(p.T.Path("/pricing")), Class("btn btn-secondary btn-lg"), g.Text(p.T.T("hero.ctaSecondary"))),
			),
		),
	)
}

// CTASection is the closing call to action. Its id is the target of the
// contact navigation link.
func CTASection(p Page) g.Node {
	return Section(
		ID("contact"),
		Class("cta"),
		Div(
			Class("container cta-inner"),
			H2(Class("cta-title"), g.Text(p.T.T("cta.title"))),
			P(Class("cta-subtitle"), g.Text(p.T.T("cta.subtitle"))),
			ExternalLink(p.SignupURL, Class("btn btn-primary btn-lg"), g.Text(p.T.T("cta.button"))),
		),
	)
}
