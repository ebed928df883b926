package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/nav"
)

const mobileMenuID = "mobile-menu"

func Navbar(p Page) g.Node {
	items := nav.Build(p.Path, p.T.Locale)
	menu := p.Menu
	if menu == nil {
		menu = nav.NewMobileMenu(&nav.BodyScroll{})
	}

	return Header(
		Class("navbar"),
		Data("navbar", ""),
		Div(
			Class("navbar-inner container"),
			A(Href(p.T.Path("/")), Class("navbar-brand"), Aria("label", p.T.T("nav.home")), Logo(p.T.T("meta.siteName"))),
			Nav(
				Class("nav-desktop"),
				Aria("label", p.T.T("nav.label")),
				Ul(g.Group(g.Map(items, func(it nav.RenderedItem) g.Node {
					return Li(navLink(p.T, it))
				}))),
			),
			Div(
				Class("navbar-actions"),
				LangSwitch(p.Path),
				ExternalLink(p.SignupURL, Class("btn btn-primary btn-sm navbar-cta"), g.Text(p.T.T("nav.cta"))),
				MobileMenuButton(p.T, menu),
			),
		),
		MobileMenuPanel(p, items, menu),
	)
}

func navLink(tr i18n.Translator, it nav.RenderedItem) g.Node {
	cls := "nav-link"
	if it.Active {
		cls += " active"
	}
	return A(
		Href(it.Href),
		Class(cls),
		g.If(it.Active, Aria("current", "page")),
		g.Text(tr.T(it.LabelKey)),
	)
}

// LangSwitch renders both flags; the current locale is a non-link.
func LangSwitch(path string) g.Node {
	opts := nav.LangSwitch(path)
	return Div(
		Class("flag-toggle"),
		Role("group"),
		g.Group(g.Map(opts, func(o nav.LangOption) g.Node {
			if o.Active {
				return Span(
					Class("flag-toggle-btn active"),
					Aria("current", "true"),
					Lang(o.Locale.String()),
					g.Text(o.Flag),
				)
			}
			return A(
				Href(o.Href),
				Class("flag-toggle-btn"),
				g.Attr("hreflang", o.Locale.String()),
				Lang(o.Locale.String()),
				Title(o.Title),
				Aria("label", o.Title),
				g.Text(o.Flag),
			)
		})),
	)
}

// MobileMenuButton toggles the small-screen menu. Its label and
// aria-expanded follow the menu state.
func MobileMenuButton(tr i18n.Translator, menu *nav.MobileMenu) g.Node {
	label, icon := tr.T("nav.toggle"), "fa-bars"
	if menu.IsOpen() {
		label, icon = tr.T("nav.close"), "fa-xmark"
	}
	return Button(
		Type("button"),
		Class("navbar-toggle"),
		Data("menu-toggle", ""),
		Data("label-open", tr.T("nav.toggle")),
		Data("label-close", tr.T("nav.close")),
		Aria("controls", mobileMenuID),
		Aria("expanded", fmt.Sprint(menu.IsOpen())),
		Aria("label", label),
		Icon(icon),
	)
}

// MobileMenuPanel is the slide-in menu with its backdrop. Links carry a
// staggered entrance delay and close the menu when followed.
func MobileMenuPanel(p Page, items []nav.RenderedItem, menu *nav.MobileMenu) g.Node {
	return Div(
		ID(mobileMenuID),
		Class("mobile-menu"),
		Data("menu-state", menu.State()),
		Aria("hidden", fmt.Sprint(!menu.IsOpen())),
		Div(Class("mobile-menu-backdrop"), Data("menu-close", "")),
		Div(
			Class("mobile-menu-panel"),
			Role("dialog"),
			Aria("modal", "true"),
			Aria("label", p.T.T("nav.label")),
			Div(
				Class("mobile-menu-header"),
				Logo(p.T.T("meta.siteName")),
				Button(Type("button"), Class("mobile-menu-close"), Data("menu-close", ""), Aria("label", p.T.T("nav.close")), Icon("fa-xmark")),
			),
			Nav(
				Class("mobile-menu-links"),
				Ul(g.Group(g.Map(items, func(it nav.RenderedItem) g.Node {
					return Li(
						Class("mobile-menu-item"),
						Style(fmt.Sprintf("transition-delay: %dms", it.Delay)),
						A(
							Href(it.Href),
							Class("mobile-menu-link"),
							g.If(it.Active, Aria("current", "page")),
							Data("menu-close", ""),
							g.Text(p.T.T(it.LabelKey)),
						),
					)
				}))),
			),
			Div(
				Class("mobile-menu-footer"),
				LangSwitch(p.Path),
				ExternalLink(p.SignupURL, Class("btn btn-primary btn-block"), Data("menu-close", ""), g.Text(p.T.T("nav.cta"))),
			),
		),
	)
}
