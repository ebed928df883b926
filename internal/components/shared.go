// Package components renders the site's pages and fragments with gomponents.
package components

import (
	"math"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(name string) g.Node {
	return Span(
		Class("logo"),
		Span(Class("logo-mark"), Icon("fa-dna")),
		Span(Class("logo-text"), g.Text(name)),
	)
}

// Icon renders a decorative Font Awesome solid icon, e.g. Icon("fa-check").
func Icon(name string, classes ...string) g.Node {
	cls := "fas " + name
	if len(classes) > 0 {
		cls += " " + strings.Join(classes, " ")
	}
	return I(Class(cls), Aria("hidden", "true"))
}

func SectionHeader(eyebrow, title, subtitle string) g.Node {
	return Div(
		Class("section-header"),
		g.If(eyebrow != "", Span(Class("eyebrow"), g.Text(eyebrow))),
		H2(Class("section-title"), g.Text(title)),
		g.If(subtitle != "", P(Class("section-subtitle"), g.Text(subtitle))),
	)
}

// ExternalLink opens href in a new tab.
func ExternalLink(href string, children ...g.Node) g.Node {
	return A(Href(href), Target("_blank"), Rel("noopener noreferrer"), g.Group(children))
}

// jsString keeps only characters that are safe inside a single-quoted
// script literal. Analytics ids are alphanumeric with dashes.
func jsString(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '-' || r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func percent(v float64) string {
	return num(v*100) + "%"
}
