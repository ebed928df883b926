package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"helixio.app/web/internal/faq"
)

func FAQSection(p Page, acc *faq.Accordion) g.Node {
	if acc.Len() == 0 {
		return nil
	}
	return Section(
		ID("faq"),
		Class("faq"),
		Div(
			Class("container container-narrow"),
			SectionHeader(p.T.T("faq.eyebrow"), p.T.T("faq.title"), ""),
			Div(
				Class("faq-list"),
				Data("accordion", ""),
				g.Group(g.Map(indexes(acc.Len()), func(i int) g.Node {
					return faqItem(acc, i)
				})),
			),
		),
	)
}

// faqItem toggles independently of its siblings.
func faqItem(acc *faq.Accordion, i int) g.Node {
	item := acc.Items()[i]
	open := acc.IsOpen(i)
	panelID := acc.PanelID(i)
	cls := "faq-item"
	if open {
		cls += " open"
	}
	return Div(
		ID(item.ID),
		Class(cls),
		H3(
			Class("faq-question"),
			Button(
				ID(item.ID+"-question"),
				Type("button"),
				Class("faq-trigger"),
				Data("faq-toggle", ""),
				Aria("expanded", fmt.Sprint(open)),
				Aria("controls", panelID),
				Span(g.Text(item.Question)),
				Icon("fa-chevron-down", "faq-chevron"),
			),
		),
		Div(
			ID(panelID),
			Class("faq-answer"),
			Role("region"),
			Aria("labelledby", item.ID+"-question"),
			g.If(!open, g.Attr("hidden")),
			P(g.Text(item.Answer)),
		),
	)
}
