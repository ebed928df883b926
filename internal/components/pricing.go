package components

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"helixio.app/web/internal/format"
	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/pricing"
)

// PricingWidgetID is the element the htmx toggle swaps.
const PricingWidgetID = "pricing-widget"

func PricingSection(p Page, board *pricing.Board) g.Node {
	return Section(
		ID("pricing"),
		Class("pricing"),
		Div(
			Class("container"),
			SectionHeader(p.T.T("pricing.eyebrow"), p.T.T("pricing.title"), p.T.T("pricing.subtitle")),
			PricingWidget(p.T, board),
		),
	)
}

// PricingWidget is the toggle plus the cards. It is also the body of the
// /pricing/cards fragment.
func PricingWidget(tr i18n.Translator, board *pricing.Board) g.Node {
	return Div(
		ID(PricingWidgetID),
		Class("pricing-widget"),
		Data("cycle", board.Cycle().String()),
		PricingToggle(tr, board.Cycle()),
		PricingCards(tr, board),
	)
}

// PricingToggle renders one control per cycle. Without scripts each is a
// plain link to the pricing page for that cycle; with htmx it swaps the
// widget in place.
func PricingToggle(tr i18n.Translator, current pricing.Cycle) g.Node {
	return Div(
		Class("pricing-toggle"),
		Role("group"),
		Aria("label", tr.T("pricing.eyebrow")),
		g.Group(g.Map(pricing.Cycles, func(c pricing.Cycle) g.Node {
			active := c == current
			cls := "pricing-toggle-btn"
			if active {
				cls += " active"
			}
			q := url.Values{"cycle": {c.String()}}.Encode()
			return A(
				Href(tr.Path("/pricing")+"?"+q),
				Class(cls),
				Data("cycle", c.String()),
				Role("button"),
				Aria("pressed", fmt.Sprint(active)),
				g.Attr("hx-get", tr.Path("/pricing/cards")+"?"+q),
				g.Attr("hx-target", "#"+PricingWidgetID),
				g.Attr("hx-swap", "outerHTML"),
				g.Text(tr.T("pricing."+c.Key())),
				g.Iff(!active, func() g.Node { return discountBadge(tr, c) }),
			)
		})),
	)
}

// discountBadge advertises the table-configured saving of a cycle that is
// not selected. Monthly has none.
func discountBadge(tr i18n.Translator, c pricing.Cycle) g.Node {
	if c == pricing.Monthly {
		return nil
	}
	pct := tr.Int("pricing.discount." + c.Key())
	if pct <= 0 {
		return nil
	}
	return Span(Class("pricing-toggle-badge"), g.Textf("%s %d%%", tr.T("pricing.save"), pct))
}

func PricingCards(tr i18n.Translator, board *pricing.Board) g.Node {
	plans, quotes := board.Plans(), board.Quotes()
	return Div(
		ID("pricing-cards"),
		Class("pricing-grid"),
		g.Group(g.Map(indexes(len(plans)), func(i int) g.Node {
			return PricingCard(tr, plans[i], quotes[i])
		})),
	)
}

func PricingCard(tr i18n.Translator, plan pricing.Plan, q pricing.Presentation) g.Node {
	cls := "pricing-card"
	if plan.Popular {
		cls += " pricing-card--popular"
	}
	ctaCls := "btn btn-block btn-secondary"
	if plan.Popular {
		ctaCls = "btn btn-block btn-primary"
	}
	return Article(
		Class(cls),
		Data("plan", plan.ID),
		g.If(plan.Popular, Div(Class("badge-popular"), Icon("fa-star"), g.Text(tr.T("pricing.popular")))),
		Div(
			Class("pricing-card-body"),
			Div(
				Class("pricing-card-header"),
				g.If(plan.Icon != "", Span(Class("pricing-card-icon"), Icon(plan.Icon))),
				H3(Class("pricing-card-name"), g.Text(plan.Name)),
				P(Class("pricing-card-description"), g.Text(plan.Description)),
			),
			priceBlock(tr, q),
			ExternalLink(plan.CTAHref, Class(ctaCls), g.Text(plan.CTALabel)),
			Hr(Class("pricing-card-divider")),
			Ul(
				Class("pricing-features"),
				g.Group(g.Map(plan.Features, func(f pricing.Feature) g.Node {
					return featureRow(f)
				})),
			),
		),
	)
}

func priceBlock(tr i18n.Translator, q pricing.Presentation) g.Node {
	if q.Free {
		return Div(
			Class("pricing-price"),
			Span(Class("price-display"), g.Text(format.Rupiah(0))),
			P(Class("price-forever"), g.Text(tr.T("pricing.forever"))),
		)
	}
	return Div(
		Class("pricing-price"),
		Div(
			Class("price-main"),
			Span(Class("price-display"), g.Text(format.Rupiah(q.MonthlyEquivalent))),
			Span(Class("price-period"), g.Text(tr.T("pricing.perMonth"))),
		),
		g.Iff(q.ShowDiscount(), func() g.Node {
			return Div(
				Class("price-discount"),
				Div(
					Class("price-compare"),
					Del(Class("price-list"), g.Text(format.Rupiah(q.ListMonthly))),
					g.If(q.SavePercent != 0, Span(Class("price-save"), g.Text(savePercent(q.SavePercent)))),
				),
				P(Class("price-billed"), g.Textf("%s / %s", format.Rupiah(q.DisplayPrice), tr.T("pricing.period."+q.Cycle.Key()))),
			)
		}),
	)
}

// savePercent renders a saving as a price change: 20 is "-20%", a negative
// saving of 5 is "+5%".
func savePercent(v int64) string {
	return fmt.Sprintf("%+d%%", -v)
}

func featureRow(f pricing.Feature) g.Node {
	if !f.Included {
		return Li(
			Class("pricing-feature excluded"),
			Span(Class("pricing-feature-mark"), Icon("fa-times")),
			Span(Class("pricing-feature-label"), g.Text(f.Label)),
		)
	}
	return Li(
		Class("pricing-feature"),
		Span(Class("pricing-feature-mark"), Icon("fa-check")),
		Span(
			Class("pricing-feature-label"),
			g.Text(f.Label),
			g.If(f.Value != "", Span(Class("pricing-feature-value"), g.Text(f.Value))),
		),
	)
}
