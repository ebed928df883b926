package components

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"helixio.app/web/internal/showcase"
)

// Showcase renders both layouts of the feature showcase. The wide layout is
// pinned and scrubbed by the browser from the embedded timeline; the narrow
// one reveals each panel once. CSS picks one at the showcase breakpoint, and
// the server paints the frame the sequencer is currently at.
func Showcase(p Page, seq *showcase.Sequencer) g.Node {
	panels := seq.Panels()
	if len(panels) == 0 {
		return nil
	}
	frame := seq.Frame()
	reveals := seq.Reveals()

	var timeline g.Node
	if raw, err := json.Marshal(seq.Timeline()); err == nil {
		timeline = Data("timeline", string(raw))
	}

	return Section(
		ID("features"),
		Class("showcase"),
		Data("breakpoint", strconv.Itoa(showcase.Breakpoint)),
		Div(
			Class("container"),
			SectionHeader(p.T.T("showcase.eyebrow"), p.T.T("showcase.title"), p.T.T("showcase.subtitle")),
		),
		Div(
			Class("showcase-wide"),
			timeline,
			Data("active", strconv.Itoa(frame.Active)),
			Style(fmt.Sprintf("--showcase-panels: %d", len(panels))),
			Div(
				Class("showcase-stage"),
				Div(
					Class("showcase-panels"),
					g.Group(g.Map(indexes(len(panels)), func(i int) g.Node {
						return widePanel(p, i, panels[i], frame.Panels[i])
					})),
				),
				showcaseProgress(panels, frame),
			),
		),
		Div(
			Class("showcase-narrow"),
			g.Group(g.Map(indexes(len(panels)), func(i int) g.Node {
				return narrowPanel(p, i, panels[i], reveals[i])
			})),
		),
	)
}

func showcaseProgress(panels []showcase.Panel, frame showcase.Frame) g.Node {
	return Div(
		Class("showcase-progress"),
		Aria("hidden", "true"),
		Div(
			Class("showcase-progress-track"),
			Div(Class("showcase-progress-fill"), Style("height: "+percent(frame.Fill))),
		),
		Ol(
			Class("showcase-dots"),
			g.Group(g.Map(indexes(len(panels)), func(i int) g.Node {
				cls := "showcase-dot"
				if i == frame.Active {
					cls += " active"
				}
				return Li(Class(cls), Data("dot", strconv.Itoa(i)), Title(panels[i].Name))
			})),
		),
	)
}

func widePanel(p Page, i int, panel showcase.Panel, f showcase.PanelFrame) g.Node {
	idx := strconv.Itoa(i)
	grid := "showcase-grid"
	if i%2 == 1 {
		grid += " reversed"
	}
	return Article(
		Class("showcase-panel"),
		Data("panel", idx),
		Data("el", showcase.PanelRoot.String()),
		Style(stateStyle(f.Root, true)),
		g.If(!f.Root.Visible, Aria("hidden", "true")),
		Div(
			Class(grid),
			Div(
				Class("showcase-visual"),
				Data("el", showcase.Visual.String()),
				Style(stateStyle(f.Visual, false)),
				panelVisual(p, panel),
			),
			Div(
				Class("showcase-content"),
				Data("el", showcase.Content.String()),
				Style(stateStyle(f.Content, false)),
				panelHeading(panel, H3),
				g.If(panel.HasBadge(), panelBadge(panel, Data("el", showcase.Badge.String()), Style(stateStyle(stateOr(f.Badge), false)))),
				Ul(
					Class("showcase-highlights"),
					g.Group(g.Map(indexes(len(panel.Highlights)), func(k int) g.Node {
						var st showcase.State
						if k < len(f.Highlights) {
							st = f.Highlights[k]
						}
						return panelHighlight(panel, k, Data("el", showcase.Highlight.String()), Data("item", strconv.Itoa(k)), Style(stateStyle(st, false)))
					})),
				),
				g.If(panel.HasLimits(), panelLimits(panel, "showcase-limits-grid wide", Data("el", showcase.Limits.String()), Style(stateStyle(stateOr(f.Limits), false)))),
			),
		),
	)
}

func narrowPanel(p Page, i int, panel showcase.Panel, r *showcase.Reveal) g.Node {
	state := "pending"
	if r.Revealed() {
		state = "revealed"
	}
	rest := r.State()
	return Article(
		Class("showcase-mobile-panel"),
		Data("panel", strconv.Itoa(i)),
		Data("reveal", state),
		Data("threshold", num(showcase.RevealThreshold)),
		Data("root-margin", showcase.RevealRootMargin),
		Style(fmt.Sprintf("transform: translateY(%spx); opacity: %s; transition-duration: %dms", num(rest.Y), num(rest.Opacity), showcase.RevealDuration.Milliseconds())),
		Div(Class("showcase-visual"), panelVisual(p, panel)),
		Div(
			Class("showcase-content"),
			panelHeading(panel, H3),
			g.If(panel.HasBadge(), panelBadge(panel)),
			Ul(
				Class("showcase-highlights"),
				g.Group(g.Map(indexes(len(panel.Highlights)), func(k int) g.Node {
					return panelHighlight(panel, k, Style(fmt.Sprintf("transition-delay: %dms", showcase.HighlightDelay(k).Milliseconds())))
				})),
			),
			g.If(panel.HasLimits(), panelLimits(panel, "showcase-limits-grid narrow", Style(fmt.Sprintf("transition-delay: %dms", showcase.LimitsDelay.Milliseconds())))),
		),
	)
}

func panelVisual(p Page, panel showcase.Panel) g.Node {
	return Div(
		Class("showcase-screen"),
		Style("--accent: "+panel.Accent),
		Div(Class("showcase-screen-icon"), Icon(panel.Icon)),
		P(Class("showcase-screen-caption"), g.Text(p.T.T("showcase.screenshot"))),
	)
}

func panelHeading(panel showcase.Panel, heading func(children ...g.Node) g.Node) g.Node {
	return Div(
		Class("showcase-heading"),
		Span(Class("showcase-heading-icon"), Style("color: "+panel.Accent), Icon(panel.Icon)),
		heading(g.Text(panel.Name)),
	)
}

func panelBadge(panel showcase.Panel, attrs ...g.Node) g.Node {
	return Span(Class("showcase-badge"), Style("background: "+panel.Accent), g.Group(attrs), g.Text(panel.Badge))
}

func panelHighlight(panel showcase.Panel, k int, attrs ...g.Node) g.Node {
	return Li(
		Class("showcase-highlight"),
		g.Group(attrs),
		Span(Class("showcase-check"), Style("color: "+panel.Accent), Icon("fa-check")),
		Span(g.Text(panel.Highlights[k])),
	)
}

func panelLimits(panel showcase.Panel, grid string, attrs ...g.Node) g.Node {
	return Div(
		Class("showcase-limits"),
		g.Group(attrs),
		Dl(
			Class(grid),
			g.Group(g.Map(panel.Limits, func(l showcase.Limit) g.Node {
				return Div(Class("showcase-limit"), Dt(g.Text(l.Plan)), Dd(g.Text(l.Value)))
			})),
		),
	)
}

// stateStyle renders an element state as inline CSS. Only panel roots toggle
// visibility; inner elements fade with opacity.
func stateStyle(s showcase.State, root bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "transform: translate(%spx, %spx) scale(%s); opacity: %s", num(s.X), num(s.Y), num(s.Scale), num(s.Opacity))
	if root {
		if s.Visible {
			b.WriteString("; visibility: visible")
		} else {
			b.WriteString("; visibility: hidden")
		}
	}
	return b.String()
}

func stateOr(s *showcase.State) showcase.State {
	if s == nil {
		return showcase.State{Scale: 1, Opacity: 1, Visible: true}
	}
	return *s
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
