// Package showcase models the scroll-driven feature showcase: which panel is
// current for a scroll position, the scrubbable transition timeline between
// panels on wide viewports, and the one-shot reveal used on narrow ones.
//
// Everything here is a pure function of its inputs so the server can render
// the initial frame and hand the same timeline to the browser as JSON.
package showcase

// Panel is one slide of the showcase.
type Panel struct {
	Key        string
	Icon       string
	Name       string
	Highlights []string
	Badge      string
	Limits     []Limit
	Accent     string
}

// Limit is one cell of a panel's per-plan limit table.
type Limit struct {
	Plan  string `json:"plan"`
	Value string `json:"value"`
}

// HasBadge reports whether the panel shows a badge.
func (p Panel) HasBadge() bool { return p.Badge != "" }

// HasLimits reports whether the panel shows a limit table.
func (p Panel) HasLimits() bool { return len(p.Limits) > 0 }
