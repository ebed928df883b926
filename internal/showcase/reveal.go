package showcase

import "time"

// Narrow-viewport reveal parameters.
const (
	RevealThreshold  = 0.15
	RevealRootMargin = "0px 0px -30px 0px"
	RevealOffsetY    = 40
	RevealDuration   = 700 * time.Millisecond
	LimitsDelay      = 700 * time.Millisecond
)

// HighlightDelay is the reveal delay of the k-th highlight.
func HighlightDelay(k int) time.Duration {
	return 300*time.Millisecond + time.Duration(k)*100*time.Millisecond
}

// Reveal is the one-shot entrance of a panel on narrow viewports. Once fired
// it stays revealed and stops observing.
type Reveal struct {
	fired bool
}

// Observe feeds one intersection ratio and reports whether this call fired the
// reveal.
func (r *Reveal) Observe(ratio float64) bool {
	if r.fired || ratio < RevealThreshold {
		return false
	}
	r.fired = true
	return true
}

// Force reveals without observation, for clients that cannot observe.
func (r *Reveal) Force() { r.fired = true }

// Revealed reports whether the reveal has fired.
func (r *Reveal) Revealed() bool { return r.fired }

// Observing reports whether the panel still needs intersection updates.
func (r *Reveal) Observing() bool { return !r.fired }

// State is the panel's resting state before and after the reveal.
func (r *Reveal) State() State {
	if r.fired {
		return shown
	}
	return State{Y: RevealOffsetY, Scale: 1, Visible: true}
}
