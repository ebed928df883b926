package showcase

import "time"

// Sequencer drives the showcase for one mounted instance. Wide viewports scrub
// the timeline with scroll progress; narrow ones reveal each panel once as it
// scrolls into view. A zero width, as on the server, is narrow.
type Sequencer struct {
	panels   []Panel
	timeline *Timeline
	snap     Snap
	viewport *Viewport
	reveals  []*Reveal
	progress float64
	active   int
	closed   bool
	unlisten func()
	onActive []func(int)
}

// NewSequencer builds the timeline for panels and classifies width.
func NewSequencer(panels []Panel, width int) *Sequencer {
	s := &Sequencer{
		panels:   panels,
		timeline: Build(panels),
		snap:     NewSnap(len(panels)),
		viewport: NewViewport(width),
	}
	s.resetReveals()
	s.unlisten = s.viewport.Listen(s.classChanged)
	return s
}

// Panels returns the panels in display order.
func (s *Sequencer) Panels() []Panel { return s.panels }

// Timeline returns the transition timeline.
func (s *Sequencer) Timeline() *Timeline { return s.timeline }

// Snap returns the snapping configuration.
func (s *Sequencer) Snap() Snap { return s.snap }

// Wide reports whether the pinned layout is active.
func (s *Sequencer) Wide() bool { return s.viewport.Wide() }

// Active returns the current panel index.
func (s *Sequencer) Active() int { return s.active }

// Progress returns the last scroll progress seen.
func (s *Sequencer) Progress() float64 { return s.progress }

// Fill returns the progress bar fraction for the current panel.
func (s *Sequencer) Fill() float64 { return FillFraction(s.active, len(s.panels)) }

// Reveals returns the per-panel narrow reveals.
func (s *Sequencer) Reveals() []*Reveal { return s.reveals }

// OnActive registers fn to run when the active index changes.
func (s *Sequencer) OnActive(fn func(int)) {
	s.onActive = append(s.onActive, fn)
}

// Resize re-classifies the viewport. Crossing the breakpoint tears down the
// state of the previous layout.
func (s *Sequencer) Resize(width int) {
	if s.closed {
		return
	}
	s.viewport.Resize(width)
}

// Scroll updates scroll progress on wide viewports and returns the frame to
// paint. Narrow viewports ignore it.
func (s *Sequencer) Scroll(progress float64) Frame {
	if s.closed || !s.viewport.Wide() {
		return s.Frame()
	}
	s.progress = clamp01(progress)
	s.setActive(ActiveIndex(s.progress, len(s.panels)))
	return s.Frame()
}

// Settle snaps to the nearest panel once scrolling stops and returns the
// target progress and how long the snap animates.
func (s *Sequencer) Settle() (float64, time.Duration) {
	if s.closed || !s.viewport.Wide() {
		return s.progress, 0
	}
	d := s.snap.Duration(s.progress)
	s.Scroll(s.snap.Target(s.progress))
	return s.progress, d
}

// Observe feeds an intersection ratio for panel i on narrow viewports and
// reports whether it fired the reveal.
func (s *Sequencer) Observe(i int, ratio float64) bool {
	if s.closed || s.viewport.Wide() || i < 0 || i >= len(s.reveals) {
		return false
	}
	return s.reveals[i].Observe(ratio)
}

// Frame evaluates the timeline at the current progress.
func (s *Sequencer) Frame() Frame { return s.timeline.Evaluate(s.progress) }

// Close releases the viewport listener. Later calls are no-ops.
func (s *Sequencer) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.unlisten()
	s.viewport.Close()
}

func (s *Sequencer) classChanged(wide bool) {
	s.progress = 0
	s.setActive(0)
	if !wide {
		s.resetReveals()
	}
}

func (s *Sequencer) setActive(i int) {
	if i == s.active {
		return
	}
	s.active = i
	for _, fn := range s.onActive {
		fn(i)
	}
}

func (s *Sequencer) resetReveals() {
	s.reveals = make([]*Reveal, len(s.panels))
	for i := range s.reveals {
		s.reveals[i] = &Reveal{}
	}
}
