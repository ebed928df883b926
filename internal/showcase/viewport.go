package showcase

// Breakpoint is the minimum viewport width, in CSS pixels, that gets the
// pinned, scroll-scrubbed layout.
const Breakpoint = 1024

// IsWide classifies a viewport width.
func IsWide(width int) bool { return width >= Breakpoint }

// Viewport tracks the wide/narrow classification and tells listeners when it
// flips. Listeners must be cancelled, or the viewport closed, on teardown.
type Viewport struct {
	width     int
	wide      bool
	closed    bool
	listeners []*viewportListener
}

type viewportListener struct {
	fn func(wide bool)
}

// NewViewport classifies the initial width.
func NewViewport(width int) *Viewport {
	return &Viewport{width: width, wide: IsWide(width)}
}

// Wide reports the current classification.
func (v *Viewport) Wide() bool { return v.wide }

// Width returns the last width seen.
func (v *Viewport) Width() int { return v.width }

// Resize re-evaluates the classification and notifies listeners only when it
// changes. A closed viewport ignores resizes.
func (v *Viewport) Resize(width int) {
	if v.closed {
		return
	}
	v.width = width
	wide := IsWide(width)
	if wide == v.wide {
		return
	}
	v.wide = wide
	for _, l := range append([]*viewportListener(nil), v.listeners...) {
		l.fn(wide)
	}
}

// Listen registers fn and returns the func that deregisters it.
func (v *Viewport) Listen(fn func(wide bool)) func() {
	if v.closed {
		return func() {}
	}
	l := &viewportListener{fn: fn}
	v.listeners = append(v.listeners, l)
	return func() { v.remove(l) }
}

// Listeners returns the number of registered listeners.
func (v *Viewport) Listeners() int { return len(v.listeners) }

// Close deregisters every listener and stops tracking resizes.
func (v *Viewport) Close() {
	v.closed = true
	v.listeners = nil
}

func (v *Viewport) remove(l *viewportListener) {
	for i, cur := range v.listeners {
		if cur == l {
			v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
			return
		}
	}
}
