package pricing

// Controller owns the billing cycle of one pricing display tree. It is a
// single-writer, many-reader cell: the toggle calls Set and every subscriber is
// told about the new value before Set returns. A Controller belongs to one
// render and is not safe for concurrent use.
type Controller struct {
	cycle Cycle
	subs  []*subscription
}

type subscription struct {
	fn     func(Cycle)
	active bool
}

// NewController starts at initial, or Monthly when initial is not a valid cycle.
func NewController(initial Cycle) *Controller {
	if !initial.Valid() {
		initial = Monthly
	}
	return &Controller{cycle: initial}
}

// Cycle returns the current billing cycle.
func (c *Controller) Cycle() Cycle { return c.cycle }

// Set selects next and reports whether the value changed. Setting the current
// value, or an invalid one, notifies nobody.
func (c *Controller) Set(next Cycle) bool {
	if !next.Valid() || next == c.cycle {
		return false
	}
	c.cycle = next
	// a subscriber may cancel itself while being notified
	subs := append([]*subscription(nil), c.subs...)
	for _, s := range subs {
		if s.active {
			s.fn(next)
		}
	}
	return true
}

// Subscribe registers fn for future changes and returns its cancel func.
func (c *Controller) Subscribe(fn func(Cycle)) func() {
	s := &subscription{fn: fn, active: true}
	c.subs = append(c.subs, s)
	return func() {
		if !s.active {
			return
		}
		s.active = false
		for i, cur := range c.subs {
			if cur == s {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				break
			}
		}
	}
}
