package pricing

// Board keeps the quotes of a plan list in step with a Controller. It is the
// display side of the toggle: cards read from it, the toggle writes to the
// controller, and the board recomputes synchronously on every change.
type Board struct {
	plans  []Plan
	cycle  Cycle
	quotes []Presentation
	stop   func()
}

// NewBoard quotes plans for the controller's current cycle and subscribes to it.
func NewBoard(ctrl *Controller, plans []Plan) *Board {
	b := &Board{plans: plans}
	b.apply(ctrl.Cycle())
	b.stop = ctrl.Subscribe(b.apply)
	return b
}

func (b *Board) apply(c Cycle) {
	b.cycle = c
	b.quotes = QuoteAll(b.plans, c)
}

// Cycle returns the cycle the quotes were computed for.
func (b *Board) Cycle() Cycle { return b.cycle }

// Plans returns the plans in display order.
func (b *Board) Plans() []Plan { return b.plans }

// Quotes returns one presentation per plan, in plan order.
func (b *Board) Quotes() []Presentation { return b.quotes }

// Close stops following the controller.
func (b *Board) Close() {
	if b.stop != nil {
		b.stop()
		b.stop = nil
	}
}
