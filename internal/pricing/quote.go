package pricing

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Feature is one row of a plan's feature list.
type Feature struct {
	Label    string
	Included bool
	Value    string
}

// Plan is an immutable plan descriptor supplied by the page.
type Plan struct {
	ID             string
	Name           string
	Description    string
	PriceMonthly   int64
	PriceSixMonths int64
	PriceYearly    int64
	Free           bool
	Popular        bool
	Features       []Feature
	CTALabel       string
	CTAHref        string
	Icon           string
}

// Price returns the amount billed for one period of c.
func (p Plan) Price(c Cycle) int64 {
	switch c {
	case SixMonths:
		return p.PriceSixMonths
	case Yearly:
		return p.PriceYearly
	default:
		return p.PriceMonthly
	}
}

// Presentation is what a plan card shows for the selected cycle.
type Presentation struct {
	Cycle             Cycle
	Free              bool
	ListMonthly       int64 // undiscounted monthly price, shown struck through
	DisplayPrice      int64 // amount billed per period
	MonthlyEquivalent int64
	SavePercent       int64 // may be zero or negative; never clamped
}

// ShowDiscount reports whether the card shows the struck-through price and the
// saving badge.
func (q Presentation) ShowDiscount() bool {
	return !q.Free && q.Cycle != Monthly
}

var (
	half    = decimal.New(5, -1)
	hundred = decimal.NewFromInt(100)
)

// Quote computes the displayed price, monthly equivalent and saving of p for c.
// Free plans never get discount logic.
func Quote(p Plan, c Cycle) Presentation {
	if !c.Valid() {
		c = Monthly
	}
	q := Presentation{Cycle: c, Free: p.Free}
	if p.Free {
		return q
	}
	q.ListMonthly = p.PriceMonthly
	if c == Monthly {
		q.DisplayPrice = p.PriceMonthly
		q.MonthlyEquivalent = p.PriceMonthly
		return q
	}

	months := decimal.NewFromInt(c.Months())
	price := decimal.NewFromInt(p.Price(c))
	q.DisplayPrice = p.Price(c)
	q.MonthlyEquivalent = roundHalfUp(price.Div(months))
	if p.PriceMonthly != 0 {
		full := decimal.NewFromInt(p.PriceMonthly).Mul(months)
		q.SavePercent = roundHalfUp(decimal.NewFromInt(1).Sub(price.Div(full)).Mul(hundred))
	}
	return q
}

// QuoteAll quotes every plan for c, in order.
func QuoteAll(plans []Plan, c Cycle) []Presentation {
	return lo.Map(plans, func(p Plan, _ int) Presentation {
		return Quote(p, c)
	})
}

// roundHalfUp rounds to the nearest integer with ties going toward +Inf, so
// -2.5 becomes -2 and 2.5 becomes 3.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}
