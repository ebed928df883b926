// Package pricing holds the billing-cycle state shared by a pricing display and
// the price math each plan card shows for the selected cycle.
package pricing

import "strings"

// Cycle is the selected billing period.
type Cycle int

const (
	Monthly Cycle = iota
	SixMonths
	Yearly
)

// Cycles lists the billing periods in toggle order.
var Cycles = []Cycle{Monthly, SixMonths, Yearly}

// Valid reports whether c is one of the enumerated cycles.
func (c Cycle) Valid() bool { return c >= Monthly && c <= Yearly }

// String returns the wire form used in query strings.
func (c Cycle) String() string {
	switch c {
	case SixMonths:
		return "six-months"
	case Yearly:
		return "yearly"
	default:
		return "monthly"
	}
}

// Months is the number of months one payment covers.
func (c Cycle) Months() int64 {
	switch c {
	case SixMonths:
		return 6
	case Yearly:
		return 12
	default:
		return 1
	}
}

// Key is the translation-table name of the cycle ("monthly", "sixMonths", "yearly").
func (c Cycle) Key() string {
	switch c {
	case SixMonths:
		return "sixMonths"
	case Yearly:
		return "yearly"
	default:
		return "monthly"
	}
}

// ParseCycle accepts the wire form as well as the camelCase table name.
func ParseCycle(s string) (Cycle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month", "1":
		return Monthly, true
	case "six-months", "sixmonths", "six_months", "6":
		return SixMonths, true
	case "yearly", "year", "annual", "12":
		return Yearly, true
	}
	return Monthly, false
}

// CycleOrDefault parses s and falls back to Monthly.
func CycleOrDefault(s string) Cycle {
	c, _ := ParseCycle(s)
	return c
}
