// Package faq holds the question list and the accordion state of the FAQ
// section.
package faq

import (
	"fmt"

	"helixio.app/web/internal/i18n"
)

// Item is one question with its answer.
type Item struct {
	ID       string
	Question string
	Answer   string
}

// Items reads the faq.items translation array. Records missing a question or
// an answer are skipped.
func Items(tr i18n.Translator) []Item {
	recs := tr.Array("faq.items")
	out := make([]Item, 0, len(recs))
	for _, r := range recs {
		if r["question"] == "" || r["answer"] == "" {
			continue
		}
		out = append(out, Item{
			ID:       fmt.Sprintf("faq-%d", len(out)+1),
			Question: r["question"],
			Answer:   r["answer"],
		})
	}
	return out
}

// Accordion tracks which items are expanded. Items open and close
// independently and all start closed.
type Accordion struct {
	items []Item
	open  []bool
}

// NewAccordion returns an accordion with every item closed.
func NewAccordion(items []Item) *Accordion {
	return &Accordion{items: items, open: make([]bool, len(items))}
}

// Items returns the items in order.
func (a *Accordion) Items() []Item { return a.items }

// Len returns the number of items.
func (a *Accordion) Len() int { return len(a.items) }

// Toggle flips item i. Out-of-range indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= len(a.open) {
		return
	}
	a.open[i] = !a.open[i]
}

// IsOpen reports whether item i is expanded.
func (a *Accordion) IsOpen(i int) bool {
	return i >= 0 && i < len(a.open) && a.open[i]
}

// PanelID is the id of the answer region controlled by item i's button.
func (a *Accordion) PanelID(i int) string {
	if i < 0 || i >= len(a.items) {
		return ""
	}
	return a.items[i].ID + "-answer"
}
