// Package trade implements offer composition, trade valuation, and the
// balancing recommendation engine.
package trade

import (
	"fmt"

	"trade-tide-go/internal/catalog"
)

// Line is one (item, quantity) entry in an offer.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// Offer is one side's proposed basket of items. Lines keep insertion order
// and no two lines reference the same item name.
type Offer struct {
	lines []Line
}

// NewOffer creates an empty offer.
func NewOffer() *Offer {
	return &Offer{}
}

// Add puts the item into the offer. If a line for the item already exists,
// its quantity is incremented instead of appending a duplicate line.
func (o *Offer) Add(item catalog.Item) {
	for i := range o.lines {
		if o.lines[i].Item.Name == item.Name {
			o.lines[i].Quantity++
			return
		}
	}
	o.lines = append(o.lines, Line{Item: item, Quantity: 1})
}

// Remove deletes the line for the named item. Removing an absent item is a
// no-op, not an error.
func (o *Offer) Remove(name string) {
	for i := range o.lines {
		if o.lines[i].Item.Name == name {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return
		}
	}
}

// Contains reports whether the offer has a line for the named item.
func (o *Offer) Contains(name string) bool {
	for i := range o.lines {
		if o.lines[i].Item.Name == name {
			return true
		}
	}
	return false
}

// Empty reports whether the offer has no lines.
func (o *Offer) Empty() bool {
	return len(o.lines) == 0
}

// Len returns the number of distinct lines.
func (o *Offer) Len() int {
	return len(o.lines)
}

// Lines returns a copy of the offer's lines in insertion order.
func (o *Offer) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// TotalValue sums item value times quantity over all lines.
// An empty offer totals 0.
func (o *Offer) TotalValue() float64 {
	var total float64
	for _, line := range o.lines {
		total += line.Item.Value * float64(line.Quantity)
	}
	return total
}

// TotalDemand sums item demand times quantity over all lines.
func (o *Offer) TotalDemand() int {
	var total int
	for _, line := range o.lines {
		total += line.Item.Demand * line.Quantity
	}
	return total
}

// ItemStrings flattens the offer into "Qx Name" strings for ledger records.
func (o *Offer) ItemStrings() []string {
	out := make([]string, 0, len(o.lines))
	for _, line := range o.lines {
		out = append(out, fmt.Sprintf("%dx %s", line.Quantity, line.Item.Name))
	}
	return out
}
