package cart

import models "storefront/model"

// State is an immutable cart snapshot. Apply never modifies the State it is
// given; it returns a new one.
type State struct {
	items []models.CartItem
}

// Empty returns a cart with no line items.
func Empty() State {
	return State{}
}

// NewState builds a State from items, merging duplicate skus by summing
// their quantities and dropping entries with qty <= 0.
func NewState(items ...models.CartItem) State {
	var s State
	for _, it := range items {
		if it.Qty <= 0 {
			continue
		}
		if i := s.index(it.SKU); i >= 0 {
			s.items[i].Qty += it.Qty
			continue
		}
		s.items = append(s.items, it)
	}
	return s
}

// Items returns a copy of the line items in insertion order.
func (s State) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len is the number of line items (not the number of units).
func (s State) Len() int { return len(s.items) }

// Get returns the line item for sku.
func (s State) Get(sku string) (models.CartItem, bool) {
	if i := s.index(sku); i >= 0 {
		return s.items[i], true
	}
	return models.CartItem{}, false
}

func (s State) index(sku string) int {
	for i := range s.items {
		if s.items[i].SKU == sku {
			return i
		}
	}
	return -1
}
