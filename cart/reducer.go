package cart

import (
	"fmt"

	models "storefront/model"
)

// Apply returns the state that results from running cmd against s. On error
// the returned state is s itself.
func Apply(s State, cmd Command) (State, error) {
	cmd = deref(cmd)
	if cmd == nil {
		return s, ErrUnknownCommand
	}
	item := cmd.payload()
	if item == nil {
		return s, fmt.Errorf("%s: %w", cmd.Name(), ErrMissingPayload)
	}

	switch cmd.(type) {
	case Add:
		return add(s, *item), nil
	case Remove:
		return remove(s, item.SKU), nil
	case SetQuantity:
		return setQuantity(s, item.SKU, item.Qty)
	case Submit:
		return Empty(), nil
	default:
		return s, fmt.Errorf("%s: %w", cmd.Name(), ErrUnknownCommand)
	}
}

func add(s State, item models.CartItem) State {
	next := s.Items()
	if i := s.index(item.SKU); i >= 0 {
		existing := next[i]
		next[i] = models.CartItem{SKU: existing.SKU, Name: existing.Name, Price: existing.Price, Qty: existing.Qty + 1}
		return State{items: next}
	}
	item.Qty = 1
	return State{items: append(next, item)}
}

func remove(s State, sku string) State {
	i := s.index(sku)
	if i < 0 {
		return s
	}
	next := make([]models.CartItem, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	return State{items: next}
}

func setQuantity(s State, sku string, qty int) (State, error) {
	i := s.index(sku)
	if i < 0 {
		return s, fmt.Errorf("quantity %q: %w", sku, ErrItemNotFound)
	}
	// qty <= 0 would leave a zero-quantity line item behind.
	if qty <= 0 {
		return remove(s, sku), nil
	}
	next := s.Items()
	next[i].Qty = qty
	return State{items: next}, nil
}
