package cart

import models "storefront/model"

// Command is a cart transition request. The set of commands is closed: only
// the types in this package implement it.
type Command interface {
	// Name is used in logs and error messages.
	Name() string
	payload() *models.CartItem
}

// Add puts one more of Item.SKU into the cart.
type Add struct{ Item *models.CartItem }

// Remove deletes the line item for Item.SKU. Removing an absent sku is a no-op.
type Remove struct{ Item *models.CartItem }

// SetQuantity replaces the quantity of an existing line item with Item.Qty.
type SetQuantity struct{ Item *models.CartItem }

// Submit empties the cart once its contents have been handed to fulfillment.
type Submit struct{ Item *models.CartItem }

var (
	_ Command = Add{}
	_ Command = Remove{}
	_ Command = SetQuantity{}
	_ Command = Submit{}
)

func (Add) Name() string         { return "add" }
func (Remove) Name() string      { return "remove" }
func (SetQuantity) Name() string { return "quantity" }
func (Submit) Name() string      { return "submit" }

func (c Add) payload() *models.CartItem         { return c.Item }
func (c Remove) payload() *models.CartItem      { return c.Item }
func (c SetQuantity) payload() *models.CartItem { return c.Item }
func (c Submit) payload() *models.CartItem      { return c.Item }

// deref turns the pointer forms of the commands, which satisfy Command
// through their value methods, into values. A nil pointer becomes nil.
func deref(cmd Command) Command {
	switch c := cmd.(type) {
	case *Add:
		if c != nil {
			return *c
		}
	case *Remove:
		if c != nil {
			return *c
		}
	case *SetQuantity:
		if c != nil {
			return *c
		}
	case *Submit:
		if c != nil {
			return *c
		}
	default:
		return cmd
	}
	return nil
}
