package models

import "github.com/shopspring/decimal"

// CartItem is one line item: a sku and how many of it are in the cart.
type CartItem struct {
	SKU   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
}

// Subtotal is Price * Qty.
func (c CartItem) Subtotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Qty)))
}
