package models

import "github.com/shopspring/decimal"

// Product is a purchasable catalog entry. Products are never mutated once
// loaded.
type Product struct {
	SKU   string          `json:"sku" yaml:"sku"`
	Name  string          `json:"name" yaml:"name"`
	Price decimal.Decimal `json:"price" yaml:"price"`
}

// CartItem returns the payload used to put p into a cart.
func (p Product) CartItem() *CartItem {
	return &CartItem{SKU: p.SKU, Name: p.Name, Price: p.Price, Qty: 1}
}
