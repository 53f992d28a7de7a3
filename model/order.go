package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is what gets handed to fulfillment when a cart is submitted.
type Order struct {
	ID         string          `json:"id"`
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"total_items"`
	Total      decimal.Decimal `json:"total"`
	TotalPrice string          `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}
