package service

import (
	"context"

	"storefront/cart"
	models "storefront/model"
)

type ServiceInterface interface {
	ListProducts() []ProductDTO
	AddToCart(sku string) (cart.View, error)
	RemoveFromCart(sku string) (cart.View, error)
	UpdateQuantity(sku string, qty int) (cart.View, error)
	GetCart() cart.View
	Checkout(ctx context.Context) (models.Order, error)
}

// Submitter sends a checked-out order to fulfillment.
type Submitter interface {
	Submit(ctx context.Context, order models.Order) error
}
