package store

import (
	"context"

	models "storefront/model"
)

// Store is the persistence the storefront needs: the product table the
// catalog is loaded from, and the orders written on checkout.
type Store interface {
	ListProducts(ctx context.Context) ([]ProductRow, error)
	CreateProduct(ctx context.Context, p models.Product) error

	SaveOrder(ctx context.Context, order models.Order) (int64, error)

	Migrate(ctx context.Context) error
	Close() error
}
