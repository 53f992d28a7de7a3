// Package catalog holds the read-only product list the storefront sells from.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	models "storefront/model"
)

var (
	ErrEmptySKU      = errors.New("product sku is required")
	ErrDuplicateSKU  = errors.New("duplicate product sku")
	ErrNegativePrice = errors.New("product price must be >= 0")
)

// Source is anything that can produce the product list once at startup.
type Source interface {
	Products(ctx context.Context) ([]models.Product, error)
}

// Catalog is an ordered, immutable product list.
type Catalog struct {
	products []models.Product
	bySKU    map[string]int
}

// New validates products and returns a catalog preserving their order.
func New(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		bySKU:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		if p.SKU == "" {
			return nil, ErrEmptySKU
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%s: %w", p.SKU, ErrNegativePrice)
		}
		if _, dup := c.bySKU[p.SKU]; dup {
			return nil, fmt.Errorf("%s: %w", p.SKU, ErrDuplicateSKU)
		}
		c.bySKU[p.SKU] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Load reads src once and builds a catalog from the result.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	products, err := src.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(products)
}

// Default is the built-in catalog used when nothing else is configured.
func Default() *Catalog {
	c, err := New([]models.Product{
		{SKU: "item0001", Name: "widget", Price: decimal.RequireFromString("9.99")},
		{SKU: "item0002", Name: "Premium widget", Price: decimal.RequireFromString("19.99")},
		{SKU: "item0003", Name: "Deluxe widget", Price: decimal.RequireFromString("39.99")},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// List returns a copy of the products in catalog order.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup finds a product by sku.
func (c *Catalog) Lookup(sku string) (models.Product, bool) {
	i, ok := c.bySKU[sku]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// Len is the number of products.
func (c *Catalog) Len() int { return len(c.products) }
