package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "storefront/model"
)

type fakeSource struct {
	products []models.Product
	err      error
}

func (f fakeSource) Products(context.Context) ([]models.Product, error) { return f.products, f.err }

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 3, c.Len())

	list := c.List()
	assert.Equal(t, "item0001", list[0].SKU)
	assert.Equal(t, "Premium widget", list[1].Name)
	assert.True(t, list[2].Price.Equal(decimal.RequireFromString("39.99")))
}

func TestListReturnsCopy(t *testing.T) {
	c := Default()
	list := c.List()
	list[0].Name = "changed"

	p, ok := c.Lookup("item0001")
	require.True(t, ok)
	assert.Equal(t, "widget", p.Name)
}

func TestLookupMissing(t *testing.T) {
	_, ok := Default().Lookup("item9999")
	assert.False(t, ok)
}

func TestNewValidation(t *testing.T) {
	price := decimal.RequireFromString("1.00")

	_, err := New([]models.Product{{SKU: "", Price: price}})
	assert.ErrorIs(t, err, ErrEmptySKU)

	_, err = New([]models.Product{{SKU: "a1", Price: price}, {SKU: "a1", Price: price}})
	assert.ErrorIs(t, err, ErrDuplicateSKU)

	_, err = New([]models.Product{{SKU: "a1", Price: decimal.RequireFromString("-0.01")}})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestLoadFromSource(t *testing.T) {
	src := fakeSource{products: []models.Product{
		{SKU: "item0002", Name: "b", Price: decimal.RequireFromString("2")},
		{SKU: "item0001", Name: "a", Price: decimal.RequireFromString("1")},
	}}
	c, err := Load(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "item0002", c.List()[0].SKU)

	_, err = Load(context.Background(), fakeSource{err: errors.New("db down")})
	assert.ErrorContains(t, err, "db down")
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("testdata/catalog.yaml")
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	p, ok := c.Lookup("item0002")
	require.True(t, ok)
	assert.Equal(t, "Premium widget", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("19.99")))
}

func TestLoadYAMLErrors(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("products:\n  - sku: a1\n    price: cheap\n"))
	assert.ErrorContains(t, err, "invalid price")

	_, err = LoadYAML(strings.NewReader("products:\n  - sku: a1\n    colour: red\n    price: \"1\"\n"))
	assert.Error(t, err)

	_, err = LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}
