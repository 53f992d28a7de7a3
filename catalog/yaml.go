package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	models "storefront/model"
)

// file is the on-disk catalog layout:
//
//	products:
//	  - sku: item0001
//	    name: widget
//	    price: "9.99"
type file struct {
	Products []struct {
		SKU   string `yaml:"sku"`
		Name  string `yaml:"name"`
		Price string `yaml:"price"`
	} `yaml:"products"`
}

// LoadYAML decodes a catalog document from r.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	products := make([]models.Product, 0, len(f.Products))
	for _, p := range f.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid price %q: %w", p.SKU, p.Price, err)
		}
		products = append(products, models.Product{SKU: p.SKU, Name: p.Name, Price: price})
	}
	return New(products)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadYAML(f)
}
