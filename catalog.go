package credit

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Product is an item that can be purchased. It is never modified once in a Catalog.
type Product struct {
	name  string
	price Money
}

// NewProduct creates a product. The price must not be negative.
func NewProduct(name string, price Money) (Product, error) {
	if price.IsNegative() {
		return Product{}, fmt.Errorf("product %q: price %v must not be negative", name, price)
	}
	return Product{name: name, price: price}, nil
}

func (p Product) Name() string { return p.name }
func (p Product) Price() Money { return p.price }

// Catalog is the fixed, ordered list of products on sale.
type Catalog struct {
	products []Product
}

// NewCatalog creates a catalog with products in the given order.
func NewCatalog(products ...Product) *Catalog {
	return &Catalog{products: products}
}

// DefaultCatalog returns the catalog available at startup.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Product{name: "Laptop", price: M(800)},
		Product{name: "Phone", price: M(500)},
	)
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Products iterates over products with their 1-based index.
func (c *Catalog) Products() iter.Seq2[int, Product] {
	return func(yield func(int, Product) bool) {
		for i, p := range c.products {
			if !yield(i+1, p) {
				return
			}
		}
	}
}

// At returns the product at the 1-based index i.
func (c *Catalog) At(i int) (Product, error) {
	if i < 1 || i > len(c.products) {
		return Product{}, fmt.Errorf("%w: %d is not in [1, %d]", ErrInvalidSelection, i, len(c.products))
	}
	return c.products[i-1], nil
}

// Select parses a 1-based product index as typed on the console and returns the product.
func (c *Catalog) Select(input string) (Product, error) {
	i, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return Product{}, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, input)
	}
	return c.At(i)
}

// Lookup finds a product by its exact name.
func (c *Catalog) Lookup(name string) (Product, bool) {
	for _, p := range c.products {
		if p.name == name {
			return p, true
		}
	}
	return Product{}, false
}
