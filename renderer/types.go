package renderer

import "github.com/etnz/credit"

// Catalog is the view of a credit.Catalog.
type Catalog struct {
	Products []Product
}

// Product is one line of the catalog.
type Product struct {
	Index int
	Name  string
	Price string
}

// NewCatalog prepares a catalog for rendering.
func NewCatalog(c *credit.Catalog) *Catalog {
	v := &Catalog{}
	for i, p := range c.Products() {
		v.Products = append(v.Products, Product{Index: i, Name: p.Name(), Price: p.Price().String()})
	}
	return v
}

// Quote is the view of a credit.Quote for a product.
type Quote struct {
	Product  string
	Price    string
	Rate     string
	Duration string
	Interest string
	Total    string
}

// NewQuote prepares a quote for rendering.
func NewQuote(product string, q credit.Quote) *Quote {
	return &Quote{
		Product:  product,
		Price:    q.Price.String(),
		Rate:     q.Rate.String(),
		Duration: q.Duration.String(),
		Interest: q.Interest.String(),
		Total:    q.Total.String(),
	}
}
