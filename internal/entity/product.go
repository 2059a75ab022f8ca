package entity

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrIndexOutOfRange is returned when a catalog position is outside [0, size).
var ErrIndexOutOfRange = errors.New("product index out of range")

// Product is one catalog entry. ID is a session-scoped surrogate key assigned
// when the product is loaded or created; it is not persisted because the
// inventory file shape is fixed at eight fields.
type Product struct {
	ID          uuid.UUID
	Name        string
	Brand       string
	Category    string
	SubCategory string
	Price       decimal.Decimal
	MemberPrice decimal.Decimal
	Quantity    int
	Description string
}

/*
Inventory file record (one line per product):

	name,brand,category,subCategory,price,memberPrice,quantity,description

Prices carry two decimals. Field values must not contain commas; the prompt
layer rejects them at input time.
*/

// Catalog is the ordered collection of products. Insertion order is the
// authoritative order used for positional access; display sorts never touch it.
type Catalog struct {
	products []*Product
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Size returns the number of products.
func (c *Catalog) Size() int {
	return len(c.products)
}

// Products returns the products in authoritative order.
func (c *Catalog) Products() []*Product {
	return c.products
}

// Add appends a product. Duplicate names are legal.
func (c *Catalog) Add(p *Product) {
	c.products = append(c.products, p)
}

// At returns the product at position i.
func (c *Catalog) At(i int) (*Product, error) {
	if i < 0 || i >= len(c.products) {
		return nil, ErrIndexOutOfRange
	}
	return c.products[i], nil
}

// ByID returns the product with the given surrogate ID.
func (c *Catalog) ByID(id uuid.UUID) (*Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// RemoveAt deletes the product at position i.
func (c *Catalog) RemoveAt(i int) error {
	if i < 0 || i >= len(c.products) {
		return ErrIndexOutOfRange
	}
	c.products = append(c.products[:i], c.products[i+1:]...)
	return nil
}

// ReplaceAt overwrites the product at position i in place.
func (c *Catalog) ReplaceAt(i int, p *Product) error {
	if i < 0 || i >= len(c.products) {
		return ErrIndexOutOfRange
	}
	c.products[i] = p
	return nil
}

// SortedByStockDescending returns a new view ordered by quantity, highest
// first. The sort is stable and the underlying catalog order is not mutated,
// so positional edits keep addressing the record the admin intended.
func (c *Catalog) SortedByStockDescending() []*Product {
	view := make([]*Product, len(c.products))
	copy(view, c.products)
	sort.SliceStable(view, func(i, j int) bool {
		return view[i].Quantity > view[j].Quantity
	})
	return view
}
