package entity

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxCartLines is the hard cap on cart entries.
	MaxCartLines = 20
	// MaxLineQuantity is the largest quantity a single add-to-cart may request.
	MaxLineQuantity = 10
)

// ErrCartFull is returned when a line is added to a cart that already holds
// MaxCartLines entries.
var ErrCartFull = errors.New("cart is full")

// CartLine is one add-to-cart action: a product reference plus the requested
// quantity. Repeated adds of the same product produce separate lines; lines
// are never merged.
type CartLine struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// LineTotal computes quantity times unit price. It is derived on demand, not
// stored.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ShoppingCart is the ordered sequence of cart lines for one customer session.
type ShoppingCart struct {
	lines []CartLine
}

// NewShoppingCart creates an empty cart.
func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{}
}

// Lines returns the cart lines in add order.
func (c *ShoppingCart) Lines() []CartLine {
	return c.lines
}

// Size returns the number of lines.
func (c *ShoppingCart) Size() int {
	return len(c.lines)
}

// AddLine appends a new line for the product. The regular price is captured;
// member pricing is carried on Product but never applied to cart totals.
func (c *ShoppingCart) AddLine(p *Product, quantity int) error {
	if len(c.lines) >= MaxCartLines {
		return ErrCartFull
	}
	c.lines = append(c.lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  quantity,
	})
	return nil
}

// Total sums every line's quantity times its regular unit price.
func (c *ShoppingCart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// Clear empties the cart.
func (c *ShoppingCart) Clear() {
	c.lines = nil
}
