package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/entity"
)

// ErrQuantityRange is returned when a requested quantity is outside
// [1, entity.MaxLineQuantity].
var ErrQuantityRange = errors.New("quantity out of range")

// ErrInsufficientFunds is returned when a customer's balance cannot cover the
// checkout price.
var ErrInsufficientFunds = errors.New("insufficient funds")

// OutOfStockError reports a reservation that exceeds the remaining working
// stock for a product.
type OutOfStockError struct {
	Remaining int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("only %d left in stock", e.Remaining)
}

// WorkingStock is the per-session copy of catalog quantities. Reservations
// decrement it as lines are added to the cart; the authoritative catalog is
// untouched until checkout commits. A snapshot quantity never exceeds the
// catalog quantity at session start and never goes negative.
type WorkingStock struct {
	remaining map[uuid.UUID]int
}

// NewWorkingStock snapshots the catalog's current quantities.
func NewWorkingStock(catalog *entity.Catalog) *WorkingStock {
	remaining := make(map[uuid.UUID]int, catalog.Size())
	for _, p := range catalog.Products() {
		remaining[p.ID] = p.Quantity
	}
	return &WorkingStock{remaining: remaining}
}

// Remaining returns the unreserved quantity for a product.
func (s *WorkingStock) Remaining(id uuid.UUID) int {
	return s.remaining[id]
}

// Reserve decrements the remaining quantity by qty. On insufficient stock the
// snapshot is left unchanged and an OutOfStockError reports what is left.
func (s *WorkingStock) Reserve(id uuid.UUID, qty int) error {
	remaining := s.remaining[id]
	if qty > remaining {
		return &OutOfStockError{Remaining: remaining}
	}
	s.remaining[id] = remaining - qty
	return nil
}

// Apply writes the snapshot quantities back onto the catalog. Called once,
// when a checkout commits.
func (s *WorkingStock) Apply(catalog *entity.Catalog) {
	for _, p := range catalog.Products() {
		if remaining, ok := s.remaining[p.ID]; ok {
			p.Quantity = remaining
		}
	}
}
