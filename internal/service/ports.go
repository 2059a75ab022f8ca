package service

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/entity"
)

// CatalogStore loads and saves the authoritative product catalog.
type CatalogStore interface {
	Load(ctx context.Context) (*entity.Catalog, error)
	Save(ctx context.Context, catalog *entity.Catalog) error
}

// CustomerStore loads customer profiles and persists fund balances.
type CustomerStore interface {
	LoadByEmail(ctx context.Context, email string) (*entity.Customer, error)
	SaveFunds(ctx context.Context, email string, funds decimal.Decimal) error
}

// UserStore loads login credentials.
type UserStore interface {
	LoadAll(ctx context.Context) ([]entity.User, error)
}

// Console is the presentation boundary. It prompts the operator and renders
// output; it owns no business rules. Prompt implementations re-prompt on
// malformed input and only ever return valid values.
type Console interface {
	// PromptProductSelection asks for a product number. The valid range is
	// [0, size+1]: 0 exits the workflow, size+1 proceeds to checkout, and
	// 1..size selects the product at that display row.
	PromptProductSelection(size int) (int, error)
	// PromptQuantity asks for a quantity between 1 and max.
	PromptQuantity(max int) (int, error)
	// PromptYesNo asks a yes/no question.
	PromptYesNo(prompt string) (bool, error)

	RenderCatalog(products []*entity.Product)
	RenderCartSummary(cart *entity.ShoppingCart, total decimal.Decimal)
	RenderOrderConfirmation(orderNumber string, remaining decimal.Decimal)
	// Say prints one narrative line to the operator.
	Say(format string, args ...any)
}
