package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"storefront/internal/entity"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Session is the state of one interactive shopping session: the logged-in
// customer, the catalog as loaded at session start, the cart, and the working
// stock snapshot reservations are taken from.
type Session struct {
	Customer *entity.Customer
	Catalog  *entity.Catalog
	Cart     *entity.ShoppingCart
	Stock    *WorkingStock
}

// NewSession starts a shopping session for a customer against a freshly
// loaded catalog.
func NewSession(customer *entity.Customer, catalog *entity.Catalog) *Session {
	return &Session{
		Customer: customer,
		Catalog:  catalog,
		Cart:     entity.NewShoppingCart(),
		Stock:    NewWorkingStock(catalog),
	}
}

// CheckoutWorkflow drives the browse / add-to-cart / checkout loop for one
// session. Exactly one workflow instance is active at a time; the working
// stock snapshot has no concurrent writers.
type CheckoutWorkflow struct {
	catalogStore  CatalogStore
	customerStore CustomerStore
	console       Console
	settleDelay   time.Duration
}

// NewCheckoutWorkflow creates a workflow. settleDelay paces the cosmetic
// post-payment narration; pass 0 for deterministic runs.
func NewCheckoutWorkflow(catalogStore CatalogStore, customerStore CustomerStore, console Console, settleDelay time.Duration) *CheckoutWorkflow {
	return &CheckoutWorkflow{
		catalogStore:  catalogStore,
		customerStore: customerStore,
		console:       console,
		settleDelay:   settleDelay,
	}
}

// Run loops the browsing workflow until the operator exits or an order is
// confirmed. Business rejections (out of stock, cart full, insufficient
// funds) are reported and loop back into browsing; only persistence failures
// propagate.
func (w *CheckoutWorkflow) Run(ctx context.Context, session *Session) error {
	for {
		view := session.Catalog.SortedByStockDescending()
		w.console.RenderCatalog(view)

		selection, err := w.console.PromptProductSelection(len(view))
		if err != nil {
			return err
		}

		switch {
		case selection == 0:
			w.console.Say("Returning to main menu...")
			return nil

		case selection == len(view)+1:
			done, err := w.review(ctx, session)
			if err != nil {
				return err
			}
			if done {
				return nil
			}

		default:
			if err := w.selectProduct(session, view[selection-1]); err != nil {
				return err
			}
		}
	}
}

// Checkout enters the review stage directly, for the menu action that views
// the cart. Cancelling or an insufficient-funds abort drops back into the
// browsing loop, same as reaching review from browsing.
func (w *CheckoutWorkflow) Checkout(ctx context.Context, session *Session) error {
	done, err := w.review(ctx, session)
	if err != nil || done {
		return err
	}
	return w.Run(ctx, session)
}

// selectProduct handles one add-to-cart attempt for the chosen product.
func (w *CheckoutWorkflow) selectProduct(session *Session, product *entity.Product) error {
	if session.Cart.Size() >= entity.MaxCartLines {
		w.console.Say("Only %d items can be added to the cart.", entity.MaxCartLines)
		return nil
	}

	qty, err := w.console.PromptQuantity(entity.MaxLineQuantity)
	if err != nil {
		return err
	}

	if err := w.AddToCart(session, product, qty); err != nil {
		var oos *OutOfStockError
		if errors.As(err, &oos) {
			w.console.Say("Only %d left in stock", oos.Remaining)
			return nil
		}
		if errors.Is(err, entity.ErrCartFull) {
			w.console.Say("Only %d items can be added to the cart.", entity.MaxCartLines)
			return nil
		}
		return err
	}

	w.console.Say("Product added to cart!")
	return nil
}

// AddToCart reserves qty units of the product against the working stock and
// appends a cart line. Adding the same product twice yields two separate
// lines. On any rejection the cart and snapshot are left unchanged.
func (w *CheckoutWorkflow) AddToCart(session *Session, product *entity.Product, qty int) error {
	if session.Cart.Size() >= entity.MaxCartLines {
		logger.Warn().Int("lines", session.Cart.Size()).Msg("Cart capacity exceeded")
		return entity.ErrCartFull
	}
	if qty < 1 || qty > entity.MaxLineQuantity {
		return ErrQuantityRange
	}
	if err := session.Stock.Reserve(product.ID, qty); err != nil {
		logger.Warn().Str("product", product.Name).Int("requested", qty).Msg("Product out of stock")
		return err
	}
	return session.Cart.AddLine(product, qty)
}

// review renders the cart and either commits the order, cancels back to
// browsing with the cart intact, or aborts on insufficient funds with the
// cart cleared. Cart lines do not survive a committed order; the session cart
// is emptied before confirmation renders. It reports true when the workflow
// is finished.
func (w *CheckoutWorkflow) review(ctx context.Context, session *Session) (bool, error) {
	total := session.Cart.Total()
	w.console.RenderCartSummary(session.Cart, total)

	proceed, err := w.console.PromptYesNo("Enter Y to place the order or N to cancel and return to shopping (items are not held)")
	if err != nil {
		return false, err
	}
	if !proceed {
		w.console.Say("Returning to shopping...")
		return false, nil
	}

	w.console.Say("Checking balance and verifying inventory...")
	orderNumber, err := w.Commit(ctx, session)
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			w.console.Say("Insufficient funds to complete the order.")
			w.console.Say("Current funds: %s", session.Customer.Funds.StringFixed(2))
			w.console.Say("Cart value: %s", total.StringFixed(2))
			session.Cart.Clear()
			w.console.Say("Cart has been emptied, returning to shopping...")
			return false, nil
		}
		return false, err
	}

	session.Cart.Clear()
	w.settle()
	w.console.RenderOrderConfirmation(orderNumber, session.Customer.Funds)
	return true, nil
}

// Commit applies the cart against funds and stock. The balance must strictly
// exceed the checkout price; an exact match is rejected. On success the
// working stock snapshot becomes the authoritative catalog and the debited
// balance is persisted, in that order. The two writes are not transactional;
// a failure between them leaves the stores diverged.
func (w *CheckoutWorkflow) Commit(ctx context.Context, session *Session) (string, error) {
	total := session.Cart.Total()
	if !session.Customer.Funds.GreaterThan(total) {
		logger.Warn().
			Str("funds", session.Customer.Funds.StringFixed(2)).
			Str("total", total.StringFixed(2)).
			Msg("Checkout rejected, insufficient funds")
		return "", ErrInsufficientFunds
	}

	session.Stock.Apply(session.Catalog)
	if err := w.catalogStore.Save(ctx, session.Catalog); err != nil {
		logger.Error().Err(err).Msg("Error saving catalog")
		return "", err
	}

	remaining := session.Customer.Funds.Sub(total)
	if err := w.customerStore.SaveFunds(ctx, session.Customer.Email, remaining); err != nil {
		logger.Error().Err(err).Msg("Error saving customer funds")
		return "", err
	}
	session.Customer.Funds = remaining

	orderNumber := uuid.New().String()
	logger.Info().
		Str("order", orderNumber).
		Str("customer", session.Customer.Email).
		Str("total", total.StringFixed(2)).
		Msg("Order committed")
	return orderNumber, nil
}

// settle paces the post-commit narration. Purely cosmetic.
func (w *CheckoutWorkflow) settle() {
	for _, msg := range []string{
		"Payment processing...",
		"Confirming order, almost there...",
		"Order confirmed!",
	} {
		if w.settleDelay > 0 {
			time.Sleep(w.settleDelay)
		}
		w.console.Say(msg)
	}
}
