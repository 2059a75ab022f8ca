package cli

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"

	"storefront/internal/entity"
	"storefront/internal/service"
)

// App wires the menus to the services. Menu dispatch lives here, outside the
// core: one handler per action.
type App struct {
	console  *Console
	auth     *service.AuthService
	catalog  *service.CatalogService
	checkout *service.CheckoutWorkflow
}

// NewApp creates a new instance of App.
func NewApp(console *Console, auth *service.AuthService, catalog *service.CatalogService, checkout *service.CheckoutWorkflow) *App {
	return &App{
		console:  console,
		auth:     auth,
		catalog:  catalog,
		checkout: checkout,
	}
}

// Run shows the main menu until the operator quits.
func (a *App) Run(ctx context.Context) error {
	for {
		a.logo()
		choice, err := a.console.PromptMenu("Main menu", []string{"Login", "Quit"})
		if err != nil {
			return quietInterrupt(err)
		}
		if choice == 1 {
			return nil
		}
		if err := a.login(ctx); err != nil {
			return quietInterrupt(err)
		}
	}
}

func (a *App) login(ctx context.Context) error {
	for {
		email, err := a.console.PromptEmail()
		if err != nil {
			return err
		}
		password, err := a.console.PromptPassword()
		if err != nil {
			return err
		}

		login, err := a.auth.Authenticate(ctx, email, password)
		switch {
		case errors.Is(err, service.ErrUnknownUser):
			a.console.Say("Invalid username, please try again!")
			continue
		case errors.Is(err, service.ErrBadPassword):
			a.console.Say("Invalid password, please try again")
			continue
		case errors.Is(err, service.ErrTooManyAttempts):
			a.console.Say("Too many login attempts, please wait a moment")
			continue
		case err != nil:
			return err
		}

		a.console.Say("Logged in successfully!")
		switch login.Role {
		case entity.RoleCustomer:
			return a.customerMenu(ctx, login)
		case entity.RoleAdmin:
			return a.adminMenu(ctx)
		default:
			a.console.Say("No menu for this account, logging out")
			return nil
		}
	}
}

// customerMenu runs the customer session. The catalog is loaded once at
// login; the cart and working stock snapshot live for the whole session.
func (a *App) customerMenu(ctx context.Context, login *service.Login) error {
	catalog, err := a.catalog.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	session := service.NewSession(login.Customer, catalog)

	for {
		a.logo()
		a.console.Say("Logged in as: %s", login.User.Email)
		choice, err := a.console.PromptMenu("What would you like to do?", []string{
			"Browse products",
			"Shop",
			"View shopping cart / Checkout",
			"Log out",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			a.console.RenderCatalog(session.Catalog.SortedByStockDescending())
		case 1:
			if err := a.checkout.Run(ctx, session); err != nil {
				return err
			}
		case 2:
			if session.Cart.Size() == 0 {
				a.console.Say("Your cart is empty")
				continue
			}
			if err := a.checkout.Checkout(ctx, session); err != nil {
				return err
			}
		case 3:
			return nil
		}
	}
}

func (a *App) adminMenu(ctx context.Context) error {
	for {
		a.logo()
		choice, err := a.console.PromptMenu("What would you like to do?", []string{
			"Add a product",
			"Delete a product",
			"Edit a product",
			"View products",
			"Log out",
		})
		if err != nil {
			return err
		}

		var actionErr error
		switch choice {
		case 0:
			actionErr = a.addProduct(ctx)
		case 1:
			actionErr = a.deleteProduct(ctx)
		case 2:
			actionErr = a.editProduct(ctx)
		case 3:
			actionErr = a.viewProducts(ctx)
		case 4:
			return nil
		}
		if actionErr != nil {
			return actionErr
		}
	}
}

func (a *App) viewProducts(ctx context.Context) error {
	catalog, err := a.catalog.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	a.console.RenderCatalog(catalog.SortedByStockDescending())
	return nil
}

func (a *App) addProduct(ctx context.Context) error {
	p := &entity.Product{ID: uuid.New()}
	var err error

	if p.Name, err = a.console.PromptName("Product name"); err != nil {
		return err
	}
	if p.Brand, err = a.console.PromptName("Brand"); err != nil {
		return err
	}
	if p.Category, err = a.console.PromptWord("Category"); err != nil {
		return err
	}
	if p.SubCategory, err = a.console.PromptWord("Subcategory"); err != nil {
		return err
	}
	if p.Price, err = a.console.PromptPrice("Price"); err != nil {
		return err
	}
	if p.MemberPrice, err = a.console.PromptPrice("Member price"); err != nil {
		return err
	}
	if p.Quantity, err = a.console.PromptPositiveInt("Quantity"); err != nil {
		return err
	}
	if p.Description, err = a.console.PromptName("Description"); err != nil {
		return err
	}

	a.console.RenderProduct(p)
	save, err := a.console.PromptYesNo("Save product to the catalog?")
	if err != nil {
		return err
	}
	if !save {
		a.console.Say("Saving to system was cancelled")
		return nil
	}

	catalog, err := a.catalog.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	if err := a.catalog.AddProduct(ctx, catalog, p); err != nil {
		return err
	}
	a.console.Say("Saved.")
	return nil
}

func (a *App) deleteProduct(ctx context.Context) error {
	catalog, product, err := a.pickProduct(ctx)
	if err != nil || product == nil {
		return err
	}

	a.console.RenderProduct(product)
	confirm, err := a.console.PromptYesNo("Are you sure you want to delete this product?")
	if err != nil {
		return err
	}
	if !confirm {
		a.console.Say("Product deletion cancelled")
		return nil
	}

	if err := a.catalog.RemoveProduct(ctx, catalog, product.ID); err != nil {
		return err
	}
	a.console.Say("Product deleted.")
	return nil
}

func (a *App) editProduct(ctx context.Context) error {
	catalog, product, err := a.pickProduct(ctx)
	if err != nil || product == nil {
		return err
	}

	updated := *product
	choice, err := a.console.PromptMenu("Which field do you want to edit?", []string{
		"Name", "Brand", "Description", "Price", "Member price", "Quantity", "Category", "Subcategory", "Cancel",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		updated.Name, err = a.console.PromptName("New name")
	case 1:
		updated.Brand, err = a.console.PromptName("New brand")
	case 2:
		updated.Description, err = a.console.PromptName("New description")
	case 3:
		updated.Price, err = a.console.PromptPrice("New price")
	case 4:
		updated.MemberPrice, err = a.console.PromptPrice("New member price")
	case 5:
		updated.Quantity, err = a.console.PromptPositiveInt("New quantity")
	case 6:
		updated.Category, err = a.console.PromptWord("New category")
	case 7:
		updated.SubCategory, err = a.console.PromptWord("New subcategory")
	case 8:
		return nil
	}
	if err != nil {
		return err
	}

	if err := a.catalog.ReplaceProduct(ctx, catalog, &updated); err != nil {
		return err
	}
	a.console.Say("Product updated.")
	return nil
}

// pickProduct renders the catalog and resolves the chosen display row to a
// product. Returns a nil product when the catalog is empty.
func (a *App) pickProduct(ctx context.Context) (*entity.Catalog, *entity.Product, error) {
	catalog, err := a.catalog.LoadCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	if catalog.Size() == 0 {
		a.console.Say("The catalog is empty")
		return catalog, nil, nil
	}

	view := catalog.SortedByStockDescending()
	a.console.RenderCatalog(view)
	row, err := a.console.PromptRow(len(view))
	if err != nil {
		return nil, nil, err
	}
	return catalog, view[row-1], nil
}

func (a *App) logo() {
	a.console.Say("")
	a.console.Say("*************************************")
	a.console.Say("            STOREFRONT")
	a.console.Say("*************************************")
}

// quietInterrupt treats ^C at a prompt as a normal exit.
func quietInterrupt(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}
	return err
}
