// Package cli is the presentation boundary: menus, prompts, and tabular
// rendering. It owns no business rules; malformed input is re-prompted here
// and never reaches the services.
package cli

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"storefront/internal/entity"
)

var (
	alnumSpace  = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	lettersOnly = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// Console renders to out and prompts on the terminal.
type Console struct {
	out io.Writer
}

// NewConsole creates a console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Say prints one narrative line.
func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// PromptProductSelection asks for a product number in [0, size+1], where 0
// exits and size+1 proceeds to checkout.
func (c *Console) PromptProductSelection(size int) (int, error) {
	label := fmt.Sprintf("Product number to add to cart (0 to go back, %d to checkout)", size+1)
	return c.promptInt(label, 0, size+1)
}

// PromptQuantity asks for a quantity between 1 and max.
func (c *Console) PromptQuantity(max int) (int, error) {
	label := fmt.Sprintf("Quantity (1-%d)", max)
	return c.promptInt(label, 1, max)
}

// PromptRow asks for a displayed row number between 1 and size.
func (c *Console) PromptRow(size int) (int, error) {
	return c.promptInt("Product number", 1, size)
}

// PromptYesNo asks a yes/no question.
func (c *Console) PromptYesNo(prompt string) (bool, error) {
	sel := promptui.Select{
		Label: prompt,
		Items: []string{"Yes", "No"},
	}
	i, _, err := sel.Run()
	if err != nil {
		return false, err
	}
	return i == 0, nil
}

// PromptMenu shows a menu and returns the chosen index.
func (c *Console) PromptMenu(label string, items []string) (int, error) {
	sel := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}
	i, _, err := sel.Run()
	return i, err
}

// PromptEmail asks for a login email.
func (c *Console) PromptEmail() (string, error) {
	p := promptui.Prompt{
		Label: "Email",
		Validate: func(s string) error {
			if !strings.Contains(s, "@") {
				return fmt.Errorf("not an email address")
			}
			return nil
		},
	}
	return p.Run()
}

// PromptPassword asks for a password, masked.
func (c *Console) PromptPassword() (string, error) {
	p := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
	}
	return p.Run()
}

// PromptName asks for a free-text field restricted to letters, digits and
// spaces. The restriction also keeps commas out of the data files.
func (c *Console) PromptName(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if !alnumSpace.MatchString(s) {
				return fmt.Errorf("%s must contain only letters, numbers and spaces", strings.ToLower(label))
			}
			return nil
		},
	}
	v, err := p.Run()
	return strings.TrimSpace(v), err
}

// PromptWord asks for a field restricted to letters only.
func (c *Console) PromptWord(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if !lettersOnly.MatchString(s) {
				return fmt.Errorf("%s must contain only letters", strings.ToLower(label))
			}
			return nil
		},
	}
	return p.Run()
}

// PromptPrice asks for a positive amount with at most two decimals.
func (c *Console) PromptPrice(label string) (decimal.Decimal, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			d, err := decimal.NewFromString(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("%s must be a valid number", strings.ToLower(label))
			}
			if !d.IsPositive() {
				return fmt.Errorf("%s must be positive", strings.ToLower(label))
			}
			return nil
		},
	}
	v, err := p.Run()
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(strings.TrimSpace(v))
}

// PromptPositiveInt asks for a positive whole number.
func (c *Console) PromptPositiveInt(label string) (int, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n <= 0 {
				return fmt.Errorf("%s must be a positive integer", strings.ToLower(label))
			}
			return nil
		},
	}
	v, err := p.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

func (c *Console) promptInt(label string, min, max int) (int, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < min || n > max {
				return fmt.Errorf("enter a number between %d and %d", min, max)
			}
			return nil
		},
	}
	v, err := p.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

// RenderCatalog prints the product table with display row numbers starting
// at 1.
func (c *Console) RenderCatalog(products []*entity.Product) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"No.", "Name", "Brand", "Category", "SubCategory", "Price", "Member Price", "Qty", "Description"})
	for i, p := range products {
		table.Append([]string{
			strconv.Itoa(i + 1),
			p.Name,
			p.Brand,
			p.Category,
			p.SubCategory,
			p.Price.StringFixed(2),
			p.MemberPrice.StringFixed(2),
			strconv.Itoa(p.Quantity),
			p.Description,
		})
	}
	table.Render()
}

// RenderProduct prints a single product.
func (c *Console) RenderProduct(p *entity.Product) {
	c.RenderCatalog([]*entity.Product{p})
}

// RenderCartSummary prints every cart line with its unit price and computed
// total, and the checkout price.
func (c *Console) RenderCartSummary(cart *entity.ShoppingCart, total decimal.Decimal) {
	c.Say("=== Checkout ===")
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Product", "Quantity", "Unit Price", "Total Price"})
	for _, l := range cart.Lines() {
		table.Append([]string{
			l.Name,
			strconv.Itoa(l.Quantity),
			l.UnitPrice.StringFixed(2),
			l.LineTotal().StringFixed(2),
		})
	}
	table.Render()
	c.Say("The total checkout amount is: %s", total.StringFixed(2))
}

// RenderOrderConfirmation prints the order number and remaining balance.
func (c *Console) RenderOrderConfirmation(orderNumber string, remaining decimal.Decimal) {
	c.Say("Order confirmed! Your order number is: %s", orderNumber)
	c.Say("Your remaining funds are: %s", remaining.StringFixed(2))
}
