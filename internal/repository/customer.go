package repository

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/entity"
)

// CustomerRepository persists customer profiles as one comma-separated
// record per line.
type CustomerRepository struct {
	path string
}

// NewCustomerRepository creates a customer repository backed by the given file.
func NewCustomerRepository(path string) *CustomerRepository {
	return &CustomerRepository{path: path}
}

// LoadAll reads every customer record in file order.
func (r *CustomerRepository) LoadAll(ctx context.Context) ([]*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening customer file: %w", err)
	}
	defer f.Close()

	var customers []*entity.Customer
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		customer, err := parseCustomer(line)
		if err != nil {
			return nil, fmt.Errorf("parsing customer record: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading customer file: %w", err)
	}

	return customers, nil
}

// LoadByEmail returns the customer with the given email, or ErrNotFound.
func (r *CustomerRepository) LoadByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	customers, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, fmt.Errorf("customer %s: %w", email, ErrNotFound)
}

// SaveFunds rewrites the customer file with the matching record's funds
// replaced. Every other record round-trips unchanged.
func (r *CustomerRepository) SaveFunds(ctx context.Context, email string, funds decimal.Decimal) error {
	customers, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	found := false
	var b strings.Builder
	for _, c := range customers {
		if c.Email == email {
			c.Funds = funds
			found = true
		}
		b.WriteString(formatCustomer(c))
		b.WriteByte('\n')
	}
	if !found {
		return fmt.Errorf("customer %s: %w", email, ErrNotFound)
	}

	return writeAtomic(r.path, []byte(b.String()))
}

// Append adds one customer record to the end of the file, creating it if
// needed. Used by first-run seeding.
func (r *CustomerRepository) Append(ctx context.Context, c *entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening customer file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, formatCustomer(c)); err != nil {
		return fmt.Errorf("appending customer record: %w", err)
	}
	return nil
}
