package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/entity"
)

const (
	productFieldCount  = 8
	customerFieldCount = 9
)

// parseProduct decodes one inventory line. A fresh surrogate ID is assigned;
// identity is stable for the lifetime of the loaded catalog only.
func parseProduct(line string) (*entity.Product, error) {
	fields := strings.Split(line, ",")
	if len(fields) != productFieldCount {
		return nil, fmt.Errorf("want %d fields, got %d", productFieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	price, err := decimal.NewFromString(fields[4])
	if err != nil {
		return nil, fmt.Errorf("bad price %q: %w", fields[4], err)
	}
	memberPrice, err := decimal.NewFromString(fields[5])
	if err != nil {
		return nil, fmt.Errorf("bad member price %q: %w", fields[5], err)
	}
	quantity, err := strconv.Atoi(fields[6])
	if err != nil {
		return nil, fmt.Errorf("bad quantity %q: %w", fields[6], err)
	}

	return &entity.Product{
		ID:          uuid.New(),
		Name:        fields[0],
		Brand:       fields[1],
		Category:    fields[2],
		SubCategory: fields[3],
		Price:       price,
		MemberPrice: memberPrice,
		Quantity:    quantity,
		Description: fields[7],
	}, nil
}

// formatProduct encodes one inventory line. Prices carry two decimals.
func formatProduct(p *entity.Product) string {
	return strings.Join([]string{
		p.Name,
		p.Brand,
		p.Category,
		p.SubCategory,
		p.Price.StringFixed(2),
		p.MemberPrice.StringFixed(2),
		strconv.Itoa(p.Quantity),
		p.Description,
	}, ",")
}

func parseCustomer(line string) (*entity.Customer, error) {
	fields := strings.Split(line, ",")
	if len(fields) != customerFieldCount {
		return nil, fmt.Errorf("want %d fields, got %d", customerFieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	funds, err := decimal.NewFromString(fields[7])
	if err != nil {
		return nil, fmt.Errorf("bad funds %q: %w", fields[7], err)
	}
	membership, err := strconv.ParseBool(fields[8])
	if err != nil {
		return nil, fmt.Errorf("bad membership status %q: %w", fields[8], err)
	}

	return &entity.Customer{
		Email:            fields[0],
		Password:         fields[1],
		FirstName:        fields[2],
		LastName:         fields[3],
		DateOfBirth:      fields[4],
		Address:          fields[5],
		Mobile:           fields[6],
		Funds:            funds,
		MembershipStatus: membership,
	}, nil
}

func formatCustomer(c *entity.Customer) string {
	return strings.Join([]string{
		c.Email,
		c.Password,
		c.FirstName,
		c.LastName,
		c.DateOfBirth,
		c.Address,
		c.Mobile,
		c.Funds.StringFixed(2),
		strconv.FormatBool(c.MembershipStatus),
	}, ",")
}
