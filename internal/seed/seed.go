// Package seed writes first-run data files so the application is usable
// immediately after install. Existing non-empty files are never touched.
package seed

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/entity"
	"storefront/internal/repository"
)

// Ensure creates the credential, customer and catalog files with mock data
// when they are missing or empty.
func Ensure(ctx context.Context, users *repository.UserRepository, customers *repository.CustomerRepository, catalog *repository.CatalogRepository, userPath, customerPath, catalogPath string) error {
	if empty(userPath) {
		for _, u := range defaultUsers() {
			if err := users.Append(ctx, u); err != nil {
				return err
			}
		}
	}

	if empty(customerPath) {
		if err := customers.Append(ctx, defaultCustomer()); err != nil {
			return err
		}
	}

	if empty(catalogPath) {
		c := entity.NewCatalog()
		for _, p := range defaultProducts() {
			c.Add(p)
		}
		if err := catalog.Save(ctx, c); err != nil {
			return err
		}
	}

	return nil
}

func empty(path string) bool {
	info, err := os.Stat(path)
	return err != nil || info.Size() == 0
}

func defaultUsers() []entity.User {
	return []entity.User{
		{Email: "member@student.example.edu", Password: "Member1234"},
		{Email: "admin@merchant.example.edu", Password: "12345678"},
	}
}

func defaultCustomer() *entity.Customer {
	return &entity.Customer{
		Email:            "member@student.example.edu",
		Password:         "Member1234",
		FirstName:        "Member",
		LastName:         "Pearce",
		DateOfBirth:      "02/01/1999",
		Address:          "Clayton",
		Mobile:           "0435123456",
		Funds:            decimal.NewFromInt(1000),
		MembershipStatus: true,
	}
}

func defaultProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:          uuid.New(),
			Name:        "bag",
			Brand:       "nike",
			Category:    "accessories",
			SubCategory: "bags",
			Price:       decimal.RequireFromString("20.00"),
			MemberPrice: decimal.RequireFromString("18.00"),
			Quantity:    12,
			Description: "bag",
		},
		{
			ID:          uuid.New(),
			Name:        "book",
			Brand:       "cm",
			Category:    "stationery",
			SubCategory: "books",
			Price:       decimal.RequireFromString("5.00"),
			MemberPrice: decimal.RequireFromString("4.00"),
			Quantity:    12,
			Description: "ruled book",
		},
		{
			ID:          uuid.New(),
			Name:        "nutbar",
			Brand:       "coles",
			Category:    "food",
			SubCategory: "health",
			Price:       decimal.RequireFromString("3.00"),
			MemberPrice: decimal.RequireFromString("2.50"),
			Quantity:    50,
			Description: "nut bar",
		},
	}
}
