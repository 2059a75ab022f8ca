package repository

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"storefront/internal/entity"
)

// UserRepository reads login credentials, one email,password pair per line.
type UserRepository struct {
	path string
}

// NewUserRepository creates a user repository backed by the given file.
func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

// LoadAll reads every credential record in file order.
func (r *UserRepository) LoadAll(ctx context.Context) ([]entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening user file: %w", err)
	}
	defer f.Close()

	var users []entity.User
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, ",", 2)
		if len(fields) != 2 {
			continue
		}
		users = append(users, entity.User{
			Email:    strings.TrimSpace(fields[0]),
			Password: strings.TrimSpace(fields[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading user file: %w", err)
	}

	return users, nil
}

// Append adds one credential record to the end of the file, creating it if
// needed.
func (r *UserRepository) Append(ctx context.Context, u entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening user file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s,%s\n", u.Email, u.Password); err != nil {
		return fmt.Errorf("appending user record: %w", err)
	}
	return nil
}
