package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"storefront/internal/entity"
)

var (
	// ErrUnknownUser is returned when no credential record matches the email.
	ErrUnknownUser = errors.New("unknown user")
	// ErrBadPassword is returned when the password does not match.
	ErrBadPassword = errors.New("wrong password")
	// ErrTooManyAttempts is returned when login attempts arrive faster than
	// the limiter allows.
	ErrTooManyAttempts = errors.New("too many login attempts")
)

const (
	loginBurst    = 5
	loginInterval = 3 * time.Second
)

// Login is the outcome of a successful authentication. Customer is nil for
// admin logins.
type Login struct {
	User     entity.User
	Role     entity.Role
	Customer *entity.Customer
}

// AuthService authenticates operators against the credential file. Passwords
// are compared in plaintext; hardening them is out of scope.
type AuthService struct {
	users     UserStore
	customers CustomerStore
	limiter   *rate.Limiter
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users UserStore, customers CustomerStore) *AuthService {
	return &AuthService{
		users:     users,
		customers: customers,
		limiter:   rate.NewLimiter(rate.Every(loginInterval), loginBurst),
	}
}

// Authenticate checks the credentials and, for customer logins, loads the
// customer profile. Attempts beyond the limiter's burst are rejected with
// ErrTooManyAttempts before any credential check runs.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*Login, error) {
	if !s.limiter.Allow() {
		logger.Warn().Str("email", email).Msg("Login throttled")
		return nil, ErrTooManyAttempts
	}

	users, err := s.users.LoadAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error loading users")
		return nil, err
	}

	var match *entity.User
	for i := range users {
		if users[i].Email == email {
			match = &users[i]
			break
		}
	}
	if match == nil {
		return nil, ErrUnknownUser
	}
	if match.Password != password {
		logger.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, ErrBadPassword
	}

	login := &Login{User: *match, Role: match.Role()}
	if login.Role == entity.RoleCustomer {
		customer, err := s.customers.LoadByEmail(ctx, email)
		if err != nil {
			logger.Error().Err(err).Msgf("Error loading customer %s", email)
			return nil, err
		}
		login.Customer = customer
	}

	logger.Info().Str("email", email).Str("role", string(login.Role)).Msg("Logged in")
	return login, nil
}
