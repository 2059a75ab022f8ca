package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Role classifies a logged-in user.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleUnknown  Role = "unknown"
)

// User is one credential record. Passwords are stored and compared in
// plaintext; hardening them is out of scope for this system.
type User struct {
	Email    string
	Password string
}

// Role derives the user's role from the email domain.
func (u User) Role() Role {
	switch {
	case strings.Contains(u.Email, "@student."):
		return RoleCustomer
	case strings.Contains(u.Email, "@merchant."):
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// Customer is the profile record behind a customer login. Funds are mutated
// only by a completed checkout.
type Customer struct {
	Email            string
	Password         string
	FirstName        string
	LastName         string
	DateOfBirth      string
	Address          string
	Mobile           string
	Funds            decimal.Decimal
	MembershipStatus bool
}

/*
Customer file record (one line per customer):

	email,password,firstName,lastName,dob,address,mobile,funds,membershipStatus
*/
