package storage

import (
	"context"

	"lugo/pkg/domain"
)

// Actor is the projection used to authorize operations: the person behind a
// resolved account together with its tenant relationship.
type Actor struct {
	// PersonKey is the person bound to the account.
	PersonKey string
	// CompanyKey is the person's affiliated company, empty when unaffiliated.
	CompanyKey string
	// Role is the person's role in the company, empty when unaffiliated.
	Role domain.Role
}

// Employee reports whether the actor is an employee of the given company.
func (a *Actor) Employee(companyKey string) bool {
	return a.Role == domain.RoleEmployee && a.CompanyKey == companyKey && companyKey != ""
}

// AccountStorage defines persistence operations for accounts.
type AccountStorage interface {
	// StoreAccount inserts an account, resolving its person from
	// account.PersonKey. Returns the stored row.
	StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// AccountByEmail fetches an account by email. Returns nil when absent.
	AccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	// AccountByPersonKey fetches the account bound to a person. Returns nil
	// when the person has none.
	AccountByPersonKey(ctx context.Context, personKey string) (*domain.Account, error)
	// UpdateAccountPasswordByEmail replaces the stored password hash and
	// returns the updated row. Returns nil when absent.
	UpdateAccountPasswordByEmail(ctx context.Context, email, passwordHash string) (*domain.Account, error)
	// ActorByAccountKey walks account → person → company and returns the
	// authorization projection. Returns nil when the account does not exist.
	ActorByAccountKey(ctx context.Context, accountKey string) (*Actor, error)
}
