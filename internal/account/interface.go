package account

import (
	"context"

	"lugo/pkg/domain"
	"lugo/pkg/storage"
)

//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *

// Service manages accounts: the credential pair bound to a person. Secrets
// are bcrypt-hashed before they ever reach storage.
type Service interface {
	// Create opens an account for an existing person. A person holds at most
	// one account, and emails are globally unique.
	Create(ctx context.Context, personKey, email, secret, confirmation string) (*domain.Account, error)
	// CreateTx is Create running inside an ambient unit of work.
	CreateTx(ctx context.Context,
		tx storage.AllStorage,
		personKey, email, secret, confirmation string) (*domain.Account, error)
	// SignUp registers an unaffiliated person together with its account in one
	// transaction. A failure on either side leaves nothing behind.
	SignUp(ctx context.Context,
		givenName, familyName, cpf, email, secret, confirmation string) (*domain.Account, error)
	// ChangePassword replaces the stored credential. A confirmation mismatch
	// is a validation failure and leaves the stored credential untouched.
	ChangePassword(ctx context.Context, email, secret, confirmation string) (*domain.Account, error)
	// Authenticate checks the credential pair and returns the account. Any
	// failure is reported as unauthenticated without detail.
	Authenticate(ctx context.Context, email, secret string) (*domain.Account, error)
	// AffiliatedCompany returns the company of the person behind the account
	// holder, or nil when the person is unaffiliated.
	AffiliatedCompany(ctx context.Context, personKey string) (*domain.Company, error)
}
