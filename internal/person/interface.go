package person

import (
	"context"

	"lugo/pkg/domain"
	"lugo/pkg/storage"
)

//go:generate mockgen -package mockperson -source=interface.go -destination=mock/mockperson.go *

// Service manages persons: individuals that may later affiliate with a
// company, own properties and hold an account.
type Service interface {
	// Create registers a person. companyKey and role come as a pair: both set
	// for an affiliated person, both empty otherwise. The CPF must be unused
	// inside the target affiliation group.
	Create(ctx context.Context,
		givenName, familyName, cpf, companyKey string,
		role domain.Role) (*domain.Person, error)
	// CreateTx is Create running inside an ambient unit of work, for callers
	// that compose person creation with other writes.
	CreateTx(ctx context.Context,
		tx storage.AllStorage,
		givenName, familyName, cpf, companyKey string,
		role domain.Role) (*domain.Person, error)
	// Alter replaces the person's names and CPF. A CPF change re-checks
	// uniqueness inside the person's current affiliation group.
	Alter(ctx context.Context, personKey, givenName, familyName, cpf string) (*domain.Person, error)
	// AlterTx is Alter running inside an ambient unit of work.
	AlterTx(ctx context.Context,
		tx storage.AllStorage,
		personKey, givenName, familyName, cpf string) (*domain.Person, error)
}
