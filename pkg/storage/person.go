package storage

import (
	"context"

	"lugo/pkg/domain"
)

// PersonUpdates carries the mutable person fields applied by an update.
// Affiliation and role change only through AffiliatePerson.
type PersonUpdates struct {
	GivenName  string
	FamilyName string
	CPF        domain.CPF
}

// PersonStorage defines persistence operations for persons.
type PersonStorage interface {
	// StorePerson inserts a person, resolving its affiliation from
	// person.CompanyKey. Returns the stored row.
	StorePerson(ctx context.Context, person domain.Person) (*domain.Person, error)
	// PersonByKey fetches a person by business key, expanded with its company
	// affiliation. Returns nil when absent.
	PersonByKey(ctx context.Context, key string) (*domain.Person, error)
	// PersonCPFInUse is the scoped-uniqueness predicate: it reports whether the
	// given CPF is already used inside the affiliation group identified by
	// companyKey. An empty companyKey means the group of unaffiliated persons.
	// Creation and alteration paths both go through this single predicate.
	PersonCPFInUse(ctx context.Context, cpf domain.CPF, companyKey string) (bool, error)
	// UpdatePersonByKey applies updates to the person identified by key and
	// returns the updated row. Returns nil when absent.
	UpdatePersonByKey(ctx context.Context, key string, updates PersonUpdates) (*domain.Person, error)
	// AffiliatePerson binds a person to a company with the given role.
	AffiliatePerson(ctx context.Context, personKey, companyKey string, role domain.Role) error
}
