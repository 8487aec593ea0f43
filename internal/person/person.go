package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lugo/pkg/domain"
	"lugo/pkg/serrors"
	"lugo/pkg/storage"
)

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
}

// CreateTx validates and stores a person inside the given unit of work. An
// affiliated person requires an existing company, and the CPF must be free
// inside the target affiliation group (the company's persons, or all
// unaffiliated persons when companyKey is empty).
func (s service) CreateTx(ctx context.Context,
	tx storage.AllStorage,
	givenName, familyName, cpf, companyKey string,
	role domain.Role) (*domain.Person, error) {
	person, err := domain.NewPerson(uuid.NewString(), givenName, familyName, cpf, companyKey, role)
	if err != nil {
		return nil, err
	}

	if person.Affiliated() {
		company, err := tx.CompanyByKey(ctx, companyKey)
		if err != nil {
			return nil, fmt.Errorf("could not get company: %w", err)
		}
		if company == nil {
			return nil, serrors.With(serrors.ErrNotFound, "company not found")
		}
	}

	inUse, err := tx.PersonCPFInUse(ctx, person.CPF, companyKey)
	if err != nil {
		return nil, fmt.Errorf("could not check cpf uniqueness: %w", err)
	}
	if inUse {
		return nil, serrors.With(serrors.ErrConflict, "cpf already registered")
	}

	stored, err := tx.StorePerson(ctx, *person)
	if err != nil {
		return nil, fmt.Errorf("could not store person: %w", err)
	}

	return stored, nil
}

// Create runs CreateTx inside its own transaction.
func (s service) Create(ctx context.Context,
	givenName, familyName, cpf, companyKey string,
	role domain.Role) (*domain.Person, error) {
	var person *domain.Person
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := s.CreateTx(ctx, tx, givenName, familyName, cpf, companyKey, role)
		if err != nil {
			return err
		}
		person = res

		return nil
	}); err != nil {
		return nil, err
	}

	return person, nil
}

// AlterTx re-validates and replaces the person's names and CPF inside the
// given unit of work. Affiliation and role never change here.
func (s service) AlterTx(ctx context.Context,
	tx storage.AllStorage,
	personKey, givenName, familyName, cpf string) (*domain.Person, error) {
	current, err := tx.PersonByKey(ctx, personKey)
	if err != nil {
		return nil, fmt.Errorf("could not get person: %w", err)
	}
	if current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "person not found")
	}

	previousCPF := current.CPF
	if err := current.Alter(givenName, familyName, cpf); err != nil {
		return nil, err
	}

	// a CPF change must stay unique inside the existing affiliation group
	if current.CPF != previousCPF {
		inUse, err := tx.PersonCPFInUse(ctx, current.CPF, current.CompanyKey)
		if err != nil {
			return nil, fmt.Errorf("could not check cpf uniqueness: %w", err)
		}
		if inUse {
			return nil, serrors.With(serrors.ErrConflict, "cpf already registered")
		}
	}

	updated, err := tx.UpdatePersonByKey(ctx, personKey, storage.PersonUpdates{
		GivenName:  current.GivenName,
		FamilyName: current.FamilyName,
		CPF:        current.CPF,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update person: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "person not found")
	}

	return updated, nil
}

// Alter runs AlterTx inside its own transaction.
func (s service) Alter(ctx context.Context, personKey, givenName, familyName, cpf string) (*domain.Person, error) {
	var person *domain.Person
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := s.AlterTx(ctx, tx, personKey, givenName, familyName, cpf)
		if err != nil {
			return err
		}
		person = res

		return nil
	}); err != nil {
		return nil, err
	}

	return person, nil
}

// New creates a person Service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}
