package company

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lugo/internal/person"
	"lugo/pkg/domain"
	"lugo/pkg/serrors"
	"lugo/pkg/storage"
)

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
	persons person.Service
}

func requester(ctx context.Context, tx storage.AllStorage, accountKey string) (*storage.Actor, error) {
	actor, err := tx.ActorByAccountKey(ctx, accountKey)
	if err != nil {
		return nil, fmt.Errorf("could not resolve requester: %w", err)
	}
	if actor == nil {
		return nil, serrors.With(serrors.ErrUnauthenticated, "requester account not found")
	}

	return actor, nil
}

// Create stores the company and binds the requester to it as employee in one
// transaction, so a failed affiliation leaves no orphan company behind.
func (s service) Create(ctx context.Context, accountKey, tradeName, legalName, cnpj string) (*domain.Company, error) {
	company, err := domain.NewCompany(uuid.NewString(), tradeName, legalName, cnpj)
	if err != nil {
		return nil, err
	}

	var stored *domain.Company
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		actor, err := requester(ctx, tx, accountKey)
		if err != nil {
			return err
		}
		if actor.CompanyKey != "" {
			return serrors.With(serrors.ErrConflict, "requester is already affiliated with a company")
		}

		inUse, err := tx.CompanyCNPJInUse(ctx, company.CNPJ)
		if err != nil {
			return fmt.Errorf("could not check cnpj uniqueness: %w", err)
		}
		if inUse {
			return serrors.With(serrors.ErrConflict, "cnpj already registered")
		}

		stored, err = tx.StoreCompany(ctx, *company)
		if err != nil {
			return fmt.Errorf("could not store company: %w", err)
		}

		if err := tx.AffiliatePerson(ctx, actor.PersonKey, stored.Key, domain.RoleEmployee); err != nil {
			return fmt.Errorf("could not affiliate founder: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return stored, nil
}

func (s service) Alter(ctx context.Context,
	accountKey, companyKey, tradeName, legalName, cnpj string) (*domain.Company, error) {
	var updated *domain.Company
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		actor, err := requester(ctx, tx, accountKey)
		if err != nil {
			return err
		}
		if !actor.Employee(companyKey) {
			return serrors.With(serrors.ErrForbidden, "requester is not an employee of the company")
		}

		company, err := tx.CompanyByKey(ctx, companyKey)
		if err != nil {
			return fmt.Errorf("could not get company: %w", err)
		}
		if company == nil {
			return serrors.With(serrors.ErrNotFound, "company not found")
		}

		if err := company.Alter(tradeName, legalName, cnpj); err != nil {
			return err
		}

		updated, err = tx.UpdateCompanyByKey(ctx, companyKey, storage.CompanyUpdates{
			TradeName: company.TradeName,
			LegalName: company.LegalName,
			CNPJ:      company.CNPJ,
		})
		if err != nil {
			return fmt.Errorf("could not update company: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "company not found")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s service) Clients(ctx context.Context, accountKey, companyKey string) ([]domain.Person, error) {
	actor, err := requester(ctx, s.storage, accountKey)
	if err != nil {
		return nil, err
	}
	if !actor.Employee(companyKey) {
		return nil, serrors.With(serrors.ErrForbidden, "requester is not an employee of the company")
	}

	clients, err := s.storage.CompanyClients(ctx, companyKey)
	if err != nil {
		return nil, fmt.Errorf("could not list clients: %w", err)
	}

	return clients, nil
}

// RegisterClient delegates person creation to the person service inside the
// company's transaction, binding the new person to the requester's company
// under the client role.
func (s service) RegisterClient(ctx context.Context,
	accountKey, givenName, familyName, cpf string) (*domain.Person, error) {
	var client *domain.Person
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		actor, err := requester(ctx, tx, accountKey)
		if err != nil {
			return err
		}
		if actor.Role != domain.RoleEmployee || actor.CompanyKey == "" {
			return serrors.With(serrors.ErrForbidden, "only employees can register clients")
		}

		client, err = s.persons.CreateTx(ctx, tx, givenName, familyName, cpf, actor.CompanyKey, domain.RoleClient)
		if err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return client, nil
}

func (s service) AlterClient(ctx context.Context,
	accountKey, personKey, givenName, familyName, cpf string) (*domain.Person, error) {
	var updated *domain.Person
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		actor, err := requester(ctx, tx, accountKey)
		if err != nil {
			return err
		}

		target, err := tx.PersonByKey(ctx, personKey)
		if err != nil {
			return fmt.Errorf("could not get client: %w", err)
		}
		if target == nil {
			return serrors.With(serrors.ErrNotFound, "client not found")
		}
		if target.Role != domain.RoleClient || !actor.Employee(target.CompanyKey) {
			return serrors.With(serrors.ErrForbidden, "requester is not an employee of the client's company")
		}

		updated, err = s.persons.AlterTx(ctx, tx, personKey, givenName, familyName, cpf)
		if err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// New creates a company Service backed by the provided storage and person
// service.
func New(storage storage.Storage, persons person.Service) Service {
	return &service{storage: storage, persons: persons}
}
