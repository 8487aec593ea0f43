package account

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

// CreateTx validates and stores an account inside the given unit of work.
func (s service) CreateTx(ctx context.Context,
	tx storage.AllStorage,
	personKey, email, secret, confirmation string) (*domain.Account, error) {
	holder, err := tx.PersonByKey(ctx, personKey)
	if err != nil {
		return nil, fmt.Errorf("could not get person: %w", err)
	}
	if holder == nil {
		return nil, serrors.With(serrors.ErrNotFound, "person not found")
	}

	existing, err := tx.AccountByPersonKey(ctx, personKey)
	if err != nil {
		return nil, fmt.Errorf("could not check person account: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "person already has an account")
	}

	taken, err := tx.AccountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not check email uniqueness: %w", err)
	}
	if taken != nil {
		return nil, serrors.With(serrors.ErrConflict, "email already in use")
	}

	account, err := domain.NewAccount(uuid.NewString(), personKey, email, secret, confirmation)
	if err != nil {
		return nil, err
	}

	stored, err := tx.StoreAccount(ctx, *account)
	if err != nil {
		return nil, fmt.Errorf("could not store account: %w", err)
	}

	return stored, nil
}

// Create runs CreateTx inside its own transaction.
func (s service) Create(ctx context.Context,
	personKey, email, secret, confirmation string) (*domain.Account, error) {
	var account *domain.Account
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := s.CreateTx(ctx, tx, personKey, email, secret, confirmation)
		if err != nil {
			return err
		}
		account = res

		return nil
	}); err != nil {
		return nil, err
	}

	return account, nil
}

// SignUp composes person and account creation in a single transaction.
func (s service) SignUp(ctx context.Context,
	givenName, familyName, cpf, email, secret, confirmation string) (*domain.Account, error) {
	var account *domain.Account
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		holder, err := s.persons.CreateTx(ctx, tx, givenName, familyName, cpf, "", "")
		if err != nil {
			return err
		}

		account, err = s.CreateTx(ctx, tx, holder.Key, email, secret, confirmation)
		if err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return account, nil
}

func (s service) ChangePassword(ctx context.Context,
	email, secret, confirmation string) (*domain.Account, error) {
	var updated *domain.Account
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		account, err := tx.AccountByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("could not get account: %w", err)
		}
		if account == nil {
			return serrors.With(serrors.ErrNotFound, "account not found")
		}

		if err := account.SetPassword(secret, confirmation); err != nil {
			return err
		}

		updated, err = tx.UpdateAccountPasswordByEmail(ctx, email, account.PasswordHash)
		if err != nil {
			return fmt.Errorf("could not update password: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "account not found")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// Authenticate never distinguishes a missing account from a wrong secret.
func (s service) Authenticate(ctx context.Context, email, secret string) (*domain.Account, error) {
	account, err := s.storage.AccountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get account: %w", err)
	}
	if account == nil || !account.VerifyPassword(secret) {
		return nil, serrors.With(serrors.ErrUnauthenticated, "invalid credentials")
	}

	return account, nil
}

func (s service) AffiliatedCompany(ctx context.Context, personKey string) (*domain.Company, error) {
	holder, err := s.storage.PersonByKey(ctx, personKey)
	if err != nil {
		return nil, fmt.Errorf("could not get person: %w", err)
	}
	if holder == nil {
		return nil, serrors.With(serrors.ErrNotFound, "person not found")
	}
	if !holder.Affiliated() {
		return nil, nil
	}

	company, err := s.storage.CompanyByKey(ctx, holder.CompanyKey)
	if err != nil {
		return nil, fmt.Errorf("could not get company: %w", err)
	}

	return company, nil
}

// New creates an account Service backed by the provided storage and person
// service.
func New(storage storage.Storage, persons person.Service) Service {
	return &service{storage: storage, persons: persons}
}
