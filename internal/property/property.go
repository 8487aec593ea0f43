package property

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

// manages reports whether the actor may operate on a property owned by
// ownerKey: the owner itself, or an employee of the owner's company.
func manages(actor *storage.Actor, ownerKey, ownerCompanyKey string) bool {
	return actor.PersonKey == ownerKey || actor.Employee(ownerCompanyKey)
}

func (s service) Register(ctx context.Context,
	accountKey, address string,
	squareMeters *int,
	ownerKey string) (*domain.Property, error) {
	var stored *domain.Property
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		actor, err := requester(ctx, tx, accountKey)
		if err != nil {
			return err
		}

		if ownerKey == "" || ownerKey == actor.PersonKey {
			ownerKey = actor.PersonKey
		} else {
			owner, err := tx.PersonByKey(ctx, ownerKey)
			if err != nil {
				return fmt.Errorf("could not get owner: %w", err)
			}
			if owner == nil {
				return serrors.With(serrors.ErrNotFound, "owner not found")
			}
			if !actor.Employee(owner.CompanyKey) {
				return serrors.With(serrors.ErrForbidden, "requester may not register properties for this owner")
			}
		}

		property, err := domain.NewProperty(uuid.NewString(), ownerKey, address, squareMeters)
		if err != nil {
			return err
		}

		stored, err = tx.StoreProperty(ctx, *property)
		if err != nil {
			return fmt.Errorf("could not store property: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return stored, nil
}

func (s service) Alter(ctx context.Context,
	accountKey, propertyKey, address string,
	squareMeters *int) (*domain.Property, error) {
	var updated *domain.Property
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		actor, err := requester(ctx, tx, accountKey)
		if err != nil {
			return err
		}

		graph, err := tx.PropertyByKey(ctx, propertyKey)
		if err != nil {
			return fmt.Errorf("could not get property: %w", err)
		}
		if graph == nil {
			return serrors.With(serrors.ErrNotFound, "property not found")
		}
		if !manages(actor, graph.Property.OwnerKey, graph.OwnerCompanyKey) {
			return serrors.With(serrors.ErrForbidden, "requester may not alter this property")
		}

		if err := graph.Property.UpdateRegistration(address, squareMeters); err != nil {
			return err
		}

		updated, err = tx.UpdatePropertyByKey(ctx, propertyKey, storage.PropertyUpdates{
			Address:      graph.Property.Address,
			SquareMeters: graph.Property.SquareMeters,
		})
		if err != nil {
			return fmt.Errorf("could not update property: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "property not found")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// Owner answers with not-found for properties outside the requester's
// management circle, so existence never leaks across tenants.
func (s service) Owner(ctx context.Context, accountKey, propertyKey string) (*domain.Person, error) {
	actor, err := requester(ctx, s.storage, accountKey)
	if err != nil {
		return nil, err
	}

	graph, err := s.storage.PropertyByKey(ctx, propertyKey)
	if err != nil {
		return nil, fmt.Errorf("could not get property: %w", err)
	}
	if graph == nil || !manages(actor, graph.Property.OwnerKey, graph.OwnerCompanyKey) {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}

	owner, err := s.storage.PersonByKey(ctx, graph.Property.OwnerKey)
	if err != nil {
		return nil, fmt.Errorf("could not get owner: %w", err)
	}
	if owner == nil {
		return nil, serrors.With(serrors.ErrNotFound, "owner not found")
	}

	return owner, nil
}

// OfOwner applies the same visibility rule as Owner.
func (s service) OfOwner(ctx context.Context, accountKey, ownerKey string) ([]domain.Property, error) {
	actor, err := requester(ctx, s.storage, accountKey)
	if err != nil {
		return nil, err
	}

	owner, err := s.storage.PersonByKey(ctx, ownerKey)
	if err != nil {
		return nil, fmt.Errorf("could not get owner: %w", err)
	}
	if owner == nil || !manages(actor, owner.Key, owner.CompanyKey) {
		return nil, serrors.With(serrors.ErrNotFound, "owner not found")
	}

	properties, err := s.storage.PropertiesByOwner(ctx, ownerKey)
	if err != nil {
		return nil, fmt.Errorf("could not list properties: %w", err)
	}

	return properties, nil
}

// New creates a property Service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}
