package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

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

func manages(actor *storage.Actor, ownerKey, ownerCompanyKey string) bool {
	return actor.PersonKey == ownerKey || actor.Employee(ownerCompanyKey)
}

func (s service) Create(ctx context.Context,
	accountKey, propertyKey string,
	price, condoFee, propertyTax decimal.Decimal) (*domain.Listing, error) {
	listing, err := domain.NewListing(uuid.NewString(), propertyKey, price, condoFee, propertyTax)
	if err != nil {
		return nil, err
	}

	var stored *domain.Listing
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
			return serrors.With(serrors.ErrForbidden, "requester may not list this property")
		}
		if graph.ListingKey != "" {
			return serrors.With(serrors.ErrConflict, "property is already listed")
		}

		stored, err = tx.StoreListing(ctx, *listing)
		if err != nil {
			return fmt.Errorf("could not store listing: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return stored, nil
}

func (s service) Alter(ctx context.Context,
	accountKey, listingKey string,
	price, condoFee, propertyTax decimal.Decimal) (*domain.Listing, error) {
	var updated *domain.Listing
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		actor, err := requester(ctx, tx, accountKey)
		if err != nil {
			return err
		}

		graph, err := tx.ListingByKey(ctx, listingKey)
		if err != nil {
			return fmt.Errorf("could not get listing: %w", err)
		}
		if graph == nil {
			return serrors.With(serrors.ErrNotFound, "listing not found")
		}
		if !manages(actor, graph.OwnerKey, graph.OwnerCompanyKey) {
			return serrors.With(serrors.ErrForbidden, "requester may not alter this listing")
		}

		if err := graph.Listing.AlterAmounts(price, condoFee, propertyTax); err != nil {
			return err
		}

		updated, err = tx.UpdateListingByKey(ctx, listingKey, storage.ListingUpdates{
			Price:       graph.Listing.Price,
			CondoFee:    graph.Listing.CondoFee,
			PropertyTax: graph.Listing.PropertyTax,
		})
		if err != nil {
			return fmt.Errorf("could not update listing: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "listing not found")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s service) ForProperty(ctx context.Context, propertyKey string) (*domain.Listing, error) {
	graph, err := s.storage.ListingByPropertyKey(ctx, propertyKey)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	if graph != nil {
		return &graph.Listing, nil
	}

	property, err := s.storage.PropertyByKey(ctx, propertyKey)
	if err != nil {
		return nil, fmt.Errorf("could not get property: %w", err)
	}
	if property == nil {
		return nil, serrors.With(serrors.ErrNotFound, "property not found")
	}

	return nil, nil
}

// New creates a listing Service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}
