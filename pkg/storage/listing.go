package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"lugo/pkg/domain"
)

// ListingUpdates carries the three listing amounts applied by an update.
type ListingUpdates struct {
	Price       decimal.Decimal
	CondoFee    decimal.Decimal
	PropertyTax decimal.Decimal
}

// ListingGraph is a listing expanded with the listing → property → owner →
// company chain needed for authorization.
type ListingGraph struct {
	Listing domain.Listing
	// OwnerKey is the person owning the listed property.
	OwnerKey string
	// OwnerCompanyKey is the owner's affiliated company, empty when the owner
	// is unaffiliated.
	OwnerCompanyKey string
}

// ListingStorage defines persistence operations for listings.
type ListingStorage interface {
	// StoreListing inserts a listing, resolving its property from
	// listing.PropertyKey. Returns the stored row.
	StoreListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error)
	// ListingByKey fetches a listing by business key together with its
	// ownership chain. Returns nil when absent.
	ListingByKey(ctx context.Context, key string) (*ListingGraph, error)
	// ListingByPropertyKey fetches the listing of a property together with its
	// ownership chain. Returns nil when the property has none.
	ListingByPropertyKey(ctx context.Context, propertyKey string) (*ListingGraph, error)
	// UpdateListingByKey applies updates to the listing identified by key and
	// returns the updated row. Returns nil when absent.
	UpdateListingByKey(ctx context.Context, key string, updates ListingUpdates) (*domain.Listing, error)
}
