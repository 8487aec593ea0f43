package storage

import (
	"context"

	"lugo/pkg/domain"
)

// PropertyUpdates carries the mutable property fields applied by an update.
// A nil SquareMeters clears the stored area.
type PropertyUpdates struct {
	Address      string
	SquareMeters *int
}

// PropertyGraph is a property expanded with the ownership chain needed for
// authorization: property → owner → owner's company, plus the key of an
// existing listing. Only keys are carried; authorization is a function of
// business keys, not full aggregates.
type PropertyGraph struct {
	Property domain.Property
	// OwnerCompanyKey is the owner's affiliated company, empty when the owner
	// is unaffiliated.
	OwnerCompanyKey string
	// ListingKey is the property's listing, empty when the property is not
	// listed.
	ListingKey string
}

// PropertyStorage defines persistence operations for properties.
type PropertyStorage interface {
	// StoreProperty inserts a property, resolving its owner from
	// property.OwnerKey. Returns the stored row.
	StoreProperty(ctx context.Context, property domain.Property) (*domain.Property, error)
	// PropertyByKey fetches a property by business key together with its
	// ownership chain. Returns nil when absent.
	PropertyByKey(ctx context.Context, key string) (*PropertyGraph, error)
	// UpdatePropertyByKey applies updates to the property identified by key and
	// returns the updated row. Returns nil when absent.
	UpdatePropertyByKey(ctx context.Context, key string, updates PropertyUpdates) (*domain.Property, error)
	// PropertiesByOwner returns all properties owned by the given person.
	PropertiesByOwner(ctx context.Context, ownerKey string) ([]domain.Property, error)
}
