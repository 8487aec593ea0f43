package property

import (
	"context"

	"lugo/pkg/domain"
)

//go:generate mockgen -package mockproperty -source=interface.go -destination=mock/mockproperty.go *

// Service manages properties. A property may be managed by its owner and by
// employees of the owner's company; read paths never reveal whether a
// property outside that circle exists.
type Service interface {
	// Register stores a property. An empty ownerKey (or the requester's own
	// person key) makes the requester the owner; registering for someone else
	// requires the requester to be an employee of the owner's company.
	Register(ctx context.Context,
		accountKey, address string,
		squareMeters *int,
		ownerKey string) (*domain.Property, error)
	// Alter replaces the property's address and area. Allowed for the owner
	// and for employees of the owner's company.
	Alter(ctx context.Context,
		accountKey, propertyKey, address string,
		squareMeters *int) (*domain.Property, error)
	// Owner returns the person owning the property. Requesters outside the
	// management circle get a not-found result, never a forbidden one.
	Owner(ctx context.Context, accountKey, propertyKey string) (*domain.Person, error)
	// OfOwner lists the properties of a person, under the same visibility rule
	// as Owner.
	OfOwner(ctx context.Context, accountKey, ownerKey string) ([]domain.Property, error)
}
