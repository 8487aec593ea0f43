package listing

import (
	"context"

	"github.com/shopspring/decimal"

	"lugo/pkg/domain"
)

//go:generate mockgen -package mocklisting -source=interface.go -destination=mock/mocklisting.go *

// Service manages listings: the published offer of a property. A property has
// at most one listing, managed by the property's owner and by employees of the
// owner's company.
type Service interface {
	// Create publishes a listing for the property. All three amounts must be
	// strictly positive.
	Create(ctx context.Context,
		accountKey, propertyKey string,
		price, condoFee, propertyTax decimal.Decimal) (*domain.Listing, error)
	// Alter replaces the listing's amounts under the same management rule.
	Alter(ctx context.Context,
		accountKey, listingKey string,
		price, condoFee, propertyTax decimal.Decimal) (*domain.Listing, error)
	// ForProperty returns the property's listing without requiring a
	// requester; listings are public. Returns nil when the property is not
	// listed.
	ForProperty(ctx context.Context, propertyKey string) (*domain.Listing, error)
}
