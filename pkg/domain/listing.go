package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"lugo/pkg/serrors"
)

// Listing is the published offer for a property. A property has at most one
// listing. All amounts are exact decimals; floats would accumulate rounding
// error in money fields.
type Listing struct {
	// Key is the opaque business key callers use to reference the listing.
	Key string `json:"key"`
	// PropertyKey references the listed property.
	PropertyKey string `json:"propertyKey"`

	Price decimal.Decimal `json:"price"`
	// CondoFee is the monthly condominium fee.
	CondoFee decimal.Decimal `json:"condoFee"`
	// PropertyTax is the yearly property tax (IPTU).
	PropertyTax decimal.Decimal `json:"propertyTax"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func validateListingAmounts(price, condoFee, propertyTax decimal.Decimal) error {
	if price.Sign() <= 0 {
		return serrors.With(serrors.ErrInvalid, "price must be positive")
	}
	if condoFee.Sign() <= 0 {
		return serrors.With(serrors.ErrInvalid, "condominium fee must be positive")
	}
	if propertyTax.Sign() <= 0 {
		return serrors.With(serrors.ErrInvalid, "property tax must be positive")
	}

	return nil
}

// NewListing validates all fields and returns a fully constructed listing.
func NewListing(key, propertyKey string, price, condoFee, propertyTax decimal.Decimal) (*Listing, error) {
	if key == "" {
		return nil, serrors.With(serrors.ErrInvalid, "listing key is required")
	}
	if propertyKey == "" {
		return nil, serrors.With(serrors.ErrInvalid, "property key is required")
	}
	if err := validateListingAmounts(price, condoFee, propertyTax); err != nil {
		return nil, err
	}

	return &Listing{
		Key:         key,
		PropertyKey: propertyKey,
		Price:       price,
		CondoFee:    condoFee,
		PropertyTax: propertyTax,
	}, nil
}

// AlterAmounts replaces the three amounts after re-validation. Nothing is
// applied when any amount is invalid.
func (l *Listing) AlterAmounts(price, condoFee, propertyTax decimal.Decimal) error {
	if err := validateListingAmounts(price, condoFee, propertyTax); err != nil {
		return err
	}

	l.Price = price
	l.CondoFee = condoFee
	l.PropertyTax = propertyTax

	return nil
}
