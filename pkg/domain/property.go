package domain

import (
	"time"

	"lugo/pkg/serrors"
)

// Property is a real-estate unit owned by exactly one person.
type Property struct {
	// Key is the opaque business key callers use to reference the property.
	Key string `json:"key"`
	// OwnerKey references the owning person.
	OwnerKey string `json:"ownerKey"`

	Address string `json:"address"`
	// SquareMeters is the optional area; when present it must be positive.
	SquareMeters *int `json:"squareMeters,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func validatePropertyRegistration(address string, squareMeters *int) error {
	if address == "" {
		return serrors.With(serrors.ErrInvalid, "address is required")
	}
	if squareMeters != nil && *squareMeters <= 0 {
		return serrors.With(serrors.ErrInvalid, "area must be positive")
	}

	return nil
}

// NewProperty validates all fields and returns a fully constructed property.
func NewProperty(key, ownerKey, address string, squareMeters *int) (*Property, error) {
	if key == "" {
		return nil, serrors.With(serrors.ErrInvalid, "property key is required")
	}
	if ownerKey == "" {
		return nil, serrors.With(serrors.ErrInvalid, "owner key is required")
	}
	if err := validatePropertyRegistration(address, squareMeters); err != nil {
		return nil, err
	}

	return &Property{
		Key:          key,
		OwnerKey:     ownerKey,
		Address:      address,
		SquareMeters: squareMeters,
	}, nil
}

// UpdateRegistration replaces address and area after re-validation.
func (p *Property) UpdateRegistration(address string, squareMeters *int) error {
	if err := validatePropertyRegistration(address, squareMeters); err != nil {
		return err
	}

	p.Address = address
	p.SquareMeters = squareMeters

	return nil
}
