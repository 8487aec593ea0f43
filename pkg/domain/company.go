package domain

import (
	"time"

	"lugo/pkg/serrors"
)

// Company is a tenant of the system. Persons affiliate with exactly one
// company; everything they own belongs transitively to the same tenant.
type Company struct {
	// Key is the opaque business key callers use to reference the company.
	Key string `json:"key"`

	// TradeName is the public-facing name.
	TradeName string `json:"tradeName"`
	// LegalName is the registered corporate name.
	LegalName string `json:"legalName"`
	// CNPJ is the company tax identifier, unique across all companies.
	CNPJ CNPJ `json:"cnpj"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func validateCompanyNames(tradeName, legalName string) error {
	if tradeName == "" {
		return serrors.With(serrors.ErrInvalid, "trade name is required")
	}
	if legalName == "" {
		return serrors.With(serrors.ErrInvalid, "legal name is required")
	}

	return nil
}

// NewCompany validates all fields and returns a fully constructed company.
func NewCompany(key, tradeName, legalName, cnpj string) (*Company, error) {
	if key == "" {
		return nil, serrors.With(serrors.ErrInvalid, "company key is required")
	}
	if err := validateCompanyNames(tradeName, legalName); err != nil {
		return nil, err
	}
	taxID, err := NewCNPJ(cnpj)
	if err != nil {
		return nil, err
	}

	return &Company{
		Key:       key,
		TradeName: tradeName,
		LegalName: legalName,
		CNPJ:      taxID,
	}, nil
}

// Alter replaces the mutable fields, re-validating with the construction
// rules. Nothing is applied when validation fails.
func (c *Company) Alter(tradeName, legalName, cnpj string) error {
	if err := validateCompanyNames(tradeName, legalName); err != nil {
		return err
	}
	taxID, err := NewCNPJ(cnpj)
	if err != nil {
		return err
	}

	c.TradeName = tradeName
	c.LegalName = legalName
	c.CNPJ = taxID

	return nil
}
