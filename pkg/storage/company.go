package storage

import (
	"context"

	"lugo/pkg/domain"
)

// CompanyUpdates carries the mutable company fields applied by an update.
type CompanyUpdates struct {
	TradeName string
	LegalName string
	CNPJ      domain.CNPJ
}

// CompanyStorage defines persistence operations for companies.
type CompanyStorage interface {
	// StoreCompany inserts a company and returns the stored row.
	StoreCompany(ctx context.Context, company domain.Company) (*domain.Company, error)
	// CompanyByKey fetches a company by business key. Returns nil when absent.
	CompanyByKey(ctx context.Context, key string) (*domain.Company, error)
	// CompanyCNPJInUse reports whether any company already carries the given
	// normalized tax identifier.
	CompanyCNPJInUse(ctx context.Context, cnpj domain.CNPJ) (bool, error)
	// UpdateCompanyByKey applies updates to the company identified by key and
	// returns the updated row. Returns nil when absent.
	UpdateCompanyByKey(ctx context.Context, key string, updates CompanyUpdates) (*domain.Company, error)
	// CompanyClients returns all persons affiliated with the company that hold
	// the client role.
	CompanyClients(ctx context.Context, companyKey string) ([]domain.Person, error)
}
