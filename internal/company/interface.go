package company

import (
	"context"

	"lugo/pkg/domain"
)

//go:generate mockgen -package mockcompany -source=interface.go -destination=mock/mockcompany.go *

// Service manages companies and their client roster. Every operation is
// performed on behalf of a requester identified by its account key, resolved
// to a person and affiliation before any authorization decision.
type Service interface {
	// Create registers a company and affiliates the requester as its first
	// employee, atomically. The requester must exist and be unaffiliated, and
	// the CNPJ must be unused.
	Create(ctx context.Context, accountKey, tradeName, legalName, cnpj string) (*domain.Company, error)
	// Alter replaces the company's names and CNPJ. Only employees of the
	// company may alter it.
	Alter(ctx context.Context, accountKey, companyKey, tradeName, legalName, cnpj string) (*domain.Company, error)
	// Clients lists the persons affiliated with the company under the client
	// role. Only employees of the company may list them.
	Clients(ctx context.Context, accountKey, companyKey string) ([]domain.Person, error)
	// RegisterClient creates a person affiliated with the requester's company
	// under the client role. The requester must be an employee.
	RegisterClient(ctx context.Context, accountKey, givenName, familyName, cpf string) (*domain.Person, error)
	// AlterClient replaces a client's names and CPF. The requester must be an
	// employee of the client's company.
	AlterClient(ctx context.Context, accountKey, personKey, givenName, familyName, cpf string) (*domain.Person, error)
}
