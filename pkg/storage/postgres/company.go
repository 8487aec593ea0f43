package postgres

import (
	"context"
	"fmt"

	"lugo/pkg/domain"
	"lugo/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	companiesTable = "companies"
	personsTable   = "persons"
)

func (p *PgSQL) StoreCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	var row PgCompany
	found, err := p.Builder.Insert(companiesTable).
		Rows(PgCompany{
			Key:       company.Key,
			TradeName: company.TradeName,
			LegalName: company.LegalName,
			CNPJ:      company.CNPJ.String(),
		}).
		Returning(&PgCompany{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store company into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("company insert returned no row")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CompanyByKey(ctx context.Context, key string) (*domain.Company, error) {
	var row PgCompany
	found, err := p.Builder.From(companiesTable).
		Where(goqu.I("key").Eq(key)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company by key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CompanyCNPJInUse(ctx context.Context, cnpj domain.CNPJ) (bool, error) {
	count, err := p.Builder.From(companiesTable).
		Where(goqu.I("cnpj").Eq(cnpj.String())).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count companies by cnpj: %w", err)
	}

	return count > 0, nil
}

func (p *PgSQL) UpdateCompanyByKey(ctx context.Context,
	key string,
	updates storage.CompanyUpdates) (*domain.Company, error) {
	var row PgCompany
	found, err := p.Builder.Update(companiesTable).
		Set(goqu.Record{
			"trade_name": updates.TradeName,
			"legal_name": updates.LegalName,
			"cnpj":       updates.CNPJ.String(),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("key").Eq(key)).
		Returning(&PgCompany{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update company in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CompanyClients(ctx context.Context, companyKey string) ([]domain.Person, error) {
	var rows []personRow
	err := p.Builder.From(goqu.T(personsTable).As("p")).
		Join(goqu.T(companiesTable).As("c"), goqu.On(goqu.I("p.company_id").Eq(goqu.I("c.id")))).
		Select(personRowColumns...).
		Where(
			goqu.I("c.key").Eq(companyKey),
			goqu.I("p.role").Eq(string(domain.RoleClient)),
		).
		Order(goqu.I("p.created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company clients: %w", err)
	}

	out := make([]domain.Person, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
