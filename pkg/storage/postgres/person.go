package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lugo/pkg/domain"
	"lugo/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

// personRow is the read projection of a person expanded with its company's
// business key.
type personRow struct {
	Key        string         `db:"key"`
	GivenName  string         `db:"given_name"`
	FamilyName string         `db:"family_name"`
	CPF        string         `db:"cpf"`
	Role       sql.NullString `db:"role"`
	CompanyKey sql.NullString `db:"company_key"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  sql.NullTime   `db:"updated_at"`
}

func (r *personRow) ToDomain() *domain.Person {
	return &domain.Person{
		Key:        r.Key,
		GivenName:  r.GivenName,
		FamilyName: r.FamilyName,
		CPF:        domain.CPF(r.CPF),
		CompanyKey: r.CompanyKey.String,
		Role:       domain.Role(r.Role.String),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt.Time,
	}
}

// personRowColumns is the select list filling personRow from persons p left
// joined with companies c.
var personRowColumns = []interface{}{ //nolint: gochecknoglobals
	goqu.I("p.key").As("key"),
	goqu.I("p.given_name").As("given_name"),
	goqu.I("p.family_name").As("family_name"),
	goqu.I("p.cpf").As("cpf"),
	goqu.I("p.role").As("role"),
	goqu.I("c.key").As("company_key"),
	goqu.I("p.created_at").As("created_at"),
	goqu.I("p.updated_at").As("updated_at"),
}

// companyIDByKey builds the subselect resolving a company's internal id from
// its business key.
func companyIDByKey(key string) *goqu.SelectDataset {
	return goqu.From(companiesTable).Select("id").Where(goqu.I("key").Eq(key))
}

// personIDByKey builds the subselect resolving a person's internal id from its
// business key.
func personIDByKey(key string) *goqu.SelectDataset {
	return goqu.From(personsTable).Select("id").Where(goqu.I("key").Eq(key))
}

func (p *PgSQL) StorePerson(ctx context.Context, person domain.Person) (*domain.Person, error) {
	rec := goqu.Record{
		"key":         person.Key,
		"given_name":  person.GivenName,
		"family_name": person.FamilyName,
		"cpf":         person.CPF.String(),
	}
	if person.Affiliated() {
		rec["company_id"] = companyIDByKey(person.CompanyKey)
		rec["role"] = string(person.Role)
	}

	var row PgPerson
	found, err := p.Builder.Insert(personsTable).
		Rows(rec).
		Returning(&PgPerson{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store person into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("person insert returned no row")
	}

	return row.ToDomain(person.CompanyKey), nil
}

func (p *PgSQL) PersonByKey(ctx context.Context, key string) (*domain.Person, error) {
	var row personRow
	found, err := p.Builder.From(goqu.T(personsTable).As("p")).
		LeftJoin(goqu.T(companiesTable).As("c"), goqu.On(goqu.I("p.company_id").Eq(goqu.I("c.id")))).
		Select(personRowColumns...).
		Where(goqu.I("p.key").Eq(key)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch person by key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// PersonCPFInUse checks the scoped uniqueness of a CPF. The scope is the
// affiliation group: the persons of companyKey, or all unaffiliated persons
// when companyKey is empty.
func (p *PgSQL) PersonCPFInUse(ctx context.Context, cpf domain.CPF, companyKey string) (bool, error) {
	scope := goqu.I("company_id").IsNull()
	if companyKey != "" {
		scope = goqu.I("company_id").Eq(companyIDByKey(companyKey))
	}

	count, err := p.Builder.From(personsTable).
		Where(goqu.I("cpf").Eq(cpf.String()), scope).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count persons by cpf: %w", err)
	}

	return count > 0, nil
}

func (p *PgSQL) UpdatePersonByKey(ctx context.Context,
	key string,
	updates storage.PersonUpdates) (*domain.Person, error) {
	res, err := p.Builder.Update(personsTable).
		Set(goqu.Record{
			"given_name":  updates.GivenName,
			"family_name": updates.FamilyName,
			"cpf":         updates.CPF.String(),
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("key").Eq(key)).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update person in pg: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	// re-read through the join to expand the company key
	return p.PersonByKey(ctx, key)
}

func (p *PgSQL) AffiliatePerson(ctx context.Context, personKey, companyKey string, role domain.Role) error {
	_, err := p.Builder.Update(personsTable).
		Set(goqu.Record{
			"company_id": companyIDByKey(companyKey),
			"role":       string(role),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("key").Eq(personKey)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not affiliate person in pg: %w", err)
	}

	return nil
}
