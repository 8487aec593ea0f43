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

const accountsTable = "accounts"

// accountRow is the read projection of an account expanded with its person's
// business key.
type accountRow struct {
	Key          string       `db:"key"`
	PersonKey    string       `db:"person_key"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    sql.NullTime `db:"updated_at"`
}

func (r *accountRow) ToDomain() *domain.Account {
	return &domain.Account{
		Key:          r.Key,
		PersonKey:    r.PersonKey,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt.Time,
	}
}

func (p *PgSQL) accountRowQuery() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(accountsTable).As("u")).
		Join(goqu.T(personsTable).As("p"), goqu.On(goqu.I("u.person_id").Eq(goqu.I("p.id")))).
		Select(
			goqu.I("u.key").As("key"),
			goqu.I("p.key").As("person_key"),
			goqu.I("u.email").As("email"),
			goqu.I("u.password_hash").As("password_hash"),
			goqu.I("u.created_at").As("created_at"),
			goqu.I("u.updated_at").As("updated_at"),
		)
}

func (p *PgSQL) StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.Insert(accountsTable).
		Rows(goqu.Record{
			"key":           account.Key,
			"person_id":     personIDByKey(account.PersonKey),
			"email":         account.Email,
			"password_hash": account.PasswordHash,
		}).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store account into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("account insert returned no row")
	}

	return row.ToDomain(account.PersonKey), nil
}

func (p *PgSQL) AccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var row accountRow
	found, err := p.accountRowQuery().
		Where(goqu.I("u.email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AccountByPersonKey(ctx context.Context, personKey string) (*domain.Account, error) {
	var row accountRow
	found, err := p.accountRowQuery().
		Where(goqu.I("p.key").Eq(personKey)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account by person: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateAccountPasswordByEmail(ctx context.Context,
	email string,
	passwordHash string) (*domain.Account, error) {
	res, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"password_hash": passwordHash,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("email").Eq(email)).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update account password in pg: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return p.AccountByEmail(ctx, email)
}

// ActorByAccountKey resolves the requester behind an account: the person it
// belongs to together with that person's affiliation.
func (p *PgSQL) ActorByAccountKey(ctx context.Context, accountKey string) (*storage.Actor, error) {
	var row struct {
		PersonKey  string         `db:"person_key"`
		CompanyKey sql.NullString `db:"company_key"`
		Role       sql.NullString `db:"role"`
	}
	found, err := p.Builder.From(goqu.T(accountsTable).As("u")).
		Join(goqu.T(personsTable).As("p"), goqu.On(goqu.I("u.person_id").Eq(goqu.I("p.id")))).
		LeftJoin(goqu.T(companiesTable).As("c"), goqu.On(goqu.I("p.company_id").Eq(goqu.I("c.id")))).
		Select(
			goqu.I("p.key").As("person_key"),
			goqu.I("c.key").As("company_key"),
			goqu.I("p.role").As("role"),
		).
		Where(goqu.I("u.key").Eq(accountKey)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch actor by account key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &storage.Actor{
		PersonKey:  row.PersonKey,
		CompanyKey: row.CompanyKey.String,
		Role:       domain.Role(row.Role.String),
	}, nil
}
