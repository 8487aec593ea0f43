package postgres

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"lugo/pkg/domain"
)

// Row structs mirror their tables for inserts with RETURNING. Business keys
// reference related rows in the public model; the serial ids never leave this
// package. Projections used for reads with relationship expansion live next
// to the queries that fill them.

type PgCompany struct {
	ID  int64  `db:"id" goqu:"skipinsert"`
	Key string `db:"key"`

	TradeName string `db:"trade_name"`
	LegalName string `db:"legal_name"`
	CNPJ      string `db:"cnpj"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (r *PgCompany) ToDomain() *domain.Company {
	return &domain.Company{
		Key:       r.Key,
		TradeName: r.TradeName,
		LegalName: r.LegalName,
		CNPJ:      domain.CNPJ(r.CNPJ),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt.Time,
	}
}

type PgPerson struct {
	ID        int64         `db:"id" goqu:"skipinsert"`
	Key       string        `db:"key"`
	CompanyID sql.NullInt64 `db:"company_id"`

	GivenName  string         `db:"given_name"`
	FamilyName string         `db:"family_name"`
	CPF        string         `db:"cpf"`
	Role       sql.NullString `db:"role"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

// ToDomain builds the domain person. The affiliated company's business key is
// supplied by the caller since rows only carry the internal id.
func (r *PgPerson) ToDomain(companyKey string) *domain.Person {
	return &domain.Person{
		Key:        r.Key,
		GivenName:  r.GivenName,
		FamilyName: r.FamilyName,
		CPF:        domain.CPF(r.CPF),
		CompanyKey: companyKey,
		Role:       domain.Role(r.Role.String),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt.Time,
	}
}

type PgProperty struct {
	ID      int64  `db:"id" goqu:"skipinsert"`
	Key     string `db:"key"`
	OwnerID int64  `db:"owner_id"`

	Address      string        `db:"address"`
	SquareMeters sql.NullInt64 `db:"square_meters"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (r *PgProperty) ToDomain(ownerKey string) *domain.Property {
	var sqm *int
	if r.SquareMeters.Valid {
		v := int(r.SquareMeters.Int64)
		sqm = &v
	}

	return &domain.Property{
		Key:          r.Key,
		OwnerKey:     ownerKey,
		Address:      r.Address,
		SquareMeters: sqm,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt.Time,
	}
}

type PgListing struct {
	ID         int64  `db:"id" goqu:"skipinsert"`
	Key        string `db:"key"`
	PropertyID int64  `db:"property_id"`

	Price       decimal.Decimal `db:"price"`
	CondoFee    decimal.Decimal `db:"condo_fee"`
	PropertyTax decimal.Decimal `db:"property_tax"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (r *PgListing) ToDomain(propertyKey string) *domain.Listing {
	return &domain.Listing{
		Key:         r.Key,
		PropertyKey: propertyKey,
		Price:       r.Price,
		CondoFee:    r.CondoFee,
		PropertyTax: r.PropertyTax,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt.Time,
	}
}

type PgAccount struct {
	ID       int64  `db:"id" goqu:"skipinsert"`
	Key      string `db:"key"`
	PersonID int64  `db:"person_id"`

	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (r *PgAccount) ToDomain(personKey string) *domain.Account {
	return &domain.Account{
		Key:          r.Key,
		PersonKey:    personKey,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt.Time,
	}
}
