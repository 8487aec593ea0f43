package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lugo/pkg/domain"
	"lugo/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/shopspring/decimal"
)

const listingsTable = "listings"

// listingGraphRow is the read projection of a listing expanded with its
// property's key and the ownership chain behind it.
type listingGraphRow struct {
	Key             string          `db:"key"`
	PropertyKey     string          `db:"property_key"`
	Price           decimal.Decimal `db:"price"`
	CondoFee        decimal.Decimal `db:"condo_fee"`
	PropertyTax     decimal.Decimal `db:"property_tax"`
	OwnerKey        string          `db:"owner_key"`
	OwnerCompanyKey sql.NullString  `db:"owner_company_key"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       sql.NullTime    `db:"updated_at"`
}

func (r *listingGraphRow) toGraph() *storage.ListingGraph {
	return &storage.ListingGraph{
		Listing: domain.Listing{
			Key:         r.Key,
			PropertyKey: r.PropertyKey,
			Price:       r.Price,
			CondoFee:    r.CondoFee,
			PropertyTax: r.PropertyTax,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt.Time,
		},
		OwnerKey:        r.OwnerKey,
		OwnerCompanyKey: r.OwnerCompanyKey.String,
	}
}

func (p *PgSQL) listingGraphQuery() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(listingsTable).As("a")).
		Join(goqu.T(propertiesTable).As("i"), goqu.On(goqu.I("a.property_id").Eq(goqu.I("i.id")))).
		Join(goqu.T(personsTable).As("o"), goqu.On(goqu.I("i.owner_id").Eq(goqu.I("o.id")))).
		LeftJoin(goqu.T(companiesTable).As("c"), goqu.On(goqu.I("o.company_id").Eq(goqu.I("c.id")))).
		Select(
			goqu.I("a.key").As("key"),
			goqu.I("i.key").As("property_key"),
			goqu.I("a.price").As("price"),
			goqu.I("a.condo_fee").As("condo_fee"),
			goqu.I("a.property_tax").As("property_tax"),
			goqu.I("o.key").As("owner_key"),
			goqu.I("c.key").As("owner_company_key"),
			goqu.I("a.created_at").As("created_at"),
			goqu.I("a.updated_at").As("updated_at"),
		)
}

// propertyIDByKey builds the subselect resolving a property's internal id from
// its business key.
func propertyIDByKey(key string) *goqu.SelectDataset {
	return goqu.From(propertiesTable).Select("id").Where(goqu.I("key").Eq(key))
}

func (p *PgSQL) StoreListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	var row PgListing
	found, err := p.Builder.Insert(listingsTable).
		Rows(goqu.Record{
			"key":          listing.Key,
			"property_id":  propertyIDByKey(listing.PropertyKey),
			"price":        listing.Price,
			"condo_fee":    listing.CondoFee,
			"property_tax": listing.PropertyTax,
		}).
		Returning(&PgListing{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store listing into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("listing insert returned no row")
	}

	return row.ToDomain(listing.PropertyKey), nil
}

func (p *PgSQL) ListingByKey(ctx context.Context, key string) (*storage.ListingGraph, error) {
	var row listingGraphRow
	found, err := p.listingGraphQuery().
		Where(goqu.I("a.key").Eq(key)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch listing by key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.toGraph(), nil
}

func (p *PgSQL) ListingByPropertyKey(ctx context.Context, propertyKey string) (*storage.ListingGraph, error) {
	var row listingGraphRow
	found, err := p.listingGraphQuery().
		Where(goqu.I("i.key").Eq(propertyKey)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch listing by property: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.toGraph(), nil
}

func (p *PgSQL) UpdateListingByKey(ctx context.Context,
	key string,
	updates storage.ListingUpdates) (*domain.Listing, error) {
	res, err := p.Builder.Update(listingsTable).
		Set(goqu.Record{
			"price":        updates.Price,
			"condo_fee":    updates.CondoFee,
			"property_tax": updates.PropertyTax,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("key").Eq(key)).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update listing in pg: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	graph, err := p.ListingByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if graph == nil {
		return nil, nil
	}

	return &graph.Listing, nil
}
