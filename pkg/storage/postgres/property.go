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

const propertiesTable = "properties"

// propertyGraphRow is the read projection of a property expanded with the
// ownership chain and the key of an existing listing.
type propertyGraphRow struct {
	Key             string         `db:"key"`
	Address         string         `db:"address"`
	SquareMeters    sql.NullInt64  `db:"square_meters"`
	OwnerKey        string         `db:"owner_key"`
	OwnerCompanyKey sql.NullString `db:"owner_company_key"`
	ListingKey      sql.NullString `db:"listing_key"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       sql.NullTime   `db:"updated_at"`
}

func (r *propertyGraphRow) toGraph() *storage.PropertyGraph {
	var sqm *int
	if r.SquareMeters.Valid {
		v := int(r.SquareMeters.Int64)
		sqm = &v
	}

	return &storage.PropertyGraph{
		Property: domain.Property{
			Key:          r.Key,
			OwnerKey:     r.OwnerKey,
			Address:      r.Address,
			SquareMeters: sqm,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt.Time,
		},
		OwnerCompanyKey: r.OwnerCompanyKey.String,
		ListingKey:      r.ListingKey.String,
	}
}

func (p *PgSQL) propertyGraphQuery() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(propertiesTable).As("i")).
		Join(goqu.T(personsTable).As("o"), goqu.On(goqu.I("i.owner_id").Eq(goqu.I("o.id")))).
		LeftJoin(goqu.T(companiesTable).As("c"), goqu.On(goqu.I("o.company_id").Eq(goqu.I("c.id")))).
		LeftJoin(goqu.T(listingsTable).As("a"), goqu.On(goqu.I("a.property_id").Eq(goqu.I("i.id")))).
		Select(
			goqu.I("i.key").As("key"),
			goqu.I("i.address").As("address"),
			goqu.I("i.square_meters").As("square_meters"),
			goqu.I("o.key").As("owner_key"),
			goqu.I("c.key").As("owner_company_key"),
			goqu.I("a.key").As("listing_key"),
			goqu.I("i.created_at").As("created_at"),
			goqu.I("i.updated_at").As("updated_at"),
		)
}

func (p *PgSQL) StoreProperty(ctx context.Context, property domain.Property) (*domain.Property, error) {
	rec := goqu.Record{
		"key":      property.Key,
		"owner_id": personIDByKey(property.OwnerKey),
		"address":  property.Address,
	}
	if property.SquareMeters != nil {
		rec["square_meters"] = *property.SquareMeters
	}

	var row PgProperty
	found, err := p.Builder.Insert(propertiesTable).
		Rows(rec).
		Returning(&PgProperty{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store property into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("property insert returned no row")
	}

	return row.ToDomain(property.OwnerKey), nil
}

func (p *PgSQL) PropertyByKey(ctx context.Context, key string) (*storage.PropertyGraph, error) {
	var row propertyGraphRow
	found, err := p.propertyGraphQuery().
		Where(goqu.I("i.key").Eq(key)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch property by key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.toGraph(), nil
}

func (p *PgSQL) UpdatePropertyByKey(ctx context.Context,
	key string,
	updates storage.PropertyUpdates) (*domain.Property, error) {
	rec := goqu.Record{
		"address":    updates.Address,
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.SquareMeters != nil {
		rec["square_meters"] = *updates.SquareMeters
	} else {
		rec["square_meters"] = goqu.L("NULL")
	}

	res, err := p.Builder.Update(propertiesTable).
		Set(rec).
		Where(goqu.I("key").Eq(key)).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update property in pg: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	graph, err := p.PropertyByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if graph == nil {
		return nil, nil
	}

	return &graph.Property, nil
}

func (p *PgSQL) PropertiesByOwner(ctx context.Context, ownerKey string) ([]domain.Property, error) {
	var rows []propertyGraphRow
	err := p.propertyGraphQuery().
		Where(goqu.I("o.key").Eq(ownerKey)).
		Order(goqu.I("i.created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch properties by owner: %w", err)
	}

	out := make([]domain.Property, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toGraph().Property)
	}

	return out, nil
}
