package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"lugo/pkg/domain"
	"lugo/pkg/storage/postgres"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	// run migrations
	migrationsDir := filepath.Join("..", "..", "..", "migrations")
	err = runMigrations(pgSQL.DB.(*sql.DB), migrationsDir)
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

// fixture helpers; every entity gets a fresh business key.

func storeCompany(t *testing.T, pg *postgres.PgSQL, cnpj string) *domain.Company {
	t.Helper()

	company, err := pg.StoreCompany(context.Background(), domain.Company{
		Key:       uuid.NewString(),
		TradeName: "Lugo",
		LegalName: "Lugo Imoveis LTDA",
		CNPJ:      domain.CNPJ(cnpj),
	})
	require.NoError(t, err)

	return company
}

func storePerson(t *testing.T, pg *postgres.PgSQL, companyKey string, role domain.Role, cpf string) *domain.Person {
	t.Helper()

	person, err := pg.StorePerson(context.Background(), domain.Person{
		Key:        uuid.NewString(),
		GivenName:  "Ana",
		FamilyName: "Souza",
		CPF:        domain.CPF(cpf),
		CompanyKey: companyKey,
		Role:       role,
	})
	require.NoError(t, err)

	return person
}

func storeProperty(t *testing.T, pg *postgres.PgSQL, ownerKey string, squareMeters *int) *domain.Property {
	t.Helper()

	property, err := pg.StoreProperty(context.Background(), domain.Property{
		Key:          uuid.NewString(),
		OwnerKey:     ownerKey,
		Address:      "Rua das Flores 100",
		SquareMeters: squareMeters,
	})
	require.NoError(t, err)

	return property
}

func storeListing(t *testing.T, pg *postgres.PgSQL, propertyKey string) *domain.Listing {
	t.Helper()

	listing, err := pg.StoreListing(context.Background(), domain.Listing{
		Key:         uuid.NewString(),
		PropertyKey: propertyKey,
		Price:       decimal.NewFromInt(500000),
		CondoFee:    decimal.NewFromInt(800),
		PropertyTax: decimal.NewFromInt(2400),
	})
	require.NoError(t, err)

	return listing
}

func storeAccount(t *testing.T, pg *postgres.PgSQL, personKey, email string) *domain.Account {
	t.Helper()

	account, err := pg.StoreAccount(context.Background(), domain.Account{
		Key:          uuid.NewString(),
		PersonKey:    personKey,
		Email:        email,
		PasswordHash: "$2a$10$fixedhashforstoragetests",
	})
	require.NoError(t, err)

	return account
}

func intPtr(v int) *int { return &v }
