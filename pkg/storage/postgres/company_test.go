package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lugo/pkg/domain"
	"lugo/pkg/storage"
)

func TestPgSQL_StoreCompany(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored := storeCompany(t, pgSQL, "12345678000195")
	require.Equal(t, "Lugo", stored.TradeName)
	require.Equal(t, "Lugo Imoveis LTDA", stored.LegalName)
	require.Equal(t, domain.CNPJ("12345678000195"), stored.CNPJ)
	require.False(t, stored.CreatedAt.IsZero())
	require.True(t, stored.UpdatedAt.IsZero())

	t.Run("fetch by key", func(t *testing.T) {
		fetched, err := pgSQL.CompanyByKey(ctx, stored.Key)
		require.NoError(t, err)
		require.Equal(t, stored.Key, fetched.Key)
		require.Equal(t, stored.CNPJ, fetched.CNPJ)
	})

	t.Run("fetch missing key", func(t *testing.T) {
		fetched, err := pgSQL.CompanyByKey(ctx, "missing")
		require.NoError(t, err)
		require.Nil(t, fetched)
	})

	t.Run("duplicate cnpj rejected", func(t *testing.T) {
		_, err := pgSQL.StoreCompany(ctx, domain.Company{
			Key:       "another-key",
			TradeName: "Other",
			LegalName: "Other LTDA",
			CNPJ:      stored.CNPJ,
		})
		require.Error(t, err)
	})
}

func TestPgSQL_CompanyCNPJInUse(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	inUse, err := pgSQL.CompanyCNPJInUse(ctx, "12345678000195")
	require.NoError(t, err)
	require.False(t, inUse)

	storeCompany(t, pgSQL, "12345678000195")

	inUse, err = pgSQL.CompanyCNPJInUse(ctx, "12345678000195")
	require.NoError(t, err)
	require.True(t, inUse)
}

func TestPgSQL_UpdateCompanyByKey(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored := storeCompany(t, pgSQL, "12345678000195")

	updated, err := pgSQL.UpdateCompanyByKey(ctx, stored.Key, storage.CompanyUpdates{
		TradeName: "Lugo Prime",
		LegalName: "Lugo Prime Imoveis LTDA",
		CNPJ:      "98765432000109",
	})
	require.NoError(t, err)
	require.Equal(t, "Lugo Prime", updated.TradeName)
	require.Equal(t, domain.CNPJ("98765432000109"), updated.CNPJ)
	require.False(t, updated.UpdatedAt.IsZero())

	t.Run("unknown key yields no row", func(t *testing.T) {
		updated, err := pgSQL.UpdateCompanyByKey(ctx, "missing", storage.CompanyUpdates{
			TradeName: "x",
			LegalName: "y",
			CNPJ:      "11111111000111",
		})
		require.NoError(t, err)
		require.Nil(t, updated)
	})
}

func TestPgSQL_CompanyClients(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	company := storeCompany(t, pgSQL, "12345678000195")
	other := storeCompany(t, pgSQL, "98765432000109")

	storePerson(t, pgSQL, company.Key, domain.RoleEmployee, "39053344705")
	client1 := storePerson(t, pgSQL, company.Key, domain.RoleClient, "52998224725")
	client2 := storePerson(t, pgSQL, company.Key, domain.RoleClient, "11144477735")
	storePerson(t, pgSQL, other.Key, domain.RoleClient, "16899535009")

	clients, err := pgSQL.CompanyClients(ctx, company.Key)
	require.NoError(t, err)
	require.Len(t, clients, 2)

	keys := []string{clients[0].Key, clients[1].Key}
	require.ElementsMatch(t, []string{client1.Key, client2.Key}, keys)
	for _, c := range clients {
		require.Equal(t, domain.RoleClient, c.Role)
		require.Equal(t, company.Key, c.CompanyKey)
	}
}
