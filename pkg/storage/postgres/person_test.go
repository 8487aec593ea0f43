package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lugo/pkg/domain"
	"lugo/pkg/storage"
)

func TestPgSQL_StorePerson(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("unaffiliated", func(t *testing.T) {
		stored := storePerson(t, pgSQL, "", "", "39053344705")
		require.Empty(t, stored.CompanyKey)
		require.Empty(t, stored.Role)

		fetched, err := pgSQL.PersonByKey(ctx, stored.Key)
		require.NoError(t, err)
		require.Equal(t, domain.CPF("39053344705"), fetched.CPF)
		require.Empty(t, fetched.CompanyKey)
		require.Empty(t, fetched.Role)
	})

	t.Run("affiliated", func(t *testing.T) {
		company := storeCompany(t, pgSQL, "12345678000195")
		stored := storePerson(t, pgSQL, company.Key, domain.RoleClient, "52998224725")

		fetched, err := pgSQL.PersonByKey(ctx, stored.Key)
		require.NoError(t, err)
		require.Equal(t, company.Key, fetched.CompanyKey)
		require.Equal(t, domain.RoleClient, fetched.Role)
	})

	t.Run("missing key", func(t *testing.T) {
		fetched, err := pgSQL.PersonByKey(ctx, "missing")
		require.NoError(t, err)
		require.Nil(t, fetched)
	})
}

func TestPgSQL_PersonCPFInUse(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	companyA := storeCompany(t, pgSQL, "12345678000195")
	companyB := storeCompany(t, pgSQL, "98765432000109")

	storePerson(t, pgSQL, companyA.Key, domain.RoleClient, "39053344705")
	storePerson(t, pgSQL, "", "", "52998224725")

	t.Run("taken inside the same company", func(t *testing.T) {
		inUse, err := pgSQL.PersonCPFInUse(ctx, "39053344705", companyA.Key)
		require.NoError(t, err)
		require.True(t, inUse)
	})

	t.Run("free in another company", func(t *testing.T) {
		inUse, err := pgSQL.PersonCPFInUse(ctx, "39053344705", companyB.Key)
		require.NoError(t, err)
		require.False(t, inUse)
	})

	t.Run("free among unaffiliated persons", func(t *testing.T) {
		inUse, err := pgSQL.PersonCPFInUse(ctx, "39053344705", "")
		require.NoError(t, err)
		require.False(t, inUse)
	})

	t.Run("taken among unaffiliated persons", func(t *testing.T) {
		inUse, err := pgSQL.PersonCPFInUse(ctx, "52998224725", "")
		require.NoError(t, err)
		require.True(t, inUse)
	})
}

func TestPgSQL_PersonCPFScopedIndex(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	company := storeCompany(t, pgSQL, "12345678000195")
	storePerson(t, pgSQL, company.Key, domain.RoleClient, "39053344705")
	storePerson(t, pgSQL, "", "", "39053344705")

	t.Run("duplicate inside company rejected", func(t *testing.T) {
		_, err := pgSQL.StorePerson(ctx, domain.Person{
			Key:        uuid.NewString(),
			GivenName:  "Bia",
			FamilyName: "Lima",
			CPF:        "39053344705",
			CompanyKey: company.Key,
			Role:       domain.RoleClient,
		})
		require.Error(t, err)
	})

	// the unaffiliated group is a single scope, not an exemption
	t.Run("duplicate among unaffiliated rejected", func(t *testing.T) {
		_, err := pgSQL.StorePerson(ctx, domain.Person{
			Key:        uuid.NewString(),
			GivenName:  "Bia",
			FamilyName: "Lima",
			CPF:        "39053344705",
		})
		require.Error(t, err)
	})
}

func TestPgSQL_UpdatePersonByKey(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	company := storeCompany(t, pgSQL, "12345678000195")
	stored := storePerson(t, pgSQL, company.Key, domain.RoleClient, "39053344705")

	updated, err := pgSQL.UpdatePersonByKey(ctx, stored.Key, storage.PersonUpdates{
		GivenName:  "Beatriz",
		FamilyName: "Lima",
		CPF:        "52998224725",
	})
	require.NoError(t, err)
	require.Equal(t, "Beatriz", updated.GivenName)
	require.Equal(t, domain.CPF("52998224725"), updated.CPF)
	require.Equal(t, company.Key, updated.CompanyKey)
	require.Equal(t, domain.RoleClient, updated.Role)
	require.False(t, updated.UpdatedAt.IsZero())

	t.Run("unknown key yields no row", func(t *testing.T) {
		updated, err := pgSQL.UpdatePersonByKey(ctx, "missing", storage.PersonUpdates{
			GivenName:  "x",
			FamilyName: "y",
			CPF:        "11144477735",
		})
		require.NoError(t, err)
		require.Nil(t, updated)
	})
}

func TestPgSQL_AffiliatePerson(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	company := storeCompany(t, pgSQL, "12345678000195")
	stored := storePerson(t, pgSQL, "", "", "39053344705")

	require.NoError(t, pgSQL.AffiliatePerson(ctx, stored.Key, company.Key, domain.RoleEmployee))

	fetched, err := pgSQL.PersonByKey(ctx, stored.Key)
	require.NoError(t, err)
	require.Equal(t, company.Key, fetched.CompanyKey)
	require.Equal(t, domain.RoleEmployee, fetched.Role)
	require.False(t, fetched.UpdatedAt.IsZero())
}
