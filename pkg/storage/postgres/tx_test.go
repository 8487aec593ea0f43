package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lugo/pkg/domain"
	"lugo/pkg/storage"
	"lugo/pkg/storage/postgres"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// the transactional handle wraps an *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	person, err := tx.StorePerson(ctx, domain.Person{
		Key:        uuid.NewString(),
		GivenName:  "Ana",
		FamilyName: "Souza",
		CPF:        "39053344705",
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	// committed row is visible outside the transaction
	fetched, err := pg.PersonByKey(ctx, person.Key)
	require.NoError(t, err)
	require.NotNil(t, fetched)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	person, err := tx.StorePerson(ctx, domain.Person{
		Key:        uuid.NewString(),
		GivenName:  "Ana",
		FamilyName: "Souza",
		CPF:        "39053344705",
	})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	// rolled back row never becomes visible
	fetched, err := pg.PersonByKey(ctx, person.Key)
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		var personKey string
		err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
			person, err := tx.StorePerson(ctx, domain.Person{
				Key:        uuid.NewString(),
				GivenName:  "Ana",
				FamilyName: "Souza",
				CPF:        "39053344705",
			})
			if err != nil {
				return err
			}
			personKey = person.Key

			return nil
		})
		require.NoError(t, err)

		fetched, err := pg.PersonByKey(ctx, personKey)
		require.NoError(t, err)
		require.NotNil(t, fetched)
	})

	t.Run("rollback on error, partial writes discarded", func(t *testing.T) {
		boom := errors.New("boom")
		var personKey string
		err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
			person, err := tx.StorePerson(ctx, domain.Person{
				Key:        uuid.NewString(),
				GivenName:  "Bia",
				FamilyName: "Lima",
				CPF:        "52998224725",
			})
			if err != nil {
				return err
			}
			personKey = person.Key

			return boom
		})
		require.ErrorIs(t, err, boom)

		fetched, err := pg.PersonByKey(ctx, personKey)
		require.NoError(t, err)
		require.Nil(t, fetched)
	})
}
