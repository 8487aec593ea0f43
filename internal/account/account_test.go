package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"lugo/internal/account"
	"lugo/internal/person"
	"lugo/pkg/domain"
	"lugo/pkg/serrors"
	"lugo/pkg/storage"
	mockstorage "lugo/pkg/storage/mock"
)

const (
	personKey = "per-1"
	email     = "ana@example.com"
	secret    = "s3cret"
	validCPF  = "390.533.447-05"
)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, account.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, account.New(st, person.New(st))
}

func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestAccount_Create(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PersonByKey(gomock.Any(), personKey).Return(&domain.Person{Key: personKey}, nil)
		tx.EXPECT().AccountByPersonKey(gomock.Any(), personKey).Return(nil, nil)
		tx.EXPECT().AccountByEmail(gomock.Any(), email).Return(nil, nil)
		tx.EXPECT().StoreAccount(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a domain.Account) (*domain.Account, error) {
				// the secret never reaches storage in clear text
				require.NotEqual(t, secret, a.PasswordHash)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(secret)))

				return &a, nil
			},
		)
	})

	created, err := s.Create(context.Background(), personKey, email, secret, secret)
	require.NoError(t, err)
	require.Equal(t, email, created.Email)
}

func TestAccount_Create_PersonMissing(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PersonByKey(gomock.Any(), personKey).Return(nil, nil)
	})

	_, err := s.Create(context.Background(), personKey, email, secret, secret)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestAccount_Create_SecondAccountConflicts(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PersonByKey(gomock.Any(), personKey).Return(&domain.Person{Key: personKey}, nil)
		tx.EXPECT().AccountByPersonKey(gomock.Any(), personKey).
			Return(&domain.Account{Key: "acc-1", PersonKey: personKey}, nil)
	})

	_, err := s.Create(context.Background(), personKey, email, secret, secret)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestAccount_Create_EmailTaken(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PersonByKey(gomock.Any(), personKey).Return(&domain.Person{Key: personKey}, nil)
		tx.EXPECT().AccountByPersonKey(gomock.Any(), personKey).Return(nil, nil)
		tx.EXPECT().AccountByEmail(gomock.Any(), email).
			Return(&domain.Account{Key: "acc-2", Email: email}, nil)
	})

	_, err := s.Create(context.Background(), personKey, email, secret, secret)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestAccount_Create_ConfirmationMismatch(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PersonByKey(gomock.Any(), personKey).Return(&domain.Person{Key: personKey}, nil)
		tx.EXPECT().AccountByPersonKey(gomock.Any(), personKey).Return(nil, nil)
		tx.EXPECT().AccountByEmail(gomock.Any(), email).Return(nil, nil)
		// no store expected
	})

	_, err := s.Create(context.Background(), personKey, email, secret, "different")
	require.ErrorIs(t, err, serrors.ErrInvalid)
}

func TestAccount_SignUp(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// person creation: unaffiliated scope
		tx.EXPECT().PersonCPFInUse(gomock.Any(), domain.CPF("39053344705"), "").Return(false, nil)
		tx.EXPECT().StorePerson(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.Person) (*domain.Person, error) {
				require.False(t, p.Affiliated())

				return &p, nil
			},
		)
		// account creation sees the person stored in the same transaction
		tx.EXPECT().PersonByKey(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string) (*domain.Person, error) {
				return &domain.Person{Key: key}, nil
			},
		)
		tx.EXPECT().AccountByPersonKey(gomock.Any(), gomock.Any()).Return(nil, nil)
		tx.EXPECT().AccountByEmail(gomock.Any(), email).Return(nil, nil)
		tx.EXPECT().StoreAccount(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a domain.Account) (*domain.Account, error) {
				return &a, nil
			},
		)
	})

	created, err := s.SignUp(context.Background(), "Ana", "Souza", validCPF, email, secret, secret)
	require.NoError(t, err)
	require.Equal(t, email, created.Email)
}

func TestAccount_SignUp_CPFTakenRollsBack(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PersonCPFInUse(gomock.Any(), domain.CPF("39053344705"), "").Return(true, nil)
	})

	_, err := s.SignUp(context.Background(), "Ana", "Souza", validCPF, email, secret, secret)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestAccount_ChangePassword(t *testing.T) {
	ctrl, st, s := newTestService(t)

	oldHash, err := bcrypt.GenerateFromPassword([]byte("old"), bcrypt.DefaultCost)
	require.NoError(t, err)
	current := domain.Account{Key: "acc-1", PersonKey: personKey, Email: email, PasswordHash: string(oldHash)}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AccountByEmail(gomock.Any(), email).Return(&current, nil)
		tx.EXPECT().UpdateAccountPasswordByEmail(gomock.Any(), email, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, hash string) (*domain.Account, error) {
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)))
				updated := current
				updated.PasswordHash = hash

				return &updated, nil
			},
		)
	})

	updated, err := s.ChangePassword(context.Background(), email, secret, secret)
	require.NoError(t, err)
	require.True(t, updated.VerifyPassword(secret))
}

func TestAccount_ChangePassword_MismatchKeepsCredential(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AccountByEmail(gomock.Any(), email).
			Return(&domain.Account{Key: "acc-1", Email: email, PasswordHash: "hash"}, nil)
		// no update expected
	})

	_, err := s.ChangePassword(context.Background(), email, secret, "different")
	require.ErrorIs(t, err, serrors.ErrInvalid)
}

func TestAccount_ChangePassword_NotFound(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AccountByEmail(gomock.Any(), email).Return(nil, nil)
	})

	_, err := s.ChangePassword(context.Background(), email, secret, secret)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestAccount_Authenticate(t *testing.T) {
	_, st, s := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := domain.Account{Key: "acc-1", Email: email, PasswordHash: string(hash)}

	st.EXPECT().AccountByEmail(gomock.Any(), email).Return(&stored, nil)
	authenticated, err := s.Authenticate(context.Background(), email, secret)
	require.NoError(t, err)
	require.Equal(t, "acc-1", authenticated.Key)

	// wrong secret and missing account fail the same way
	st.EXPECT().AccountByEmail(gomock.Any(), email).Return(&stored, nil)
	_, err = s.Authenticate(context.Background(), email, "wrong")
	require.ErrorIs(t, err, serrors.ErrUnauthenticated)

	st.EXPECT().AccountByEmail(gomock.Any(), email).Return(nil, nil)
	_, err = s.Authenticate(context.Background(), email, secret)
	require.ErrorIs(t, err, serrors.ErrUnauthenticated)
}

func TestAccount_AffiliatedCompany(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().PersonByKey(gomock.Any(), personKey).
		Return(&domain.Person{Key: personKey, CompanyKey: "cmp-1", Role: domain.RoleEmployee}, nil)
	st.EXPECT().CompanyByKey(gomock.Any(), "cmp-1").Return(&domain.Company{Key: "cmp-1"}, nil)

	company, err := s.AffiliatedCompany(context.Background(), personKey)
	require.NoError(t, err)
	require.Equal(t, "cmp-1", company.Key)
}

func TestAccount_AffiliatedCompany_Unaffiliated(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().PersonByKey(gomock.Any(), personKey).Return(&domain.Person{Key: personKey}, nil)

	company, err := s.AffiliatedCompany(context.Background(), personKey)
	require.NoError(t, err)
	require.Nil(t, company)
}

func TestAccount_AffiliatedCompany_PersonMissing(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().PersonByKey(gomock.Any(), personKey).Return(nil, nil)

	_, err := s.AffiliatedCompany(context.Background(), personKey)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
