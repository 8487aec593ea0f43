package property_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lugo/internal/property"
	"lugo/pkg/domain"
	"lugo/pkg/serrors"
	"lugo/pkg/storage"
	mockstorage "lugo/pkg/storage/mock"
)

const (
	accountKey  = "acc-1"
	companyKey  = "cmp-1"
	personKey   = "per-1"
	ownerKey    = "per-2"
	propertyKey = "prp-1"
)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, property.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, property.New(st)
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

func intPtr(v int) *int { return &v }

func TestProperty_Register_SelfOwned(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
			Return(&storage.Actor{PersonKey: personKey}, nil)
		tx.EXPECT().StoreProperty(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.Property) (*domain.Property, error) {
				require.Equal(t, personKey, p.OwnerKey)

				return &p, nil
			},
		)
	})

	created, err := s.Register(context.Background(), accountKey, "Rua A, 100", intPtr(80), "")
	require.NoError(t, err)
	require.Equal(t, personKey, created.OwnerKey)
}

func TestProperty_Register_ForClient(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
			Return(&storage.Actor{PersonKey: personKey, CompanyKey: companyKey, Role: domain.RoleEmployee}, nil)
		tx.EXPECT().PersonByKey(gomock.Any(), ownerKey).
			Return(&domain.Person{Key: ownerKey, CompanyKey: companyKey, Role: domain.RoleClient}, nil)
		tx.EXPECT().StoreProperty(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.Property) (*domain.Property, error) {
				require.Equal(t, ownerKey, p.OwnerKey)

				return &p, nil
			},
		)
	})

	_, err := s.Register(context.Background(), accountKey, "Rua A, 100", nil, ownerKey)
	require.NoError(t, err)
}

func TestProperty_Register_ForStrangerForbidden(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
			Return(&storage.Actor{PersonKey: personKey, CompanyKey: companyKey, Role: domain.RoleEmployee}, nil)
		// owner belongs to another tenant
		tx.EXPECT().PersonByKey(gomock.Any(), ownerKey).
			Return(&domain.Person{Key: ownerKey, CompanyKey: "other-cmp", Role: domain.RoleClient}, nil)
	})

	_, err := s.Register(context.Background(), accountKey, "Rua A, 100", nil, ownerKey)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestProperty_Register_OwnerMissing(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
			Return(&storage.Actor{PersonKey: personKey, CompanyKey: companyKey, Role: domain.RoleEmployee}, nil)
		tx.EXPECT().PersonByKey(gomock.Any(), ownerKey).Return(nil, nil)
	})

	_, err := s.Register(context.Background(), accountKey, "Rua A, 100", nil, ownerKey)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestProperty_Register_InvalidArea(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
			Return(&storage.Actor{PersonKey: personKey}, nil)
	})

	_, err := s.Register(context.Background(), accountKey, "Rua A, 100", intPtr(0), "")
	require.ErrorIs(t, err, serrors.ErrInvalid)
}

func TestProperty_Alter_ByEmployee(t *testing.T) {
	ctrl, st, s := newTestService(t)

	graph := storage.PropertyGraph{
		Property:        domain.Property{Key: propertyKey, OwnerKey: ownerKey, Address: "Rua A, 100"},
		OwnerCompanyKey: companyKey,
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
			Return(&storage.Actor{PersonKey: personKey, CompanyKey: companyKey, Role: domain.RoleEmployee}, nil)
		tx.EXPECT().PropertyByKey(gomock.Any(), propertyKey).Return(&graph, nil)
		tx.EXPECT().UpdatePropertyByKey(gomock.Any(), propertyKey, storage.PropertyUpdates{
			Address:      "Rua B, 200",
			SquareMeters: intPtr(90),
		}).DoAndReturn(
			func(_ context.Context, key string, updates storage.PropertyUpdates) (*domain.Property, error) {
				return &domain.Property{Key: key, OwnerKey: ownerKey, Address: updates.Address}, nil
			},
		)
	})

	updated, err := s.Alter(context.Background(), accountKey, propertyKey, "Rua B, 200", intPtr(90))
	require.NoError(t, err)
	require.Equal(t, "Rua B, 200", updated.Address)
}

func TestProperty_Alter_StrangerForbidden(t *testing.T) {
	ctrl, st, s := newTestService(t)

	graph := storage.PropertyGraph{
		Property:        domain.Property{Key: propertyKey, OwnerKey: ownerKey},
		OwnerCompanyKey: "other-cmp",
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
			Return(&storage.Actor{PersonKey: personKey, CompanyKey: companyKey, Role: domain.RoleEmployee}, nil)
		tx.EXPECT().PropertyByKey(gomock.Any(), propertyKey).Return(&graph, nil)
	})

	_, err := s.Alter(context.Background(), accountKey, propertyKey, "Rua B, 200", nil)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestProperty_Alter_SameValues(t *testing.T) {
	ctrl, st, s := newTestService(t)

	graph := storage.PropertyGraph{
		Property: domain.Property{
			Key:          propertyKey,
			OwnerKey:     ownerKey,
			Address:      "Rua A, 100",
			SquareMeters: intPtr(80),
		},
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
			Return(&storage.Actor{PersonKey: ownerKey}, nil)
		tx.EXPECT().PropertyByKey(gomock.Any(), propertyKey).Return(&graph, nil)
		tx.EXPECT().UpdatePropertyByKey(gomock.Any(), propertyKey, storage.PropertyUpdates{
			Address:      "Rua A, 100",
			SquareMeters: intPtr(80),
		}).Return(&graph.Property, nil)
	})

	updated, err := s.Alter(context.Background(), accountKey, propertyKey, "Rua A, 100", intPtr(80))
	require.NoError(t, err)
	require.Equal(t, "Rua A, 100", updated.Address)
	require.Equal(t, 80, *updated.SquareMeters)
}

func TestProperty_Owner_HidesForeignProperty(t *testing.T) {
	_, st, s := newTestService(t)

	graph := storage.PropertyGraph{
		Property:        domain.Property{Key: propertyKey, OwnerKey: ownerKey},
		OwnerCompanyKey: "other-cmp",
	}

	st.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
		Return(&storage.Actor{PersonKey: personKey, CompanyKey: companyKey, Role: domain.RoleEmployee}, nil)
	st.EXPECT().PropertyByKey(gomock.Any(), propertyKey).Return(&graph, nil)

	// not forbidden: the property must look nonexistent
	_, err := s.Owner(context.Background(), accountKey, propertyKey)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.NotErrorIs(t, err, serrors.ErrForbidden)
}

func TestProperty_Owner(t *testing.T) {
	_, st, s := newTestService(t)

	graph := storage.PropertyGraph{
		Property:        domain.Property{Key: propertyKey, OwnerKey: ownerKey},
		OwnerCompanyKey: companyKey,
	}

	st.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
		Return(&storage.Actor{PersonKey: personKey, CompanyKey: companyKey, Role: domain.RoleEmployee}, nil)
	st.EXPECT().PropertyByKey(gomock.Any(), propertyKey).Return(&graph, nil)
	st.EXPECT().PersonByKey(gomock.Any(), ownerKey).
		Return(&domain.Person{Key: ownerKey, CompanyKey: companyKey, Role: domain.RoleClient}, nil)

	owner, err := s.Owner(context.Background(), accountKey, propertyKey)
	require.NoError(t, err)
	require.Equal(t, ownerKey, owner.Key)
}

func TestProperty_OfOwner_Self(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
		Return(&storage.Actor{PersonKey: ownerKey}, nil)
	st.EXPECT().PersonByKey(gomock.Any(), ownerKey).Return(&domain.Person{Key: ownerKey}, nil)
	st.EXPECT().PropertiesByOwner(gomock.Any(), ownerKey).
		Return([]domain.Property{{Key: propertyKey, OwnerKey: ownerKey}}, nil)

	properties, err := s.OfOwner(context.Background(), accountKey, ownerKey)
	require.NoError(t, err)
	require.Len(t, properties, 1)
}

func TestProperty_OfOwner_HidesForeignOwner(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).
		Return(&storage.Actor{PersonKey: personKey, CompanyKey: companyKey, Role: domain.RoleEmployee}, nil)
	st.EXPECT().PersonByKey(gomock.Any(), ownerKey).
		Return(&domain.Person{Key: ownerKey, CompanyKey: "other-cmp"}, nil)

	_, err := s.OfOwner(context.Background(), accountKey, ownerKey)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestProperty_Register_Unauthenticated(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActorByAccountKey(gomock.Any(), accountKey).Return(nil, nil)
	})

	_, err := s.Register(context.Background(), accountKey, "Rua A, 100", nil, "")
	require.ErrorIs(t, err, serrors.ErrUnauthenticated)
}
