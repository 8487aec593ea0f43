// Package storage defines the persistence port consumed by the use-case
// services: keyed lookups with relationship expansion, insert/update
// operations, and a transactional unit of work grouping them atomically.
// Backends (PostgreSQL) provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is the composite of every aggregate-specific capability the
// services need. Both transactional and non-transactional handles expose it.
type AllStorage interface {
	CompanyStorage
	PersonStorage
	PropertyStorage
	ListingStorage
	AccountStorage
}

// TxStorage is a storage handle bound to an open database transaction.
// Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is the non-transactional handle with transaction lifecycle
// management. Every service mutation goes through Begin or WithTx; nothing is
// written outside an active transaction.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin opens a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx opens a transaction, runs cb against it, and commits when cb
	// returns nil. Any error from cb (including authorization failures raised
	// mid-transaction) rolls everything back.
	WithTx(ctx context.Context, cb func(tx AllStorage) error) error
}
