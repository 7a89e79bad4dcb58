package repositories

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// Repos bundles the repositories usable inside one unit of work.
type Repos struct {
	Suppliers SupplierRepository
	Products  ProductRepository
}

// Store hands out repositories and runs a function inside a single
// transaction. Repos passed to fn are bound to that transaction; if fn
// returns an error every write it made is rolled back.
type Store interface {
	Repos() Repos
	WithinTx(ctx context.Context, fn func(Repos) error) error
}

// GORMStore is a Store backed by a gorm.DB.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a new instance of GORMStore.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{db: db}
}

// Repos returns repositories bound to the underlying connection pool.
func (s *GORMStore) Repos() Repos {
	return gormRepos(s.db)
}

// WithinTx runs fn inside a database transaction.
func (s *GORMStore) WithinTx(ctx context.Context, fn func(Repos) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(gormRepos(tx))
	})
}

func gormRepos(db *gorm.DB) Repos {
	return Repos{
		Suppliers: NewGORMSupplierRepository(db),
		Products:  NewGORMProductRepository(db),
	}
}

// MemoryStore is an in-memory Store. Transactions are serialised and
// rolled back from a snapshot on error.
type MemoryStore struct {
	suppliers *MockSupplierRepository
	products  *MockProductRepository
	txMu      sync.Mutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	suppliers := NewMockSupplierRepository()
	return &MemoryStore{
		suppliers: suppliers,
		products:  NewMockProductRepository(suppliers),
	}
}

// Repos returns the in-memory repositories. Reads through them do not take
// the transaction lock and may observe writes of a transaction that is
// later rolled back.
func (s *MemoryStore) Repos() Repos {
	return Repos{Suppliers: s.suppliers, Products: s.products}
}

// WithinTx runs fn and restores both repositories if it fails.
func (s *MemoryStore) WithinTx(ctx context.Context, fn func(Repos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	suppliers := s.suppliers.snapshot()
	products := s.products.snapshot()
	if err := fn(s.Repos()); err != nil {
		s.suppliers.restore(suppliers)
		s.products.restore(products)
		return err
	}
	return nil
}
