package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"productorders/internal/models"
	"productorders/internal/shared"
)

// MockSupplierRepository is an in-memory implementation of SupplierRepository.
type MockSupplierRepository struct {
	suppliers map[int64]models.Supplier
	nextID    int64
	mu        sync.RWMutex
}

// NewMockSupplierRepository creates a new instance of MockSupplierRepository.
func NewMockSupplierRepository() *MockSupplierRepository {
	return &MockSupplierRepository{
		suppliers: make(map[int64]models.Supplier),
	}
}

// GetAll returns all suppliers ordered by ID.
func (r *MockSupplierRepository) GetAll(_ context.Context) ([]models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplierList := make([]models.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		supplierList = append(supplierList, s)
	}
	sort.Slice(supplierList, func(i, j int) bool { return supplierList[i].ID < supplierList[j].ID })
	return supplierList, nil
}

// GetByID returns a supplier by its ID.
func (r *MockSupplierRepository) GetByID(_ context.Context, id int64) (*models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplier, ok := r.suppliers[id]
	if !ok {
		return nil, fmt.Errorf("supplier with ID %d: %w", id, shared.ErrNotFound)
	}
	return &supplier, nil
}

// Create adds a new supplier, assigning the next ID when none is set.
func (r *MockSupplierRepository) Create(_ context.Context, supplier *models.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if supplier.ID == 0 {
		r.nextID++
		supplier.ID = r.nextID
	} else if _, ok := r.suppliers[supplier.ID]; ok {
		return fmt.Errorf("supplier with ID %d already exists: %w", supplier.ID, shared.ErrConflict)
	} else if supplier.ID > r.nextID {
		r.nextID = supplier.ID
	}
	now := time.Now()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now
	r.suppliers[supplier.ID] = *supplier
	return nil
}

// Update modifies an existing supplier.
func (r *MockSupplierRepository) Update(_ context.Context, supplier *models.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.suppliers[supplier.ID]
	if !ok {
		return fmt.Errorf("supplier with ID %d not found for update: %w", supplier.ID, shared.ErrNotFound)
	}
	existing.Name = supplier.Name
	existing.PhoneNum = supplier.PhoneNum
	existing.Email = supplier.Email
	existing.UpdatedAt = time.Now()
	r.suppliers[supplier.ID] = existing
	*supplier = existing
	return nil
}

// Delete removes a supplier by its ID.
func (r *MockSupplierRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.suppliers, id)
	return nil
}

// Exists reports whether a supplier with the given ID is stored.
func (r *MockSupplierRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.suppliers[id]
	return ok, nil
}

func (r *MockSupplierRepository) lookup(id int64) (models.Supplier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.suppliers[id]
	return s, ok
}

type supplierSnapshot struct {
	suppliers map[int64]models.Supplier
	nextID    int64
}

func (r *MockSupplierRepository) snapshot() supplierSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make(map[int64]models.Supplier, len(r.suppliers))
	for id, s := range r.suppliers {
		copied[id] = s
	}
	return supplierSnapshot{suppliers: copied, nextID: r.nextID}
}

func (r *MockSupplierRepository) restore(snap supplierSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.suppliers = snap.suppliers
	r.nextID = snap.nextID
}
