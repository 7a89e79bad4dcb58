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

// MockProductRepository is an in-memory implementation of ProductRepository.
// Products hold their supplier by ID only; GetWithSupplier resolves it
// against the supplier repository it was built with.
type MockProductRepository struct {
	products  map[int64]models.Product
	nextID    int64
	suppliers *MockSupplierRepository
	mu        sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository(suppliers *MockSupplierRepository) *MockProductRepository {
	return &MockProductRepository{
		products:  make(map[int64]models.Product),
		suppliers: suppliers,
	}
}

// GetAll returns all products ordered by ID.
func (r *MockProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList, nil
}

// GetByID returns a product by its ID, without its supplier loaded.
func (r *MockProductRepository) GetByID(_ context.Context, id int64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, shared.ErrNotFound)
	}
	return &product, nil
}

// GetWithSupplier returns a product with its supplier attached, or with a
// nil Supplier when the referenced supplier is gone.
func (r *MockProductRepository) GetWithSupplier(ctx context.Context, id int64) (*models.Product, error) {
	product, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.suppliers != nil {
		if supplier, ok := r.suppliers.lookup(product.SupplierID); ok {
			product.Supplier = &supplier
		}
	}
	return product, nil
}

// Create adds a new product, assigning the next ID when none is set.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		r.nextID++
		product.ID = r.nextID
	} else if _, ok := r.products[product.ID]; ok {
		return fmt.Errorf("product with ID %d already exists: %w", product.ID, shared.ErrConflict)
	} else if product.ID > r.nextID {
		r.nextID = product.ID
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = stripSupplier(*product)
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %d not found for update: %w", product.ID, shared.ErrNotFound)
	}
	existing.Name = product.Name
	existing.Price = product.Price
	existing.Stock = product.Stock
	existing.SupplierID = product.SupplierID
	existing.UpdatedAt = time.Now()
	r.products[product.ID] = existing
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = existing.UpdatedAt
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}

// Exists reports whether a product with the given ID is stored.
func (r *MockProductRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.products[id]
	return ok, nil
}

func stripSupplier(p models.Product) models.Product {
	if p.Supplier != nil && p.SupplierID == 0 {
		p.SupplierID = p.Supplier.ID
	}
	p.Supplier = nil
	return p
}

type productSnapshot struct {
	products map[int64]models.Product
	nextID   int64
}

func (r *MockProductRepository) snapshot() productSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make(map[int64]models.Product, len(r.products))
	for id, p := range r.products {
		copied[id] = p
	}
	return productSnapshot{products: copied, nextID: r.nextID}
}

func (r *MockProductRepository) restore(snap productSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = snap.products
	r.nextID = snap.nextID
}
