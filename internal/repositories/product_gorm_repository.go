package repositories

import (
	"context"
	"fmt"

	"productorders/internal/models"
	"productorders/internal/shared"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products ordered by ID.
func (r *GORMProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, translateError(err, "failed to get all products")
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "product with ID %d", id)
	}
	return &product, nil
}

// GetWithSupplier retrieves a product joined with its supplier in a single
// LEFT JOIN query.
func (r *GORMProductRepository) GetWithSupplier(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Joins("Supplier").
		First(&product, "products.id = ?", id).Error
	if err != nil {
		return nil, translateError(err, "product with ID %d", id)
	}
	return &product, nil
}

// Create inserts a new product. The supplier row is never written through
// the association.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return translateError(err, "failed to create product")
	}
	return nil
}

// Update overwrites the mutable columns of an existing product.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).
		Model(product).
		Select("Name", "Price", "Stock", "SupplierID").
		Updates(product)
	if res.Error != nil {
		return translateError(res.Error, "failed to update product")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d not found for update: %w", product.ID, shared.ErrNotFound)
	}
	return nil
}

// Delete removes a product by its ID. Deleting a missing product is not
// an error.
func (r *GORMProductRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return translateError(err, "failed to delete product")
	}
	return nil
}

// Exists reports whether a product with the given ID is stored.
func (r *GORMProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateError(err, "failed to check product %d", id)
	}
	return count > 0, nil
}
