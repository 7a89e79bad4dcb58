package repositories

import (
	"context"
	"fmt"

	"productorders/internal/models"
	"productorders/internal/shared"

	"gorm.io/gorm"
)

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{
		db: db,
	}
}

// GetAll retrieves all suppliers ordered by ID.
func (r *GORMSupplierRepository) GetAll(ctx context.Context) ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&suppliers).Error; err != nil {
		return nil, translateError(err, "failed to get all suppliers")
	}
	return suppliers, nil
}

// GetByID retrieves a single supplier by its ID.
func (r *GORMSupplierRepository) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "supplier with ID %d", id)
	}
	return &supplier, nil
}

// Create inserts a new supplier.
func (r *GORMSupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return translateError(err, "failed to create supplier")
	}
	return nil
}

// Update overwrites the mutable columns of an existing supplier.
func (r *GORMSupplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	res := r.db.WithContext(ctx).
		Model(supplier).
		Select("Name", "PhoneNum", "Email").
		Updates(supplier)
	if res.Error != nil {
		return translateError(res.Error, "failed to update supplier")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier with ID %d not found for update: %w", supplier.ID, shared.ErrNotFound)
	}
	return nil
}

// Delete removes a supplier by its ID. Products referencing it are left in
// place.
func (r *GORMSupplierRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Supplier{}, "id = ?", id).Error; err != nil {
		return translateError(err, "failed to delete supplier")
	}
	return nil
}

// Exists reports whether a supplier with the given ID is stored.
func (r *GORMSupplierRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Supplier{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateError(err, "failed to check supplier %d", id)
	}
	return count > 0, nil
}
