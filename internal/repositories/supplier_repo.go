package repositories

import (
	"context"

	"productorders/internal/models"
)

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	GetAll(ctx context.Context) ([]models.Supplier, error)
	GetByID(ctx context.Context, id int64) (*models.Supplier, error)
	Create(ctx context.Context, supplier *models.Supplier) error
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
