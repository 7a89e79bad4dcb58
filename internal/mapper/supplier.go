// Package mapper translates between persisted records and their external
// views. Nothing here touches a store.
package mapper

import (
	"fmt"

	"productorders/internal/dto"
	"productorders/internal/models"
	"productorders/internal/shared"
)

// SupplierToView converts a supplier record to its external view.
func SupplierToView(supplier *models.Supplier) (*dto.SupplierView, error) {
	if supplier == nil {
		return nil, fmt.Errorf("supplier cannot be nil: %w", shared.ErrInvalidArgument)
	}
	return &dto.SupplierView{
		ID:       supplier.ID,
		Name:     supplier.Name,
		PhoneNum: supplier.PhoneNum,
		Email:    supplier.Email,
	}, nil
}

// SupplierToViews converts records element-wise, preserving order. The
// result is never nil.
func SupplierToViews(suppliers []models.Supplier) []dto.SupplierView {
	views := make([]dto.SupplierView, 0, len(suppliers))
	for i := range suppliers {
		view, _ := SupplierToView(&suppliers[i])
		views = append(views, *view)
	}
	return views
}

// NewSupplier builds a fresh record from a view. The view's identifier is
// ignored; the store assigns one on create.
func NewSupplier(view *dto.SupplierView) *models.Supplier {
	supplier := &models.Supplier{}
	MergeSupplier(supplier, view)
	return supplier
}

// MergeSupplier overwrites the mutable fields of supplier with the view's.
func MergeSupplier(supplier *models.Supplier, view *dto.SupplierView) {
	supplier.Name = view.Name
	supplier.PhoneNum = view.PhoneNum
	supplier.Email = view.Email
}
