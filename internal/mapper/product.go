package mapper

import (
	"fmt"

	"productorders/internal/dto"
	"productorders/internal/models"
	"productorders/internal/shared"
)

// ProductToView converts a product record to its external view, exposing
// the supplier by identifier.
func ProductToView(product *models.Product) (*dto.ProductView, error) {
	if product == nil {
		return nil, fmt.Errorf("product cannot be nil: %w", shared.ErrInvalidArgument)
	}
	return &dto.ProductView{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Stock:      product.Stock,
		SupplierID: supplierID(product),
	}, nil
}

// ProductToViews converts records element-wise, preserving order. The
// result is never nil.
func ProductToViews(products []models.Product) []dto.ProductView {
	views := make([]dto.ProductView, 0, len(products))
	for i := range products {
		view, _ := ProductToView(&products[i])
		views = append(views, *view)
	}
	return views
}

// NewProduct builds a fresh record bound to supplier. The view's identifier
// is ignored.
func NewProduct(view *dto.ProductView, supplier *models.Supplier) *models.Product {
	product := &models.Product{}
	MergeProduct(product, view, supplier)
	return product
}

// MergeProduct overwrites name, price, stock and the supplier association.
// The product's identifier is left untouched.
func MergeProduct(product *models.Product, view *dto.ProductView, supplier *models.Supplier) {
	product.Name = view.Name
	product.Price = view.Price
	product.Stock = view.Stock
	product.Supplier = supplier
	if supplier != nil {
		product.SupplierID = supplier.ID
	}
}

func supplierID(product *models.Product) int64 {
	if product.SupplierID == 0 && product.Supplier != nil {
		return product.Supplier.ID
	}
	return product.SupplierID
}
