package mapper

import (
	"fmt"

	"productorders/internal/dto"
	"productorders/internal/models"
	"productorders/internal/shared"
)

// ProjectProductSupplier flattens a product and its loaded supplier into
// the joined view. A product whose supplier association did not load (the
// supplier was deleted after the product was written) yields ErrNotFound.
func ProjectProductSupplier(product *models.Product) (*dto.ProductSupplierView, error) {
	if product == nil {
		return nil, fmt.Errorf("product cannot be nil: %w", shared.ErrInvalidArgument)
	}
	supplier := product.Supplier
	if supplier == nil || supplier.ID == 0 {
		return nil, fmt.Errorf("supplier %d of product %d: %w", product.SupplierID, product.ID, shared.ErrNotFound)
	}
	return &dto.ProductSupplierView{
		ProductName:      product.Name,
		ProductPrice:     product.Price,
		ProductStock:     product.Stock,
		SupplierName:     supplier.Name,
		SupplierPhoneNum: supplier.PhoneNum,
		SupplierEmail:    supplier.Email,
	}, nil
}
