// Package dto contains the JSON representations exchanged over HTTP.
package dto

// SupplierView is the external representation of a supplier.
type SupplierView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required,max=255"`
	PhoneNum string `json:"phoneNum" validate:"omitempty,max=50"`
	Email    string `json:"email" validate:"omitempty,max=255"`
}

// ProductView is the external representation of a product. The supplier is
// referenced by identifier only, never embedded.
type ProductView struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name" validate:"required,max=255"`
	Price      float64 `json:"price" validate:"gte=0"`
	Stock      float64 `json:"stock" validate:"gte=0"`
	SupplierID int64   `json:"supplierId"`
}

// ProductSupplierView is the read-only projection of a product together
// with the contact fields of its supplier.
type ProductSupplierView struct {
	ProductName      string  `json:"product_name"`
	ProductPrice     float64 `json:"product_price"`
	ProductStock     float64 `json:"product_stock"`
	SupplierName     string  `json:"supplier_name"`
	SupplierPhoneNum string  `json:"supplier_phoneNum"`
	SupplierEmail    string  `json:"supplier_email"`
}
