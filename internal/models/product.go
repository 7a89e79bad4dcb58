package models

import "time"

// Product represents a product held in stock. Every product belongs to
// exactly one supplier.
type Product struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Price      float64   `gorm:"not null;default:0"`
	Stock      float64   `gorm:"not null;default:0"`
	SupplierID int64     `gorm:"column:supplier_id;index;not null"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
