package models

import "time"

// Supplier represents a company that supplies products.
type Supplier struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	PhoneNum  string `gorm:"column:phone_num;type:varchar(50)"`
	Email     string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
