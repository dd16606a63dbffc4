package models

import "gorm.io/gorm"

// Product represents a product offered by a supplier.
// Image holds only the stored filename; the bytes live on disk.
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	SupplierID  string   `json:"supplierId" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Supplier    Supplier `json:"supplier" gorm:"foreignKey:SupplierID"`
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"required,min=2,max=1000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Active      bool     `json:"active"`
	Image       string   `json:"image"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
