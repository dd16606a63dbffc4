package models

import "gorm.io/gorm"

// Address is the supplier address value object. It has no identity of
// its own and is stored inline on the suppliers table.
type Address struct {
	Street     string `json:"street" validate:"required,min=2,max=200"`
	Number     string `json:"number" validate:"required,min=1,max=50"`
	Complement string `json:"complement" validate:"omitempty,max=250"`
	ZipCode    string `json:"zipCode" validate:"required,len=8"`
	District   string `json:"district" validate:"required,min=2,max=100"`
	City       string `json:"city" validate:"required,min=2,max=100"`
	State      string `json:"state" validate:"required,min=2,max=50"`
}

// Supplier represents a product supplier. Products reference a supplier
// but do not own it; a supplier outlives its products.
type Supplier struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" validate:"required,min=2,max=200"`
	Document   string  `json:"document" gorm:"uniqueIndex;type:varchar(14)" validate:"required,min=11,max=14"`
	Active     bool    `json:"active"`
	Address    Address `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
