package repositories

import (
	"errors"

	"loja/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
// Callers are expected to check it with errors.Is.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the interface for product data access.
// The joined reads always carry the supplier so the mapping layer can
// compute the supplier name without a second round trip.
type ProductRepository interface {
	GetAllWithSupplier() ([]models.Product, error)
	GetByIDWithSupplier(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	CountBySupplier(supplierID string) (int64, error)
}
