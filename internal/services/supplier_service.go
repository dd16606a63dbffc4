package services

import (
	"errors"
	"fmt"

	"loja/internal/models"
	"loja/internal/repositories"
)

// ErrSupplierHasProducts is returned when deleting a supplier that still
// has products referencing it.
var ErrSupplierHasProducts = errors.New("supplier has registered products")

// SupplierService handles business logic related to suppliers.
type SupplierService struct {
	repo        repositories.SupplierRepository
	productRepo repositories.ProductRepository
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(repo repositories.SupplierRepository, productRepo repositories.ProductRepository) *SupplierService {
	return &SupplierService{
		repo:        repo,
		productRepo: productRepo,
	}
}

// GetAllSuppliers retrieves all suppliers.
func (s *SupplierService) GetAllSuppliers() ([]models.Supplier, error) {
	return s.repo.GetAll()
}

// GetSupplierByID retrieves a single supplier by its ID.
func (s *SupplierService) GetSupplierByID(id string) (*models.Supplier, error) {
	return s.repo.GetByID(id)
}

// CreateSupplier creates a new supplier.
func (s *SupplierService) CreateSupplier(supplier *models.Supplier) error {
	return s.repo.Create(supplier)
}

// UpdateSupplier updates an existing supplier.
func (s *SupplierService) UpdateSupplier(supplier *models.Supplier) error {
	return s.repo.Update(supplier)
}

// DeleteSupplier deletes a supplier. Suppliers that still have products
// cannot be removed.
func (s *SupplierService) DeleteSupplier(id string) error {
	count, err := s.productRepo.CountBySupplier(id)
	if err != nil {
		return fmt.Errorf("failed to check supplier products: %w", err)
	}
	if count > 0 {
		return ErrSupplierHasProducts
	}
	return s.repo.Delete(id)
}
