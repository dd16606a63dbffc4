package services

import (
	"encoding/json"
	"log"

	"loja/internal/models"
	"loja/internal/repositories"
)

// EventPublisher publishes domain events to a message broker. A nil
// publisher disables publishing without changing service behavior.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// ProductService handles business logic related to products. Writes are
// announced on the broker so downstream consumers (catalog sync, image
// cleanup) can react; publish failures are logged, never surfaced.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products with their supplier.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAllWithSupplier()
}

// GetProductByID retrieves a single product with its supplier.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByIDWithSupplier(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publishEvent("produto.criado", product)
	return nil
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.publishEvent("produto.atualizado", product)
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("produto.removido", &models.Product{ID: id})
	return nil
}

func (s *ProductService) publishEvent(routingKey string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"productId":  product.ID,
		"supplierId": product.SupplierID,
		"name":       product.Name,
		"price":      product.Price,
		"active":     product.Active,
	})
	if err != nil {
		log.Printf("Failed to marshal product event: %v", err)
		return
	}
	if err := s.publisher.Publish("", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", routingKey, product.ID, err)
	}
}
