package handlers

import (
	"errors"
	"log"

	"loja/internal/notifications"
	"loja/internal/repositories"
	"loja/internal/services"
	"loja/internal/viewmodels"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const msgSupplierHasProducts = "O fornecedor possui produtos cadastrados!"

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	service  *services.SupplierService
	validate *validator.Validate
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the supplier routes with the Fiber app.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/fornecedores")
	routes.Get("/", h.HandleGetAll)
	routes.Post("/", h.HandleCreate)
	routes.Get("/:id", h.HandleGetByID)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleGetAll returns every supplier as a flat list of view models.
func (h *SupplierHandler) HandleGetAll(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAllSuppliers()
	if err != nil {
		log.Printf("Error getting all suppliers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve suppliers",
			"error":   err.Error(),
		})
	}
	return c.JSON(viewmodels.ToSupplierViewModels(suppliers))
}

// HandleGetByID returns a single supplier view model, or a bare 404.
func (h *SupplierHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	supplier, err := h.service.GetSupplierByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting supplier by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve supplier",
			"error":   err.Error(),
		})
	}
	return c.JSON(viewmodels.ToSupplierViewModel(*supplier))
}

// HandleCreate creates a new supplier.
func (h *SupplierHandler) HandleCreate(c *fiber.Ctx) error {
	var vm viewmodels.SupplierViewModel
	if err := c.BodyParser(&vm); err != nil {
		log.Printf("Error parsing create supplier body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(vm); err != nil {
		return validationResponse(c, err)
	}

	supplier := vm.ToModel()
	if err := h.service.CreateSupplier(&supplier); err != nil {
		log.Printf("Error creating supplier: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create supplier",
			"error":   err.Error(),
		})
	}

	vm.ID = supplier.ID
	n := notifications.New()
	return customResponse(c, n, vm)
}

// HandleUpdate updates a supplier in place.
func (h *SupplierHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var vm viewmodels.SupplierViewModel
	if err := c.BodyParser(&vm); err != nil {
		log.Printf("Error parsing update supplier body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	n := notifications.New()
	if id != vm.ID {
		n.AddError(msgIDMismatch)
		return customResponse(c, n, nil)
	}

	existing, err := h.service.GetSupplierByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting supplier by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve supplier",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(vm); err != nil {
		return validationResponse(c, err)
	}

	existing.Name = vm.Name
	existing.Document = vm.Document
	existing.Active = vm.Active
	existing.Address = vm.ToModel().Address

	if err := h.service.UpdateSupplier(existing); err != nil {
		log.Printf("Error updating supplier %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update supplier",
			"error":   err.Error(),
		})
	}
	return customResponse(c, n, vm)
}

// HandleDelete removes a supplier. Suppliers that still have products
// are rejected with a notification instead of being removed.
func (h *SupplierHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	supplier, err := h.service.GetSupplierByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting supplier by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve supplier",
			"error":   err.Error(),
		})
	}

	n := notifications.New()
	vm := viewmodels.ToSupplierViewModel(*supplier)
	if err := h.service.DeleteSupplier(id); err != nil {
		if errors.Is(err, services.ErrSupplierHasProducts) {
			n.AddError(msgSupplierHasProducts)
			return customResponse(c, n, nil)
		}
		log.Printf("Error deleting supplier %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete supplier",
			"error":   err.Error(),
		})
	}
	return customResponse(c, n, vm)
}
