package handlers

import (
	"encoding/base64"
	"errors"
	"log"

	"loja/internal/notifications"
	"loja/internal/repositories"
	"loja/internal/services"
	"loja/internal/storage"
	"loja/internal/viewmodels"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Notification texts for the image upload workflow.
const (
	msgMissingImage = "Forneça uma imagem para este produto!"
	msgInvalidImage = "Imagem em formato inválido!"
	msgFileExists   = "Já existe um arquivo com este nome!"
	msgImageWrite   = "Falha ao gravar a imagem do produto!"
	msgIDMismatch   = "Os Ids informados não são iguais"
)

// ProductHandler handles HTTP requests for products, including the
// image upload workflow. Base64 uploads land in imageStore, multipart
// uploads in assetsStore; the split mirrors the layout existing clients
// already read from.
type ProductHandler struct {
	repo        repositories.ProductRepository
	service     *services.ProductService
	imageStore  *storage.FileStore
	assetsStore *storage.FileStore
	validate    *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(repo repositories.ProductRepository, service *services.ProductService, imageStore, assetsStore *storage.FileStore) *ProductHandler {
	return &ProductHandler{
		repo:        repo,
		service:     service,
		imageStore:  imageStore,
		assetsStore: assetsStore,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/produtos")
	routes.Get("/", h.HandleGetAll)
	routes.Post("/", h.HandleCreate)
	routes.Post("/imagem", h.HandleAddImage)
	routes.Post("/Adicionar", h.HandleCreateMultipart)
	routes.Get("/:id", h.HandleGetByID)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleGetAll returns every product joined with its supplier as a flat
// list of view models. No envelope, no pagination.
func (h *ProductHandler) HandleGetAll(c *fiber.Ctx) error {
	products, err := h.repo.GetAllWithSupplier()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(viewmodels.ToProductViewModels(products))
}

// HandleGetByID returns a single product view model, or a bare 404 when
// the id is unknown or not a UUID.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	product, err := h.repo.GetByIDWithSupplier(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting product by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(viewmodels.ToProductViewModel(*product))
}

// HandleCreate creates a product from a view model carrying a base64
// image payload. Any upload failure short-circuits before persistence.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var vm viewmodels.ProductViewModel
	if err := c.BodyParser(&vm); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(vm); err != nil {
		return validationResponse(c, err)
	}

	n := notifications.New()
	imageName := uuid.New().String() + "_" + vm.Image
	if !h.uploadBase64(n, vm.ImageUpload, imageName) {
		return customResponse(c, n, vm)
	}

	vm.Image = imageName
	product := vm.ToModel()
	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	vm.ID = product.ID
	vm.ImageUpload = ""
	return customResponse(c, n, vm)
}

// HandleCreateMultipart creates a product from a multipart form where
// the image arrives as a streamed file part. The stored name is the
// client-supplied file name behind a random prefix.
func (h *ProductHandler) HandleCreateMultipart(c *fiber.Ctx) error {
	var vm viewmodels.ProductImageViewModel
	if err := c.BodyParser(&vm); err != nil {
		log.Printf("Error parsing multipart create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(vm); err != nil {
		return validationResponse(c, err)
	}

	n := notifications.New()
	prefix := uuid.New().String() + "_"

	file, err := c.FormFile("imageUpload")
	if err != nil || file.Size == 0 {
		n.AddError(msgMissingImage)
		return customResponse(c, n, vm)
	}

	imageName := prefix + file.Filename
	src, err := file.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not read uploaded file",
			"error":   err.Error(),
		})
	}
	defer src.Close()

	if err := h.assetsStore.SaveStream(imageName, src); err != nil {
		if errors.Is(err, storage.ErrFileExists) {
			n.AddError(msgFileExists)
		} else {
			log.Printf("Error storing uploaded file %s: %v", imageName, err)
			n.AddError(msgImageWrite)
		}
		return customResponse(c, n, vm)
	}

	vm.Image = imageName
	product := vm.ToModel()
	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	vm.ID = product.ID
	return customResponse(c, n, vm)
}

// HandleAddImage is a placeholder endpoint: it accepts a raw upload and
// echoes the received file descriptor without storing anything.
func (h *ProductHandler) HandleAddImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid file upload",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"filename":    file.Filename,
		"size":        file.Size,
		"contentType": file.Header.Get("Content-Type"),
	})
}

// HandleUpdate updates a product in place. The stored image filename is
// copied onto the incoming view model before validation so that "no new
// image supplied" still validates; the stored image only changes when a
// new payload uploads successfully.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var vm viewmodels.ProductViewModel
	if err := c.BodyParser(&vm); err != nil {
		log.Printf("Error parsing update product body: %v", err)
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

	existing, err := h.repo.GetByIDWithSupplier(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting product by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}

	vm.Image = existing.Image
	if err := h.validate.Struct(vm); err != nil {
		return validationResponse(c, err)
	}

	if vm.ImageUpload != "" {
		imageName := uuid.New().String() + "_" + vm.Image
		if !h.uploadBase64(n, vm.ImageUpload, imageName) {
			return customResponse(c, n, nil)
		}
		existing.Image = imageName
	}

	existing.Name = vm.Name
	existing.Description = vm.Description
	existing.Price = vm.Price
	existing.Active = vm.Active

	if err := h.service.UpdateProduct(existing); err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	// The echoed view model still carries the pre-update image name even
	// when a new image was stored; existing clients depend on this.
	vm.ImageUpload = ""
	return customResponse(c, n, vm)
}

// HandleDelete removes a product and returns its last known view form
// as confirmation.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	product, err := h.repo.GetByIDWithSupplier(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting product by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}

	vm := viewmodels.ToProductViewModel(*product)
	if err := h.service.DeleteProduct(id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}

	n := notifications.New()
	return customResponse(c, n, vm)
}

// uploadBase64 decodes and stores a base64 image payload under
// imageName, queueing a notification on every failure path. The
// existence guard is a name-collision check, not a content check.
func (h *ProductHandler) uploadBase64(n *notifications.Notifier, encoded, imageName string) bool {
	if encoded == "" {
		n.AddError(msgMissingImage)
		return false
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		n.AddError(msgInvalidImage)
		return false
	}
	if len(data) == 0 {
		n.AddError(msgMissingImage)
		return false
	}

	if err := h.imageStore.Save(imageName, data); err != nil {
		if errors.Is(err, storage.ErrFileExists) {
			n.AddError(msgFileExists)
		} else {
			log.Printf("Error storing image %s: %v", imageName, err)
			n.AddError(msgImageWrite)
		}
		return false
	}
	return true
}
