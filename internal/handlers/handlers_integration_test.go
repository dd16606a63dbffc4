package handlers_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"loja/internal/handlers"
	"loja/internal/middleware"
	"loja/internal/models"
	"loja/internal/repositories"
	"loja/internal/services"
	"loja/internal/storage"
	"loja/internal/viewmodels"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// envelope is the uniform success/failure wrapper every endpoint returns.
// Errors is raw because the two failure shapes differ: a string list for
// notifications and a field map for validation errors.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

type testEnv struct {
	app          *fiber.App
	db           *gorm.DB
	productRepo  repositories.ProductRepository
	supplierRepo repositories.SupplierRepository
	userRepo     repositories.UserRepository
	authService  *services.AuthService
	imageDir     string
	assetsDir    string
}

// setupApp boots the full handler stack against a per-test in-memory
// SQLite database and per-test upload directories.
func setupApp(t *testing.T, requireAuth bool) *testEnv {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Supplier{}, &models.Product{}, &models.User{}))

	imageDir := t.TempDir()
	assetsDir := t.TempDir()
	imageStore, err := storage.New(imageDir)
	assert.NoError(t, err)
	assetsStore, err := storage.New(assetsDir)
	assert.NoError(t, err)

	productRepo := repositories.NewGORMProductRepository(db)
	supplierRepo := repositories.NewGORMSupplierRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	productService := services.NewProductService(productRepo, nil) // nil publisher: no broker in tests
	supplierService := services.NewSupplierService(supplierRepo, productRepo)
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))

	productHandler := handlers.NewProductHandler(productRepo, productService, imageStore, assetsStore)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{BodyLimit: 30000000})
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)

	resourceRoutes := fiber.Router(api)
	if requireAuth {
		resourceRoutes = api.Group("", middleware.AuthRequired(authService))
	}
	productHandler.RegisterRoutes(resourceRoutes)
	supplierHandler.RegisterRoutes(resourceRoutes)

	return &testEnv{
		app:          app,
		db:           db,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		userRepo:     userRepo,
		authService:  authService,
		imageDir:     imageDir,
		assetsDir:    assetsDir,
	}
}

func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1) // -1 for no timeout
	assert.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func notificationErrors(t *testing.T, env envelope) []string {
	t.Helper()
	var messages []string
	assert.NoError(t, json.Unmarshal(env.Errors, &messages))
	return messages
}

func seedSupplier(t *testing.T, env *testEnv, document string) *models.Supplier {
	t.Helper()
	supplier := &models.Supplier{
		Name:     "Papelaria Central",
		Document: document,
		Active:   true,
		Address: models.Address{
			Street:   "Rua das Flores",
			Number:   "123",
			ZipCode:  "01001000",
			District: "Centro",
			City:     "São Paulo",
			State:    "SP",
		},
	}
	assert.NoError(t, env.supplierRepo.Create(supplier))
	return supplier
}

func seedProduct(t *testing.T, env *testEnv, supplierID, image string) *models.Product {
	t.Helper()
	product := &models.Product{
		SupplierID:  supplierID,
		Name:        "Caneta",
		Description: "Caneta esferográfica azul",
		Price:       4.5,
		Active:      true,
		Image:       image,
	}
	assert.NoError(t, env.productRepo.Create(product))
	return product
}

func productBody(supplierID string) map[string]interface{} {
	return map[string]interface{}{
		"supplierId":    supplierID,
		"name":          "Caderno",
		"description":   "Caderno universitário 96 folhas",
		"price":         19.9,
		"active":        true,
		"imageFilename": "caderno.png",
		"imageUpload":   base64.StdEncoding.EncodeToString([]byte("fake image bytes")),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	env := setupApp(t, false)

	// Successful registration establishes a session
	resp := doJSON(t, env.app, http.MethodPost, "/api/nova-conta", map[string]string{
		"email":           "user@example.com",
		"password":        "senha123",
		"confirmPassword": "senha123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	regEnv := decodeEnvelope(t, resp)
	assert.True(t, regEnv.Success)
	var regData map[string]string
	assert.NoError(t, json.Unmarshal(regEnv.Data, &regData))
	assert.Equal(t, "user@example.com", regData["email"])
	assert.NotEmpty(t, regData["token"])

	// The account is created with the email already confirmed
	user, err := env.userRepo.GetByEmail("user@example.com")
	assert.NoError(t, err)
	assert.True(t, user.EmailConfirmed)

	// Duplicate email: provider descriptions verbatim, no session
	resp = doJSON(t, env.app, http.MethodPost, "/api/nova-conta", map[string]string{
		"email":           "user@example.com",
		"password":        "senha123",
		"confirmPassword": "senha123",
	})
	dupEnv := decodeEnvelope(t, resp)
	assert.False(t, dupEnv.Success)
	assert.Equal(t, []string{"Email 'user@example.com' is already taken."}, notificationErrors(t, dupEnv))
	assert.Empty(t, dupEnv.Data)

	// Correct credentials sign in
	resp = doJSON(t, env.app, http.MethodPost, "/api/entrar", map[string]string{
		"email":    "user@example.com",
		"password": "senha123",
	})
	loginEnv := decodeEnvelope(t, resp)
	assert.True(t, loginEnv.Success)
	var loginData map[string]string
	assert.NoError(t, json.Unmarshal(loginEnv.Data, &loginData))
	assert.NotEmpty(t, loginData["token"])

	claims, err := env.authService.ValidateToken(loginData["token"])
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims["email"])

	// Wrong password
	resp = doJSON(t, env.app, http.MethodPost, "/api/entrar", map[string]string{
		"email":    "user@example.com",
		"password": "errada",
	})
	wrongEnv := decodeEnvelope(t, resp)
	assert.False(t, wrongEnv.Success)
	assert.Equal(t, []string{"Usuário ou Senha incorretos"}, notificationErrors(t, wrongEnv))
}

func TestLoginLockedAccount(t *testing.T) {
	env := setupApp(t, false)

	resp := doJSON(t, env.app, http.MethodPost, "/api/nova-conta", map[string]string{
		"email":           "locked@example.com",
		"password":        "senha123",
		"confirmPassword": "senha123",
	})
	assert.True(t, decodeEnvelope(t, resp).Success)

	user, err := env.userRepo.GetByEmail("locked@example.com")
	assert.NoError(t, err)
	until := time.Now().Add(5 * time.Minute)
	user.LockoutUntil = &until
	assert.NoError(t, env.userRepo.Update(user))

	// Even the correct password is rejected while the lockout holds
	resp = doJSON(t, env.app, http.MethodPost, "/api/entrar", map[string]string{
		"email":    "locked@example.com",
		"password": "senha123",
	})
	lockedEnv := decodeEnvelope(t, resp)
	assert.False(t, lockedEnv.Success)
	messages := notificationErrors(t, lockedEnv)
	assert.Len(t, messages, 1)
	assert.Equal(t, "Usuário temporariamente bloqueado por tentativas inválidas", messages[0])
	assert.Empty(t, lockedEnv.Data)
}

func TestCreateProductBase64(t *testing.T) {
	env := setupApp(t, false)
	supplier := seedSupplier(t, env, "12345678000190")

	resp := doJSON(t, env.app, http.MethodPost, "/api/produtos", productBody(supplier.ID))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	createEnv := decodeEnvelope(t, resp)
	assert.True(t, createEnv.Success)

	var vm viewmodels.ProductViewModel
	assert.NoError(t, json.Unmarshal(createEnv.Data, &vm))
	assert.NotEmpty(t, vm.ID)
	assert.Regexp(t, `^[0-9a-f-]{36}_caderno\.png$`, vm.Image)

	// The decoded bytes landed under the base64 image directory
	data, err := os.ReadFile(env.imageDir + "/" + vm.Image)
	assert.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)

	// The list view carries the computed supplier name
	resp = doJSON(t, env.app, http.MethodGet, "/api/produtos", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var views []viewmodels.ProductViewModel
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	resp.Body.Close()
	assert.Len(t, views, 1)
	assert.Equal(t, "Papelaria Central", views[0].SupplierName)
	assert.Equal(t, vm.Image, views[0].Image)
}

func TestCreateProductWithoutImage(t *testing.T) {
	env := setupApp(t, false)
	supplier := seedSupplier(t, env, "12345678000190")

	body := productBody(supplier.ID)
	body["imageUpload"] = ""

	resp := doJSON(t, env.app, http.MethodPost, "/api/produtos", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	failEnv := decodeEnvelope(t, resp)
	assert.False(t, failEnv.Success)
	assert.Contains(t, notificationErrors(t, failEnv), "Forneça uma imagem para este produto!")

	// No persistence call, no file write
	var count int64
	assert.NoError(t, env.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
	entries, err := os.ReadDir(env.imageDir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateProductValidationFailure(t *testing.T) {
	env := setupApp(t, false)
	supplier := seedSupplier(t, env, "12345678000190")

	body := productBody(supplier.ID)
	body["name"] = ""

	resp := doJSON(t, env.app, http.MethodPost, "/api/produtos", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	failEnv := decodeEnvelope(t, resp)
	assert.False(t, failEnv.Success)

	// Validation failures use the field-map shape, not the string list
	var fieldErrors map[string]string
	assert.NoError(t, json.Unmarshal(failEnv.Errors, &fieldErrors))
	assert.Contains(t, fieldErrors, "Name")

	var count int64
	assert.NoError(t, env.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetProductNotFound(t *testing.T) {
	env := setupApp(t, false)

	resp := doJSON(t, env.app, http.MethodGet, "/api/produtos/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.NoError(t, err)
	assert.Equal(t, "Not Found", string(body))

	// A malformed id is indistinguishable from an unknown one
	resp = doJSON(t, env.app, http.MethodGet, "/api/produtos/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateProductIDMismatch(t *testing.T) {
	env := setupApp(t, false)
	supplier := seedSupplier(t, env, "12345678000190")
	product := seedProduct(t, env, supplier.ID, "abc_caneta.png")

	body := map[string]interface{}{
		"id":          uuid.New().String(),
		"supplierId":  supplier.ID,
		"name":        "Outro Nome",
		"description": "Outra descrição",
		"price":       9.9,
		"active":      true,
	}
	resp := doJSON(t, env.app, http.MethodPut, "/api/produtos/"+product.ID, body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	failEnv := decodeEnvelope(t, resp)
	assert.False(t, failEnv.Success)
	assert.Equal(t, []string{"Os Ids informados não são iguais"}, notificationErrors(t, failEnv))

	// Entity unchanged
	stored, err := env.productRepo.GetByIDWithSupplier(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Caneta", stored.Name)
}

func TestUpdateProductKeepsImageWithoutUpload(t *testing.T) {
	env := setupApp(t, false)
	supplier := seedSupplier(t, env, "12345678000190")
	product := seedProduct(t, env, supplier.ID, "abc_caneta.png")

	// No imageFilename and no imageUpload in the body: the stored name is
	// copied onto the view model before validation, so the update passes.
	body := map[string]interface{}{
		"id":          product.ID,
		"supplierId":  supplier.ID,
		"name":        "Caneta Premium",
		"description": "Caneta esferográfica azul premium",
		"price":       7.5,
		"active":      false,
	}
	resp := doJSON(t, env.app, http.MethodPut, "/api/produtos/"+product.ID, body)
	okEnv := decodeEnvelope(t, resp)
	assert.True(t, okEnv.Success)

	var vm viewmodels.ProductViewModel
	assert.NoError(t, json.Unmarshal(okEnv.Data, &vm))
	assert.Equal(t, "abc_caneta.png", vm.Image)

	stored, err := env.productRepo.GetByIDWithSupplier(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "abc_caneta.png", stored.Image)
	assert.Equal(t, "Caneta Premium", stored.Name)
	assert.Equal(t, 7.5, stored.Price)
	assert.False(t, stored.Active)
}

func TestUpdateProductWithNewImage(t *testing.T) {
	env := setupApp(t, false)
	supplier := seedSupplier(t, env, "12345678000190")
	product := seedProduct(t, env, supplier.ID, "abc_caneta.png")

	body := map[string]interface{}{
		"id":          product.ID,
		"supplierId":  supplier.ID,
		"name":        "Caneta Premium",
		"description": "Caneta esferográfica azul premium",
		"price":       7.5,
		"active":      true,
		"imageUpload": base64.StdEncoding.EncodeToString([]byte("new image bytes")),
	}
	resp := doJSON(t, env.app, http.MethodPut, "/api/produtos/"+product.ID, body)
	okEnv := decodeEnvelope(t, resp)
	assert.True(t, okEnv.Success)

	// The echoed view model still carries the pre-update image name
	var vm viewmodels.ProductViewModel
	assert.NoError(t, json.Unmarshal(okEnv.Data, &vm))
	assert.Equal(t, "abc_caneta.png", vm.Image)

	// The stored entity points at the freshly written file
	stored, err := env.productRepo.GetByIDWithSupplier(product.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, "abc_caneta.png", stored.Image)
	assert.Regexp(t, `^[0-9a-f-]{36}_abc_caneta\.png$`, stored.Image)

	data, err := os.ReadFile(env.imageDir + "/" + stored.Image)
	assert.NoError(t, err)
	assert.Equal(t, []byte("new image bytes"), data)
}

func TestDeleteProduct(t *testing.T) {
	env := setupApp(t, false)
	supplier := seedSupplier(t, env, "12345678000190")
	product := seedProduct(t, env, supplier.ID, "abc_caneta.png")

	resp := doJSON(t, env.app, http.MethodDelete, "/api/produtos/"+product.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	delEnv := decodeEnvelope(t, resp)
	assert.True(t, delEnv.Success)

	// Confirmation payload is the last known view of the product
	var vm viewmodels.ProductViewModel
	assert.NoError(t, json.Unmarshal(delEnv.Data, &vm))
	assert.Equal(t, product.ID, vm.ID)
	assert.Equal(t, "Papelaria Central", vm.SupplierName)

	resp = doJSON(t, env.app, http.MethodGet, "/api/produtos/"+product.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodDelete, "/api/produtos/"+product.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateProductMultipart(t *testing.T) {
	env := setupApp(t, false)
	supplier := seedSupplier(t, env, "12345678000190")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	assert.NoError(t, writer.WriteField("supplierId", supplier.ID))
	assert.NoError(t, writer.WriteField("name", "Caderno"))
	assert.NoError(t, writer.WriteField("description", "Caderno universitário 96 folhas"))
	assert.NoError(t, writer.WriteField("price", "19.9"))
	assert.NoError(t, writer.WriteField("active", "true"))
	part, err := writer.CreateFormFile("imageUpload", "caderno.png")
	assert.NoError(t, err)
	_, err = part.Write([]byte("multipart image bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/produtos/Adicionar", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	createEnv := decodeEnvelope(t, resp)
	assert.True(t, createEnv.Success)
	var vm viewmodels.ProductImageViewModel
	assert.NoError(t, json.Unmarshal(createEnv.Data, &vm))
	assert.Regexp(t, `^[0-9a-f-]{36}_caderno\.png$`, vm.Image)

	// Multipart uploads land in the assets directory, not the base64 one
	data, err := os.ReadFile(env.assetsDir + "/" + vm.Image)
	assert.NoError(t, err)
	assert.Equal(t, []byte("multipart image bytes"), data)
	entries, err := os.ReadDir(env.imageDir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateProductMultipartWithoutFile(t *testing.T) {
	env := setupApp(t, false)
	supplier := seedSupplier(t, env, "12345678000190")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	assert.NoError(t, writer.WriteField("supplierId", supplier.ID))
	assert.NoError(t, writer.WriteField("name", "Caderno"))
	assert.NoError(t, writer.WriteField("description", "Caderno universitário 96 folhas"))
	assert.NoError(t, writer.WriteField("price", "19.9"))
	assert.NoError(t, writer.WriteField("active", "true"))
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/produtos/Adicionar", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)

	failEnv := decodeEnvelope(t, resp)
	assert.False(t, failEnv.Success)
	assert.Contains(t, notificationErrors(t, failEnv), "Forneça uma imagem para este produto!")

	var count int64
	assert.NoError(t, env.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddImagePlaceholder(t *testing.T) {
	env := setupApp(t, false)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "foto.jpg")
	assert.NoError(t, err)
	_, err = part.Write([]byte("raw upload"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/produtos/imagem", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var echo map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&echo))
	resp.Body.Close()
	assert.Equal(t, "foto.jpg", echo["filename"])
	assert.Equal(t, float64(len("raw upload")), echo["size"])

	// Placeholder endpoint: nothing is stored anywhere
	entries, err := os.ReadDir(env.assetsDir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSupplierEndpoints(t *testing.T) {
	env := setupApp(t, false)

	body := map[string]interface{}{
		"name":     "Papelaria Central",
		"document": "12345678000190",
		"active":   true,
		"address": map[string]string{
			"street":   "Rua das Flores",
			"number":   "123",
			"zipCode":  "01001000",
			"district": "Centro",
			"city":     "São Paulo",
			"state":    "SP",
		},
	}
	resp := doJSON(t, env.app, http.MethodPost, "/api/fornecedores", body)
	createEnv := decodeEnvelope(t, resp)
	assert.True(t, createEnv.Success)
	var vm viewmodels.SupplierViewModel
	assert.NoError(t, json.Unmarshal(createEnv.Data, &vm))
	assert.NotEmpty(t, vm.ID)

	resp = doJSON(t, env.app, http.MethodGet, "/api/fornecedores/"+vm.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched viewmodels.SupplierViewModel
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	resp.Body.Close()
	assert.Equal(t, "Papelaria Central", fetched.Name)
	assert.Equal(t, "Centro", fetched.Address.District)

	// Update with mismatched ids is rejected like the product route
	body["id"] = uuid.New().String()
	resp = doJSON(t, env.app, http.MethodPut, "/api/fornecedores/"+vm.ID, body)
	mismatchEnv := decodeEnvelope(t, resp)
	assert.False(t, mismatchEnv.Success)
	assert.Equal(t, []string{"Os Ids informados não são iguais"}, notificationErrors(t, mismatchEnv))

	// A supplier with products cannot be removed
	product := seedProduct(t, env, vm.ID, "abc_caneta.png")
	resp = doJSON(t, env.app, http.MethodDelete, "/api/fornecedores/"+vm.ID, nil)
	blockedEnv := decodeEnvelope(t, resp)
	assert.False(t, blockedEnv.Success)
	assert.Equal(t, []string{"O fornecedor possui produtos cadastrados!"}, notificationErrors(t, blockedEnv))

	// After the product is gone the delete goes through
	assert.NoError(t, env.productRepo.Delete(product.ID))
	resp = doJSON(t, env.app, http.MethodDelete, "/api/fornecedores/"+vm.ID, nil)
	delEnv := decodeEnvelope(t, resp)
	assert.True(t, delEnv.Success)

	resp = doJSON(t, env.app, http.MethodGet, "/api/fornecedores/"+vm.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRequireAuthProtectsResources(t *testing.T) {
	env := setupApp(t, true)

	resp := doJSON(t, env.app, http.MethodGet, "/api/produtos", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Registration stays open and yields a usable token
	resp = doJSON(t, env.app, http.MethodPost, "/api/nova-conta", map[string]string{
		"email":           "user@example.com",
		"password":        "senha123",
		"confirmPassword": "senha123",
	})
	regEnv := decodeEnvelope(t, resp)
	assert.True(t, regEnv.Success)
	var regData map[string]string
	assert.NoError(t, json.Unmarshal(regEnv.Data, &regData))

	req := httptest.NewRequest(http.MethodGet, "/api/produtos", nil)
	req.Header.Set("Authorization", "Bearer "+regData["token"])
	authResp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, authResp.StatusCode)
	authResp.Body.Close()
}
