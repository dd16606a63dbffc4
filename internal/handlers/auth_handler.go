package handlers

import (
	"log"

	"loja/internal/models"
	"loja/internal/notifications"
	"loja/internal/services"
	"loja/internal/viewmodels"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Notification texts for the sign-in outcomes.
const (
	msgLockedOut          = "Usuário temporariamente bloqueado por tentativas inválidas"
	msgInvalidCredentials = "Usuário ou Senha incorretos"
)

// AuthHandler handles HTTP requests for account registration and login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/nova-conta", h.HandleRegister)
	router.Post("/entrar", h.HandleLogin)
}

// HandleRegister handles new user registration. The account is created
// with the email already confirmed; there is no confirmation mail flow.
// Provider-reported rule violations are forwarded verbatim into the
// failure envelope.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var vm viewmodels.RegisterUserViewModel
	if err := c.BodyParser(&vm); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(vm); err != nil {
		return validationResponse(c, err)
	}

	n := notifications.New()
	user := &models.User{
		Email:          vm.Email,
		EmailConfirmed: true,
	}

	result, err := h.authService.CreateUser(user, vm.Password)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
			"error":   err.Error(),
		})
	}

	if !result.Succeeded {
		for _, description := range result.Errors {
			n.AddError(description)
		}
		return customResponse(c, n, nil)
	}

	// Registration signs the user straight in.
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		log.Printf("Error generating token for new user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not establish session",
			"error":   err.Error(),
		})
	}
	return customResponse(c, n, fiber.Map{
		"email": user.Email,
		"token": token,
	})
}

// HandleLogin handles user login with lockout detection enabled and
// "remember me" disabled.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var vm viewmodels.LoginUserViewModel
	if err := c.BodyParser(&vm); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(vm); err != nil {
		return validationResponse(c, err)
	}

	n := notifications.New()
	result, err := h.authService.PasswordSignIn(vm.Email, vm.Password, true)
	if err != nil {
		log.Printf("Error during login for user %s: %v", vm.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not sign in",
			"error":   err.Error(),
		})
	}

	if result.Succeeded {
		token, err := h.authService.GenerateToken(result.User)
		if err != nil {
			log.Printf("Error generating token for user %s: %v", vm.Email, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not establish session",
				"error":   err.Error(),
			})
		}
		return customResponse(c, n, fiber.Map{
			"email": vm.Email,
			"token": token,
		})
	}

	if result.IsLockedOut {
		n.AddError(msgLockedOut)
		return customResponse(c, n, nil)
	}

	n.AddError(msgInvalidCredentials)
	return customResponse(c, n, nil)
}
