package handler

import (
	"go-mini-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token handles the password-grant login
// POST /api/v1/token (form fields: username, password)
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if username == "" || password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}

	response, err := h.authService.Login(username, password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(response)
}

// CreateUser registers a new user
// POST /api/v1/users/create (form fields: username, password, role)
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	role := c.FormValue("role", "viewer")

	if username == "" || password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}

	user, err := h.authService.CreateUser(username, password, role)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"username": user.Username,
		"role":     user.Role,
	})
}
