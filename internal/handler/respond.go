package handler

import (
	"errors"

	"go-mini-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// respondError maps business-rule failures onto HTTP statuses. Anything
// outside the taxonomy is an internal error.
func respondError(c *fiber.Ctx, err error) error {
	status := 500
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		status = 401
	case errors.Is(err, service.ErrDuplicateSKU),
		errors.Is(err, service.ErrUserExists):
		status = 409
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrWarehouseNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrUserNotFound):
		status = 404
	case errors.Is(err, service.ErrItemNotInOrder),
		errors.Is(err, service.ErrValidation):
		status = 400
	}
	if status == 500 {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
