package handler

import (
	"go-mini-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SeedHandler struct {
	service service.SeedService
}

func NewSeedHandler(s service.SeedService) *SeedHandler {
	return &SeedHandler{service: s}
}

// Seed inserts demo data, no-op when products already exist
// POST /api/v1/seed
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	status, err := h.service.Seed()
	if err != nil {
		// Unexpected seeding failures are reported generically
		return c.Status(500).JSON(fiber.Map{"error": "Seeding failed"})
	}
	return c.JSON(fiber.Map{"status": status})
}
