package handler

import (
	"go-mini-erp/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

func (h *PurchaseHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	summary, err := h.service.CreateOrder(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(summary)
}

func (h *PurchaseHandler) GetOrders(c *fiber.Ctx) error {
	summaries, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summaries)
}

// Receive processes deliveries against an order
// POST /api/v1/purchase_orders/:id/receive
// Body is optional: {} or no items means receive everything remaining.
func (h *PurchaseHandler) Receive(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid purchase order ID"})
	}

	var req service.ReceiveRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
		}
	}

	result, err := h.service.Receive(orderID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
