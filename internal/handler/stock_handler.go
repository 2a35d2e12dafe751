package handler

import (
	"strconv"

	"go-mini-erp/internal/model"
	"go-mini-erp/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StockHandler struct {
	service service.LedgerService
}

func NewStockHandler(s service.LedgerService) *StockHandler {
	return &StockHandler{service: s}
}

// MoveStock applies a signed stock delta and records the audit movement
// POST /api/v1/stock/move (form fields: product_id, quantity, warehouse_id?, type?, note?)
func (h *StockHandler) MoveStock(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.FormValue("product_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product_id"})
	}

	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quantity"})
	}

	var warehouseID *uuid.UUID
	if raw := c.FormValue("warehouse_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse_id"})
		}
		warehouseID = &id
	}

	req := service.MovementRequest{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Type:        model.MovementType(c.FormValue("type", string(model.MovementAdjustment))),
		Quantity:    quantity,
		Note:        c.FormValue("note"),
	}

	movement, err := h.service.ApplyMovement(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(movement)
}

func (h *StockHandler) GetMovements(c *fiber.Ctx) error {
	movements, err := h.service.GetAllMovements()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}

// GetProductMovements lists one product's audit trail chronologically
// GET /api/v1/stock/product/:id/movements
func (h *StockHandler) GetProductMovements(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	movements, err := h.service.GetProductMovements(productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}

// GetLowStock lists products at or below their reorder threshold
// GET /api/v1/inventory/low?threshold=
func (h *StockHandler) GetLowStock(c *fiber.Ctx) error {
	var threshold *int
	if raw := c.Query("threshold"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid threshold"})
		}
		threshold = &value
	}

	products, err := h.service.GetLowStock(threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}
