package handler

import (
	"go-mini-erp/internal/model"
	"go-mini-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(product)
}

// GetProducts supports an optional ?q= case-insensitive filter over name
// and sku
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateSupplier(&supplier); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(supplier)
}

func (h *CatalogHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAllSuppliers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(suppliers)
}

func (h *CatalogHandler) CreateWarehouse(c *fiber.Ctx) error {
	var warehouse model.Warehouse
	if err := c.BodyParser(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateWarehouse(&warehouse); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(warehouse)
}

func (h *CatalogHandler) GetWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.service.GetAllWarehouses()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(warehouses)
}

// ImportProducts upserts products by SKU from an uploaded CSV file
// POST /api/v1/import/products (multipart field: file)
func (h *CatalogHandler) ImportProducts(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing file upload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unable to read uploaded file"})
	}
	defer file.Close()

	created, err := h.service.ImportProducts(file)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"imported": created})
}

// ExportProducts streams all products as a CSV attachment
// GET /api/v1/export/products
func (h *CatalogHandler) ExportProducts(c *fiber.Ctx) error {
	csvData, err := h.service.ExportProducts()
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=products.csv`)
	return c.SendString(csvData)
}
