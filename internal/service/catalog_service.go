package service

import (
	"errors"
	"fmt"
	"io"

	"go-mini-erp/internal/model"
	"go-mini-erp/internal/repository"
	"go-mini-erp/internal/ws"
	"go-mini-erp/pkg/validator"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService interface {
	CreateProduct(product *model.Product) error
	SearchProducts(query string) ([]model.Product, error)
	CreateSupplier(supplier *model.Supplier) error
	GetAllSuppliers() ([]model.Supplier, error)
	CreateWarehouse(warehouse *model.Warehouse) error
	GetAllWarehouses() ([]model.Warehouse, error)
	ImportProducts(r io.Reader) (int, error)
	ExportProducts() (string, error)
}

// productRow mirrors the CSV interchange format. Import fields are pointers
// so absent columns leave the stored value untouched on upsert.
type productRow struct {
	SKU      string   `csv:"sku"`
	Name     *string  `csv:"name"`
	Price    *float64 `csv:"price"`
	Stock    *int     `csv:"stock"`
	MinStock *int     `csv:"min_stock"`
}

type productExportRow struct {
	SKU      string  `csv:"sku"`
	Name     string  `csv:"name"`
	Price    float64 `csv:"price"`
	Stock    int     `csv:"stock"`
	MinStock int     `csv:"min_stock"`
}

type catalogService struct {
	productRepo   repository.ProductRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	db            *gorm.DB
	wsHub         *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, sRepo repository.SupplierRepository, wRepo repository.WarehouseRepository, db *gorm.DB, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo:   pRepo,
		supplierRepo:  sRepo,
		warehouseRepo: wRepo,
		db:            db,
		wsHub:         hub,
	}
}

func (s *catalogService) CreateProduct(product *model.Product) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	existing, _ := s.productRepo.FindBySKU(product.SKU)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrDuplicateSKU
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	s.wsHub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_created",
		"product": map[string]interface{}{
			"id":    product.ID,
			"sku":   product.SKU,
			"name":  product.Name,
			"stock": product.Stock,
		},
	})
	return nil
}

func (s *catalogService) SearchProducts(query string) ([]model.Product, error) {
	return s.productRepo.Search(query)
}

func (s *catalogService) CreateSupplier(supplier *model.Supplier) error {
	if errs := validator.ValidateStruct(supplier); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	return s.supplierRepo.Create(supplier)
}

func (s *catalogService) GetAllSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *catalogService) CreateWarehouse(warehouse *model.Warehouse) error {
	if errs := validator.ValidateStruct(warehouse); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	return s.warehouseRepo.Create(warehouse)
}

func (s *catalogService) GetAllWarehouses() ([]model.Warehouse, error) {
	return s.warehouseRepo.FindAll()
}

// ImportProducts upserts products by SKU from a CSV stream and returns the
// number of newly created rows. A malformed file fails the whole import; no
// per-row recovery.
func (s *catalogService) ImportProducts(r io.Reader) (int, error) {
	var rows []productRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if row.SKU == "" {
				return fmt.Errorf("%w: row with empty sku", ErrValidation)
			}

			var existing model.Product
			err := tx.First(&existing, "sku = ?", row.SKU).Error
			switch {
			case err == nil:
				if row.Name != nil {
					existing.Name = *row.Name
				}
				if row.Price != nil {
					existing.Price = *row.Price
				}
				if row.Stock != nil {
					existing.Stock = *row.Stock
				}
				if row.MinStock != nil {
					existing.MinStock = *row.MinStock
				}
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				product := model.Product{SKU: row.SKU}
				if row.Name != nil {
					product.Name = *row.Name
				}
				if row.Price != nil {
					product.Price = *row.Price
				}
				if row.Stock != nil {
					product.Stock = *row.Stock
				}
				if row.MinStock != nil {
					product.MinStock = *row.MinStock
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
				created++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// ExportProducts serializes all products as CSV
func (s *catalogService) ExportProducts() (string, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return "", err
	}

	rows := make([]productExportRow, len(products))
	for i, p := range products {
		rows[i] = productExportRow{
			SKU:      p.SKU,
			Name:     p.Name,
			Price:    p.Price,
			Stock:    p.Stock,
			MinStock: p.MinStock,
		}
	}
	return gocsv.MarshalString(&rows)
}
