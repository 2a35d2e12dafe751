package service

import (
	"errors"
	"fmt"
	"time"

	"go-mini-erp/internal/model"
	"go-mini-erp/internal/repository"
	"go-mini-erp/internal/ws"
	"go-mini-erp/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerService is the single writer of Product.stock outside the purchase
// workflow: every delta it applies produces exactly one StockMovement row in
// the same transaction.
type LedgerService interface {
	ApplyMovement(req *MovementRequest) (*model.StockMovement, error)
	GetAllMovements() ([]model.StockMovement, error)
	GetProductMovements(productID uuid.UUID) ([]ProductMovementView, error)
	GetLowStock(threshold *int) ([]model.Product, error)
}

type MovementRequest struct {
	ProductID   uuid.UUID          `json:"product_id" validate:"uuid_required"`
	WarehouseID *uuid.UUID         `json:"warehouse_id,omitempty"`
	Type        model.MovementType `json:"type"`
	Quantity    int                `json:"quantity"` // signed delta, may drive stock negative
	Note        string             `json:"note,omitempty"`
}

// ProductMovementView is a movement enriched with the product name for
// per-product history listings.
type ProductMovementView struct {
	ID          uuid.UUID          `json:"id"`
	Type        model.MovementType `json:"type"`
	Quantity    int                `json:"quantity"`
	Note        string             `json:"note,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	ProductName string             `json:"product_name"`
}

type ledgerService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewLedgerService(pRepo repository.ProductRepository, mRepo repository.MovementRepository, db *gorm.DB, hub *ws.Hub) LedgerService {
	return &ledgerService{
		productRepo:  pRepo,
		movementRepo: mRepo,
		db:           db,
		wsHub:        hub,
	}
}

func (s *ledgerService) ApplyMovement(req *MovementRequest) (*model.StockMovement, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	if req.Type == "" {
		req.Type = model.MovementAdjustment
	}

	var movement *model.StockMovement
	var newStock int

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		// No lower bound on stock: negative deltas beyond the current
		// level are allowed so corrections stay possible
		newStock = product.Stock + req.Quantity
		if err := tx.Model(&model.Product{}).
			Where("id = ?", product.ID).
			Update("stock", newStock).Error; err != nil {
			return err
		}

		movement = &model.StockMovement{
			ProductID:   req.ProductID,
			WarehouseID: req.WarehouseID,
			Type:        req.Type,
			Quantity:    req.Quantity,
			Note:        req.Note,
		}
		return tx.Create(movement).Error
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(map[string]interface{}{
		"type":       "stock_update",
		"action":     "movement_applied",
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
		"new_stock":  newStock,
	})

	return movement, nil
}

func (s *ledgerService) GetAllMovements() ([]model.StockMovement, error) {
	return s.movementRepo.FindAll()
}

func (s *ledgerService) GetProductMovements(productID uuid.UUID) ([]ProductMovementView, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	movements, err := s.movementRepo.FindByProduct(productID)
	if err != nil {
		return nil, err
	}

	views := make([]ProductMovementView, len(movements))
	for i, m := range movements {
		views[i] = ProductMovementView{
			ID:          m.ID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Note:        m.Note,
			CreatedAt:   m.CreatedAt,
			ProductName: product.Name,
		}
	}
	return views, nil
}

func (s *ledgerService) GetLowStock(threshold *int) ([]model.Product, error) {
	return s.productRepo.LowStock(threshold)
}
