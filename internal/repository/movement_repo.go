package repository

import (
	"go-mini-erp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MovementRepository interface {
	FindAll() ([]model.StockMovement, error)
	FindByProduct(productID uuid.UUID) ([]model.StockMovement, error)
}

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepo(db *gorm.DB) MovementRepository {
	return &movementRepo{db}
}

func (r *movementRepo) FindAll() ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Preload("Product").Order("created_at ASC").Find(&movements).Error
	return movements, err
}

// FindByProduct returns a product's audit trail in chronological order
func (r *movementRepo) FindByProduct(productID uuid.UUID) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&movements).Error
	return movements, err
}
