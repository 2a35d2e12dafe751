package repository

import (
	"go-mini-erp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	FindAll() ([]model.PurchaseOrder, error)
	FindByID(id uuid.UUID) (*model.PurchaseOrder, error)
	Count() (int64, error)
}

type purchaseOrderRepo struct {
	db *gorm.DB
}

func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db}
}

func (r *purchaseOrderRepo) FindAll() ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.
		Preload("Supplier").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) FindByID(id uuid.UUID) (*model.PurchaseOrder, error) {
	var order model.PurchaseOrder
	err := r.db.
		Preload("Supplier").
		Preload("Items").
		Preload("Items.Product").
		First(&order, "id = ?", id).Error
	return &order, err
}

func (r *purchaseOrderRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.PurchaseOrder{}).Count(&count).Error
	return count, err
}
