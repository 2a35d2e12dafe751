package repository

import (
	"go-mini-erp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseRepository interface {
	Create(warehouse *model.Warehouse) error
	FindAll() ([]model.Warehouse, error)
	FindByID(id uuid.UUID) (*model.Warehouse, error)
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) Create(warehouse *model.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepo) FindAll() ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	err := r.db.Order("created_at ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepo) FindByID(id uuid.UUID) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	err := r.db.First(&warehouse, "id = ?", id).Error
	return &warehouse, err
}
