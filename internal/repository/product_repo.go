package repository

import (
	"strings"

	"go-mini-erp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	Search(query string) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Save(product *model.Product) error
	LowStock(threshold *int) ([]model.Product, error)
	Count() (int64, error)
	TotalStock() (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("created_at ASC").Find(&products).Error
	return products, err
}

// Search filters by case-insensitive substring over name and sku
func (r *productRepo) Search(query string) ([]model.Product, error) {
	if query == "" {
		return r.FindAll()
	}
	var products []model.Product
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", pattern, pattern).
		Order("created_at ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	return &product, err
}

func (r *productRepo) Save(product *model.Product) error {
	return r.db.Save(product).Error
}

// LowStock lists products at or below their reorder threshold. A non-nil
// threshold overrides each product's own min_stock.
func (r *productRepo) LowStock(threshold *int) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Order("created_at ASC")
	if threshold != nil {
		q = q.Where("stock <= ?", *threshold)
	} else {
		q = q.Where("stock <= min_stock")
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepo) TotalStock() (int64, error) {
	var total int64
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(stock), 0)").
		Scan(&total).Error
	return total, err
}
