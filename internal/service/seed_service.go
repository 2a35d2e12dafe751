package service

import (
	"go-mini-erp/internal/model"
	"go-mini-erp/pkg/logger"

	"gorm.io/gorm"
)

type SeedService interface {
	Seed() (string, error)
}

type seedService struct {
	db *gorm.DB
}

func NewSeedService(db *gorm.DB) SeedService {
	return &seedService{db: db}
}

// Seed inserts a fixed demo dataset. It is idempotent: if any product exists
// the call is a no-op reporting "already seeded". Failures roll back as one
// unit.
func (s *seedService) Seed() (string, error) {
	var count int64
	if err := s.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "already seeded", nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		products := []model.Product{
			{SKU: "A1", Name: "Pillow A", Price: 49.9, Stock: 100, MinStock: 5},
			{SKU: "B2", Name: "Mattress B", Price: 399.0, Stock: 10, MinStock: 2},
			{SKU: "C3", Name: "Bed Sheet C", Price: 89.5, Stock: 50, MinStock: 5},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		suppliers := []model.Supplier{
			{Name: "Supplier One", Email: "supplier1@example.com"},
			{Name: "Supplier Two", Email: "supplier2@example.com"},
		}
		if err := tx.Create(&suppliers).Error; err != nil {
			return err
		}

		if err := tx.Create(&model.Warehouse{Name: "Central Warehouse", Location: "Lima"}).Error; err != nil {
			return err
		}

		admin := model.User{Username: "admin", Role: model.RoleAdmin}
		if err := admin.SetPassword("admin"); err != nil {
			return err
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		logger.L().WithError(err).Error("seeding failed, rolled back")
		return "", err
	}

	return "seeded", nil
}
