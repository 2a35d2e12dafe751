package service_test

import (
	"testing"

	"go-mini-erp/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// Keep a single connection so the in-memory database is shared
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.Product{},
		&model.Supplier{},
		&model.Warehouse{},
		&model.StockMovement{},
		&model.PurchaseOrder{},
		&model.PurchaseOrderItem{},
		&model.User{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createProduct(t *testing.T, db *gorm.DB, sku, name string, price float64, stock, minStock int) *model.Product {
	t.Helper()
	product := &model.Product{SKU: sku, Name: name, Price: price, Stock: stock, MinStock: minStock}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product %s: %v", sku, err)
	}
	return product
}

func createSupplier(t *testing.T, db *gorm.DB, name string) *model.Supplier {
	t.Helper()
	supplier := &model.Supplier{Name: name}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("create supplier %s: %v", name, err)
	}
	return supplier
}

func reloadProduct(t *testing.T, db *gorm.DB, id interface{}) *model.Product {
	t.Helper()
	var product model.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	return &product
}

func countMovements(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&model.StockMovement{}).Count(&count).Error; err != nil {
		t.Fatalf("count movements: %v", err)
	}
	return count
}
