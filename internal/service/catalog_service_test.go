package service_test

import (
	"errors"
	"strings"
	"testing"

	"go-mini-erp/internal/model"
	"go-mini-erp/internal/repository"
	"go-mini-erp/internal/service"

	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) service.CatalogService {
	return service.NewCatalogService(
		repository.NewProductRepo(db),
		repository.NewSupplierRepo(db),
		repository.NewWarehouseRepo(db),
		db,
		nil,
	)
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	if err := svc.CreateProduct(&model.Product{SKU: "A1", Name: "Pillow A"}); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	err := svc.CreateProduct(&model.Product{SKU: "A1", Name: "Other"})
	if !errors.Is(err, service.ErrDuplicateSKU) {
		t.Fatalf("err = %v, want ErrDuplicateSKU", err)
	}
}

func TestSearchProductsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	createProduct(t, db, "A1", "Pillow A", 49.9, 100, 5)
	createProduct(t, db, "B2", "Mattress B", 399.0, 10, 2)

	products, err := svc.SearchProducts("PILL")
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(products) != 1 || products[0].SKU != "A1" {
		t.Fatalf("search PILL = %+v, want just A1", products)
	}

	// Matches over sku too
	products, err = svc.SearchProducts("b2")
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(products) != 1 || products[0].SKU != "B2" {
		t.Fatalf("search b2 = %+v, want just B2", products)
	}

	// Empty query returns everything
	products, err = svc.SearchProducts("")
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("empty query = %d products, want 2", len(products))
	}
}

func TestImportProductsUpsertsBySKU(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	createProduct(t, db, "A1", "Pillow A", 49.9, 100, 5)

	csvData := strings.Join([]string{
		"sku,name,price,stock,min_stock",
		"A1,Pillow A v2,59.9,80,10",
		"D4,Blanket D,19.9,40,4",
	}, "\n")

	created, err := svc.ImportProducts(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if created != 1 {
		t.Errorf("created = %d, want only the new sku counted", created)
	}

	// Existing row updated in place, not duplicated
	var count int64
	db.Model(&model.Product{}).Where("sku = ?", "A1").Count(&count)
	if count != 1 {
		t.Fatalf("A1 rows = %d, want 1", count)
	}
	var updated model.Product
	db.First(&updated, "sku = ?", "A1")
	if updated.Name != "Pillow A v2" || updated.Stock != 80 || updated.MinStock != 10 {
		t.Errorf("A1 after import = %+v, want fields overwritten", updated)
	}

	var fresh model.Product
	if err := db.First(&fresh, "sku = ?", "D4").Error; err != nil {
		t.Fatalf("imported D4 missing: %v", err)
	}
	if fresh.Price != 19.9 || fresh.Stock != 40 {
		t.Errorf("D4 = %+v, want values from csv", fresh)
	}
}

func TestImportProductsMalformedFileFails(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	csvData := strings.Join([]string{
		"sku,name,price,stock,min_stock",
		"E5,Lamp E,notanumber,1,1",
	}, "\n")

	if _, err := svc.ImportProducts(strings.NewReader(csvData)); err == nil {
		t.Fatal("malformed csv accepted, want failure")
	}

	// Fatal to the whole import: nothing persisted
	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count != 0 {
		t.Errorf("products = %d after failed import, want 0", count)
	}
}

func TestExportProductsCSV(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	createProduct(t, db, "A1", "Pillow A", 49.9, 100, 5)
	createProduct(t, db, "B2", "Mattress B", 399.0, 10, 2)

	out, err := svc.ExportProducts()
	if err != nil {
		t.Fatalf("ExportProducts: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("export lines = %d, want header + 2 rows", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "sku,name,price,stock,min_stock" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(out, "A1,Pillow A,49.9,100,5") {
		t.Errorf("export missing A1 row:\n%s", out)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewSeedService(db)

	status, err := svc.Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if status != "seeded" {
		t.Errorf("status = %q, want seeded", status)
	}

	status, err = svc.Seed()
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if status != "already seeded" {
		t.Errorf("second status = %q, want already seeded", status)
	}

	var products int64
	db.Model(&model.Product{}).Count(&products)
	if products != 3 {
		t.Errorf("products = %d after double seed, want 3", products)
	}

	var admin model.User
	if err := db.First(&admin, "username = ?", "admin").Error; err != nil {
		t.Fatalf("admin user missing: %v", err)
	}
	if !admin.CheckPassword("admin") {
		t.Error("seeded admin password does not verify")
	}
}

func TestDashboardSummary(t *testing.T) {
	db := newTestDB(t)
	seed := service.NewSeedService(db)
	if _, err := seed.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	svc := service.NewDashboardService(repository.NewProductRepo(db), repository.NewPurchaseOrderRepo(db))
	summary, err := svc.GetSummary()
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.TotalProducts != 3 {
		t.Errorf("total_products = %d, want 3", summary.TotalProducts)
	}
	if summary.TotalOrders != 0 {
		t.Errorf("total_orders = %d, want 0", summary.TotalOrders)
	}
	if summary.TotalStock != 160 { // 100 + 10 + 50
		t.Errorf("total_stock = %d, want 160", summary.TotalStock)
	}
}
