package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-mini-erp/internal/handler"
	"go-mini-erp/internal/middleware"
	"go-mini-erp/internal/model"
	"go-mini-erp/internal/repository"
	"go-mini-erp/internal/service"
	"go-mini-erp/internal/ws"
	"go-mini-erp/pkg/database"
	"go-mini-erp/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logger.L().Warn(".env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto migrate (use a dedicated migration tool in production)
	db.AutoMigrate(
		&model.Product{},
		&model.Supplier{},
		&model.Warehouse{},
		&model.StockMovement{},
		&model.PurchaseOrder{},
		&model.PurchaseOrderItem{},
		&model.User{},
	)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	movementRepo := repository.NewMovementRepo(db)
	orderRepo := repository.NewPurchaseOrderRepo(db)
	userRepo := repository.NewUserRepo(db)

	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(productRepo, supplierRepo, warehouseRepo, db, wsHub)
	ledgerService := service.NewLedgerService(productRepo, movementRepo, db, wsHub)
	purchaseService := service.NewPurchaseService(orderRepo, db, wsHub)
	dashService := service.NewDashboardService(productRepo, orderRepo)
	seedService := service.NewSeedService(db)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	stockHandler := handler.NewStockHandler(ledgerService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	dashHandler := handler.NewDashboardHandler(dashService)
	seedHandler := handler.NewSeedHandler(seedService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Mini ERP Pro v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/token", authHandler.Token)
	// TODO: user creation is open so a fresh deployment can bootstrap its
	// first account; lock it behind an admin role before exposing publicly
	api.Post("/users/create", authHandler.CreateUser)
	// Unauthenticated on purpose, same caveat as above
	api.Get("/dashboard/summary", dashHandler.GetSummary)
	api.Post("/seed", seedHandler.Seed)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Catalog & reference data
	protected.Post("/products", catalogHandler.CreateProduct)
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Post("/suppliers", catalogHandler.CreateSupplier)
	protected.Get("/suppliers", catalogHandler.GetSuppliers)
	protected.Post("/warehouses", catalogHandler.CreateWarehouse)
	protected.Get("/warehouses", catalogHandler.GetWarehouses)

	// Purchase orders
	protected.Post("/purchase_orders", purchaseHandler.CreateOrder)
	protected.Get("/purchase_orders", purchaseHandler.GetOrders)
	protected.Post("/purchase_orders/:id/receive", purchaseHandler.Receive)

	// Stock ledger
	protected.Post("/stock/move", stockHandler.MoveStock)
	protected.Get("/stock/movements", stockHandler.GetMovements)
	protected.Get("/stock/product/:id/movements", stockHandler.GetProductMovements)
	protected.Get("/inventory/low", stockHandler.GetLowStock)

	// Bulk import/export
	protected.Post("/import/products", catalogHandler.ImportProducts)
	protected.Get("/export/products", catalogHandler.ExportProducts)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			logger.L().WithError(err).Fatal("server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.L().WithError(err).Fatal("server forced to shutdown")
	}

	logger.L().Info("server exited")
}
