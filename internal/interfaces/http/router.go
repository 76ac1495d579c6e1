package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/auth"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/inventory"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/usecase"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
)

// RouterDeps are the dependencies the router wires into handlers.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	ItemUC        *usecase.ItemUseCase
	Recorder      *inventory.RecordMovementUseCase
	Queries       *inventory.StockQueryUseCase
	ReservationUC *inventory.ReservationUseCase
	AlertEngine   *inventory.AlertEngine
	DemoUC        *inventory.DemoUseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses: mutations restricted to admin and storekeeper.
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireRole(entity.RoleAdmin, entity.RoleStorekeeper), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleStorekeeper), warehouseHandler.Update)

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", RequireRole(entity.RoleAdmin, entity.RoleStorekeeper), itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)

	// Inventory: ledger, projection, reservations, alerts, demo
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Recorder, deps.Queries)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/stock", inventoryHandler.ListStockLevels)

	reservationHandler := NewReservationHandler(deps.ReservationUC)
	invGroup.Post("/reservations", reservationHandler.Reserve)
	invGroup.Put("/reservations/:id/release", reservationHandler.Release)

	alertHandler := NewAlertHandler(deps.AlertEngine)
	invGroup.Get("/alerts", alertHandler.List)
	invGroup.Put("/alerts/:id/acknowledge", alertHandler.Acknowledge)
	invGroup.Post("/alerts/sweep", RequireRole(entity.RoleAdmin, entity.RoleStorekeeper), alertHandler.Sweep)

	demoHandler := NewDemoHandler(deps.DemoUC)
	invGroup.Post("/demo/issue", demoHandler.Issue)
	invGroup.Get("/demo", demoHandler.List)
	invGroup.Put("/demo/:demoId/return", demoHandler.Return)
	invGroup.Put("/demo/:demoId/convert-to-sale", demoHandler.ConvertToSale)
}
