package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	UserUC      *usecase.UserUseCase
	AuthUC      *auth.AuthUseCase
	UpdateStock *inventory.UpdateStockUseCase
	LogQuery    *inventory.LogQueryUseCase
	ReportUC    *report.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Política de acceso por jerarquía: viewer lee, manager además escribe
// catálogo, stock y reportes, admin además borra y administra usuarios.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	viewer := RequireRole(entity.RoleViewer)
	manager := RequireRole(entity.RoleManager)
	admin := RequireRole(entity.RoleAdmin)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.UpdateStock, deps.LogQuery)
	products.Get("/", viewer, productHandler.List)
	products.Get("/low-stock", viewer, productHandler.ListLowStock)
	products.Get("/:id", viewer, productHandler.GetByID)
	products.Post("/", manager, productHandler.Create)
	products.Put("/:id", manager, productHandler.Update)
	products.Patch("/:id/stock", manager, inventoryHandler.UpdateStock)
	products.Delete("/:id", admin, productHandler.Delete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", viewer, warehouseHandler.List)
	warehouses.Get("/:id", viewer, warehouseHandler.GetByID)
	warehouses.Post("/", manager, warehouseHandler.Create)
	warehouses.Put("/:id", manager, warehouseHandler.Update)
	warehouses.Delete("/:id", admin, warehouseHandler.Delete)

	// Historial de stock (protegido). Quién consultó qué producto es de
	// interés general; qué hizo cada usuario es de supervisión (manager+).
	invGroup := protected.Group("/inventory")
	invGroup.Get("/logs", viewer, inventoryHandler.ListLogs)
	invGroup.Get("/logs/product/:id", viewer, inventoryHandler.ListLogsByProduct)
	invGroup.Get("/logs/user/:id", manager, inventoryHandler.ListLogsByUser)

	// Reports (protegido, manager o superior)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory.csv", manager, reportHandler.InventoryCSV)
	reports.Get("/low-stock.pdf", manager, reportHandler.LowStockPDF)

	// Users (solo admin)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
