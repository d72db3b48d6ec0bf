package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donpepe/inventario-api/internal/application/auth"
	"github.com/donpepe/inventario-api/internal/application/inventory"
	"github.com/donpepe/inventario-api/internal/application/reports"
	"github.com/donpepe/inventario-api/internal/application/usecase"
	"github.com/donpepe/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	LowStock         *inventory.LowStockUseCase
	DashboardUC      *usecase.DashboardUseCase
	ReportUC         *reports.ReportUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleAlmacenero)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)
	authGroup.Get("/verificar", AuthMiddleware(deps.JWTSecret), authHandler.Verify)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", anyRole, productHandler.Create)
	products.Put("/:id", anyRole, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Movimientos de inventario
	movements := protected.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementQuery)
	movements.Get("/", movementHandler.List)
	movements.Get("/resumen/hoy", movementHandler.TodaySummary)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", anyRole, movementHandler.Register)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.LowStock, deps.MovementQuery)
	dashboard.Get("/estadisticas", dashboardHandler.Stats)
	dashboard.Get("/stock-bajo", dashboardHandler.LowStock)
	dashboard.Get("/ultimos-movimientos", dashboardHandler.RecentMovements)
	dashboard.Get("/resumen-semanal", dashboardHandler.WeeklySummary)
	dashboard.Get("/productos-sin-movimiento", dashboardHandler.IdleProducts)
	dashboard.Get("/valor-por-categoria", dashboardHandler.ValueByCategory)

	// Reportes descargables
	reportsGroup := protected.Group("/reportes")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/inventario/excel", reportHandler.InventoryExcel)
	reportsGroup.Get("/inventario/pdf", reportHandler.InventoryPDF)
	reportsGroup.Get("/stock-bajo/excel", reportHandler.LowStockExcel)
	reportsGroup.Get("/stock-bajo/pdf", reportHandler.LowStockPDF)
	reportsGroup.Get("/movimientos/excel", reportHandler.MovementsExcel)
	reportsGroup.Get("/movimientos/pdf", reportHandler.MovementsPDF)
}
