package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yourcompany/distribucion-api/internal/application/analytics"
	"github.com/yourcompany/distribucion-api/internal/application/auth"
	"github.com/yourcompany/distribucion-api/internal/application/distribution"
	"github.com/yourcompany/distribucion-api/internal/application/reports"
	"github.com/yourcompany/distribucion-api/internal/application/stockentry"
	"github.com/yourcompany/distribucion-api/internal/application/usecase"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC    *usecase.CompanyUseCase
	WorkerUC     *usecase.WorkerUseCase
	ProductUC    *usecase.ProductUseCase
	StockEntryUC *stockentry.StockEntryUseCase
	DistributeUC *distribution.DistributeUseCase
	ReportUC     *reports.ReportUseCase
	DashboardUC  *analytics.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Company (público: la pantalla de setup corre antes de que exista sesión)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Post("/company/setup", companyHandler.Setup)
	api.Get("/company", companyHandler.GetCurrent)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	manageOnly := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Workers (protegido; altas solo Admin/Manager)
	workers := protected.Group("/workers")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Get("/", workerHandler.List)
	workers.Post("/", manageOnly, workerHandler.Create)

	// Products (protegido; mutaciones solo Admin/Manager)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockEntryUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", manageOnly, productHandler.Upsert)
	products.Post("/bulk", manageOnly, productHandler.BulkUpsert)
	products.Post("/import", manageOnly, productHandler.Import)

	// Distributions (protegido; registrar entregas solo Admin/Manager)
	distributions := protected.Group("/distributions")
	distributionHandler := NewDistributionHandler(deps.DistributeUC, deps.ReportUC)
	distributions.Get("/", distributionHandler.List)
	distributions.Post("/", manageOnly, distributionHandler.Create)

	// Reports (protegido; un Worker solo exporta sus propias entregas)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/export", reportHandler.Export)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
