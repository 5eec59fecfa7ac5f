package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/yourcompany/distribucion-api/internal/application/analytics"
	"github.com/yourcompany/distribucion-api/internal/application/auth"
	"github.com/yourcompany/distribucion-api/internal/application/distribution"
	"github.com/yourcompany/distribucion-api/internal/application/reports"
	"github.com/yourcompany/distribucion-api/internal/application/stockentry"
	"github.com/yourcompany/distribucion-api/internal/application/usecase"
	infraexcel "github.com/yourcompany/distribucion-api/internal/infrastructure/excel"
	infrapdf "github.com/yourcompany/distribucion-api/internal/infrastructure/pdf"
	"github.com/yourcompany/distribucion-api/internal/infrastructure/postgres"
	httpRouter "github.com/yourcompany/distribucion-api/internal/interfaces/http"
	"github.com/yourcompany/distribucion-api/pkg/config"
	"github.com/yourcompany/distribucion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	distRepo := postgres.NewDistributionRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	workerUC := usecase.NewWorkerUseCase(workerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	stockEntryUC := stockentry.NewStockEntryUseCase(txRunner, infraexcel.NewImporter())
	distributeUC := distribution.NewDistributeUseCase(txRunner, workerRepo)
	reportUC := reports.NewReportUseCase(
		distRepo, companyRepo,
		infraexcel.NewExporter(),
		infrapdf.NewMarotoReportGenerator(),
	)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:    companyUC,
		WorkerUC:     workerUC,
		ProductUC:    productUC,
		StockEntryUC: stockEntryUC,
		DistributeUC: distributeUC,
		ReportUC:     reportUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
