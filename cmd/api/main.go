package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/crm-pyme/internal/application/analytics"
	"github.com/jhoicas/crm-pyme/internal/application/auth"
	"github.com/jhoicas/crm-pyme/internal/application/crm"
	"github.com/jhoicas/crm-pyme/internal/application/sales"
	"github.com/jhoicas/crm-pyme/internal/application/search"
	"github.com/jhoicas/crm-pyme/internal/application/usecase"
	infrapdf "github.com/jhoicas/crm-pyme/internal/infrastructure/pdf"
	"github.com/jhoicas/crm-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/crm-pyme/internal/interfaces/http"
	"github.com/jhoicas/crm-pyme/pkg/config"
	"github.com/jhoicas/crm-pyme/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	leaveRepo := postgres.NewLeaveRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewUseCase(userRepo, companyRepo, membershipRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	membershipUC := usecase.NewMembershipUseCase(membershipRepo, userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, customerRepo, leadRepo)
	leaveUC := usecase.NewLeaveUseCase(leaveRepo)
	leadUC := crm.NewLeadUseCase(leadRepo, txRunner)
	orderUC := sales.NewOrderUseCase(orderRepo, customerRepo, txRunner)
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	orderPDFUC := sales.NewPDFUseCase(orderRepo, companyRepo, customerRepo, productRepo, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, companyRepo)
	searchUC := search.NewUseCase(productRepo, categoryRepo, customerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		MembershipUC:   membershipUC,
		CustomerUC:     customerUC,
		CategoryUC:     categoryUC,
		ProductUC:      productUC,
		ServiceUC:      serviceUC,
		LeaveUC:        leaveUC,
		LeadUC:         leadUC,
		OrderUC:        orderUC,
		OrderPDFUC:     orderPDFUC,
		DashboardUC:    dashboardUC,
		SearchUC:       searchUC,
		MembershipRepo: membershipRepo,
		JWTSecret:      cfg.JWT.Secret,
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
