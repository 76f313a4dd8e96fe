package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/billing-pro/internal/application/access"
	appanalytics "github.com/tu-usuario/billing-pro/internal/application/analytics"
	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/application/billing"
	"github.com/tu-usuario/billing-pro/internal/application/reports"
	"github.com/tu-usuario/billing-pro/internal/application/usecase"
	"github.com/tu-usuario/billing-pro/internal/infrastructure/metrics"
	infrapdf "github.com/tu-usuario/billing-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/billing-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/billing-pro/internal/infrastructure/spreadsheet"
	httpRouter "github.com/tu-usuario/billing-pro/internal/interfaces/http"
	"github.com/tu-usuario/billing-pro/pkg/config"
	"github.com/tu-usuario/billing-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	taxRate, err := decimal.NewFromString(cfg.Billing.TaxRate)
	if err != nil || taxRate.IsNegative() {
		log.Fatal().Str("tax_rate", cfg.Billing.TaxRate).Msg("BILLING_TAX_RATE inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	accessSvc := access.NewService(permRepo)
	authUC := auth.NewAuthUseCase(userRepo, roleRepo, companyRepo, permRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, roleRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, customerRepo, productRepo, taxRate)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.Billing.Currency)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, companyRepo, customerRepo, pdfGenerator)
	reportUC := reports.NewSalesReportUseCase(
		analyticsRepo, companyRepo,
		infrapdf.NewSalesReportPDFRenderer(cfg.Billing.Currency),
		spreadsheet.NewSalesReportXMLRenderer(cfg.Billing.Currency),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	if cfg.Metrics.Enabled {
		metrics.Init()
		app.Use(metrics.Instrument())
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(metrics.Handler()))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Billing Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		UserUC:      userUC,
		ProductUC:   productUC,
		RoleUC:      roleUC,
		CustomerUC:  customerUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       invoicePDFUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		Access:      accessSvc,
		JWTSecret:   cfg.JWT.Secret,
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
