package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/billing-pro/internal/application/access"
	"github.com/tu-usuario/billing-pro/internal/application/analytics"
	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/application/billing"
	"github.com/tu-usuario/billing-pro/internal/application/reports"
	"github.com/tu-usuario/billing-pro/internal/application/usecase"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

// Intentos de login permitidos por IP: ráfaga de 5, recarga de 1 por segundo.
const (
	loginRatePerSecond = 1.0
	loginRateBurst     = 5
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	RoleUC      *usecase.RoleUseCase
	CustomerUC  *billing.CustomerUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PDFUC       *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *reports.SalesReportUseCase
	Access      *access.Service
	JWTSecret   string
}

// Router registra las rutas de la API. Cada grupo protegido encadena
// AuthMiddleware y el chequeo de permiso del módulo por acción.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con rate limit en login)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", LoginRateLimit(loginRatePerSecond, loginRateBurst), authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	perm := func(module string, action entity.Action) fiber.Handler {
		return RequirePermission(module, action, deps.Access)
	}

	// Companies (solo Super Admin)
	companies := protected.Group("/companies", RequireRole(entity.RoleSuperAdmin))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", perm(entity.ModuleCompanies, entity.ActionCreate), companyHandler.Create)
	companies.Get("/", perm(entity.ModuleCompanies, entity.ActionRead), companyHandler.List)
	companies.Get("/:id", perm(entity.ModuleCompanies, entity.ActionRead), companyHandler.GetByID)
	companies.Put("/:id", perm(entity.ModuleCompanies, entity.ActionUpdate), companyHandler.Update)
	companies.Delete("/:id", perm(entity.ModuleCompanies, entity.ActionDelete), companyHandler.Delete)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", perm(entity.ModuleUsers, entity.ActionCreate), userHandler.Create)
	users.Get("/", perm(entity.ModuleUsers, entity.ActionRead), userHandler.List)
	users.Get("/:id", perm(entity.ModuleUsers, entity.ActionRead), userHandler.GetByID)
	users.Put("/:id", perm(entity.ModuleUsers, entity.ActionUpdate), userHandler.Update)
	users.Delete("/:id", perm(entity.ModuleUsers, entity.ActionDelete), userHandler.Delete)

	// Roles (catálogo fijo, cualquier usuario autenticado)
	roleHandler := NewRoleHandler(deps.RoleUC)
	protected.Get("/roles", roleHandler.List)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", perm(entity.ModuleProducts, entity.ActionCreate), productHandler.Create)
	products.Get("/", perm(entity.ModuleProducts, entity.ActionRead), productHandler.List)
	products.Get("/:id", perm(entity.ModuleProducts, entity.ActionRead), productHandler.GetByID)
	products.Put("/:id", perm(entity.ModuleProducts, entity.ActionUpdate), productHandler.Update)
	products.Delete("/:id", perm(entity.ModuleProducts, entity.ActionDelete), productHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", perm(entity.ModuleCustomers, entity.ActionCreate), customerHandler.Create)
	customers.Get("/", perm(entity.ModuleCustomers, entity.ActionRead), customerHandler.List)
	customers.Get("/:id", perm(entity.ModuleCustomers, entity.ActionRead), customerHandler.GetByID)
	customers.Put("/:id", perm(entity.ModuleCustomers, entity.ActionUpdate), customerHandler.Update)
	customers.Delete("/:id", perm(entity.ModuleCustomers, entity.ActionDelete), customerHandler.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", perm(entity.ModuleInvoices, entity.ActionCreate), invoiceHandler.Create)
	invoices.Get("/", perm(entity.ModuleInvoices, entity.ActionRead), invoiceHandler.List)
	invoices.Get("/:id", perm(entity.ModuleInvoices, entity.ActionRead), invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", perm(entity.ModuleInvoices, entity.ActionRead), invoiceHandler.DownloadPDF)
	invoices.Put("/:id", perm(entity.ModuleInvoices, entity.ActionUpdate), invoiceHandler.Update)
	invoices.Delete("/:id", perm(entity.ModuleInvoices, entity.ActionDelete), invoiceHandler.Delete)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", perm(entity.ModuleReports, entity.ActionRead), dashboardHandler.Stats)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/sales", perm(entity.ModuleReports, entity.ActionRead), reportHandler.Sales)
}
