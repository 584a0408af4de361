package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pyme/internal/application/analytics"
	"github.com/jhoicas/crm-pyme/internal/application/auth"
	"github.com/jhoicas/crm-pyme/internal/application/crm"
	"github.com/jhoicas/crm-pyme/internal/application/sales"
	"github.com/jhoicas/crm-pyme/internal/application/search"
	"github.com/jhoicas/crm-pyme/internal/application/usecase"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	MembershipUC   *usecase.MembershipUseCase
	CustomerUC     *usecase.CustomerUseCase
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	ServiceUC      *usecase.ServiceUseCase
	LeaveUC        *usecase.LeaveUseCase
	LeadUC         *crm.LeadUseCase
	OrderUC        *sales.OrderUseCase
	OrderPDFUC     *sales.PDFUseCase
	DashboardUC    *analytics.DashboardUseCase
	SearchUC       *search.UseCase
	MembershipRepo repository.MembershipRepository
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// Tres capas de protección: AuthMiddleware valida el token, TenantMiddleware
// exige empresa activa y resuelve el rol efectivo contra la membresía en DB,
// y RequireRole cierra cada operación a los roles permitidos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Con token pero sin empresa activa todavía
	authed := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authed.Post("/auth/select-company", authHandler.SelectCompany)
	authed.Post("/companies", authHandler.StartCompany)
	authed.Post("/companies/join", authHandler.JoinCompany)

	// Rutas de empresa: token + empresa activa + rol resuelto en DB
	tenant := authed.Group("/", TenantMiddleware(deps.MembershipRepo))

	adminOnly := RequireRole(entity.RoleAdmin)
	managers := RequireRole(entity.RoleAdmin, entity.RoleManager)
	allRoles := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff)

	// Memberships (solo Admin)
	memberships := tenant.Group("/memberships", adminOnly)
	membershipHandler := NewMembershipHandler(deps.MembershipUC)
	memberships.Get("/", membershipHandler.ListMembers)
	memberships.Post("/", membershipHandler.AddMember)
	memberships.Get("/pending", membershipHandler.ListPending)
	memberships.Post("/:id/approve", membershipHandler.Approve)
	memberships.Post("/:id/reject", membershipHandler.Reject)
	memberships.Put("/:id", membershipHandler.UpdateMember)
	memberships.Delete("/:id", membershipHandler.RemoveMember)

	// Customers
	customers := tenant.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", allRoles, customerHandler.Create)
	customers.Get("/", allRoles, customerHandler.List)
	customers.Get("/:id", allRoles, customerHandler.GetByID)
	customers.Put("/:id", managers, customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)

	// Leads
	leads := tenant.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", allRoles, leadHandler.Create)
	leads.Get("/", allRoles, leadHandler.List)
	leads.Get("/:id", allRoles, leadHandler.GetByID)
	leads.Put("/:id", managers, leadHandler.Update)
	leads.Delete("/:id", adminOnly, leadHandler.Delete)

	// Categories
	categories := tenant.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", managers, categoryHandler.Create)
	categories.Get("/", allRoles, categoryHandler.List)
	categories.Get("/:id", allRoles, categoryHandler.GetByID)
	categories.Put("/:id", managers, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products
	products := tenant.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", managers, productHandler.Create)
	products.Get("/", allRoles, productHandler.List)
	products.Get("/:id", allRoles, productHandler.GetByID)
	products.Put("/:id", managers, productHandler.Update)
	products.Put("/:id/stock", managers, productHandler.SetStock)
	products.Post("/:id/stock/increase", allRoles, productHandler.IncreaseStock)
	products.Post("/:id/stock/decrease", allRoles, productHandler.DecreaseStock)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Orders
	orders := tenant.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDFUC)
	orders.Post("/", allRoles, orderHandler.Create)
	orders.Get("/", allRoles, orderHandler.List)
	orders.Get("/pending", allRoles, orderHandler.ListPending)
	orders.Get("/:id", allRoles, orderHandler.GetByID)
	orders.Get("/:id/pdf", allRoles, orderHandler.DownloadPDF)
	orders.Put("/:id", managers, orderHandler.Update)
	orders.Delete("/:id", adminOnly, orderHandler.Delete)

	// Services
	services := tenant.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", allRoles, serviceHandler.Create)
	services.Get("/", allRoles, serviceHandler.List)
	services.Get("/completed", allRoles, serviceHandler.ListCompleted)
	services.Get("/:id", allRoles, serviceHandler.GetByID)
	services.Put("/:id", managers, serviceHandler.Update)
	services.Delete("/:id", adminOnly, serviceHandler.Delete)

	// Leaves
	leaves := tenant.Group("/leaves")
	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	leaves.Post("/", allRoles, leaveHandler.Apply)
	leaves.Get("/", allRoles, leaveHandler.List)
	leaves.Post("/:id/approve", managers, leaveHandler.Approve)
	leaves.Post("/:id/reject", managers, leaveHandler.Reject)

	// Dashboard y búsqueda
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	tenant.Get("/dashboard", allRoles, dashboardHandler.GetDashboard)
	searchHandler := NewSearchHandler(deps.SearchUC)
	tenant.Get("/search", allRoles, searchHandler.Search)
}
