package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	appauth "github.com/proreps/crm-backend/internal/application/auth"
	"github.com/proreps/crm-backend/internal/application/usecase"
	"github.com/proreps/crm-backend/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *appauth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CustomerUC    *usecase.CustomerUseCase
	SaleUC        *usecase.SaleUseCase
	LeadUC        *usecase.LeadUseCase
	QuoteUC       *usecase.QuoteUseCase
	AppointmentUC *usecase.AppointmentUseCase
	CompanyUC     *usecase.CompanyUseCase
	ReportUC      *usecase.ReportUseCase
	Pool          *pgxpool.Pool
	JWTSecret     string
}

// Router registra as rotas da API. Rotas literais (stats, today, status/:status)
// vêm antes de /:id para o Fiber não engolir o literal como parâmetro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Health (público)
	healthHandler := NewHealthHandler(deps.Pool)
	api.Get("/health", healthHandler.Health)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/login", authHandler.Login)
	api.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	api.Post("/change-password", AuthMiddleware(deps.JWTSecret), authHandler.ChangePassword)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil do próprio usuário: registrado antes do grupo admin de /users
	// para não cair no RequireRole.
	protected.Get("/users/profile", authHandler.Me)
	protected.Put("/users/profile", authHandler.UpdateProfile)
	protected.Post("/users/change-password", authHandler.ChangePassword)

	// Users (somente admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/stats", userHandler.Stats)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id", userHandler.Update)
	users.Post("/:id/toggle-status", userHandler.ToggleStatus)
	users.Delete("/:id", userHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/stats", customerHandler.Stats)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Patch("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Sales
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/stats", saleHandler.Stats)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Patch("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Leads
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Get("/stats", leadHandler.Stats)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Patch("/:id", leadHandler.Update)
	leads.Delete("/:id", leadHandler.Delete)

	// Quotes
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/stats", quoteHandler.Stats)
	quotes.Get("/status/:status", quoteHandler.ListByStatus)
	quotes.Get("/client/:clientId", quoteHandler.ListByClient)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Patch("/:id", quoteHandler.Update)
	quotes.Delete("/:id", quoteHandler.Delete)

	// Appointments
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/stats", appointmentHandler.Stats)
	appointments.Get("/today", appointmentHandler.ListToday)
	appointments.Get("/week", appointmentHandler.ListWeek)
	appointments.Get("/upcoming", appointmentHandler.ListUpcoming)
	appointments.Get("/representative/:name", appointmentHandler.ListByRepresentative)
	appointments.Get("/client/:clientId", appointmentHandler.ListByClient)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Patch("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/stats", companyHandler.Stats)
	companies.Get("/active", companyHandler.ListActive)
	companies.Get("/expiring-contracts", companyHandler.ListExpiringContracts)
	companies.Get("/segment/:segment", companyHandler.ListBySegment)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Patch("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Post("/", reportHandler.Create)
	reports.Get("/", reportHandler.List)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Post("/generate/:type", reportHandler.Generate)
	reports.Get("/:id/pdf", reportHandler.ExportPDF)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Delete("/:id", reportHandler.Delete)
}
