package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/proreps/crm-backend/internal/application/auth"
	"github.com/proreps/crm-backend/internal/application/usecase"
	infrapdf "github.com/proreps/crm-backend/internal/infrastructure/pdf"
	"github.com/proreps/crm-backend/internal/infrastructure/postgres"
	httpRouter "github.com/proreps/crm-backend/internal/interfaces/http"
	"github.com/proreps/crm-backend/internal/metrics"
	"github.com/proreps/crm-backend/pkg/config"
	"github.com/proreps/crm-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do schema")
	}
	if cfg.Seed.DemoData {
		if err := postgres.Seed(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("seed de dados de demonstração")
		}
		log.Info().Msg("dados de demonstração carregados")
	}

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo)
	quoteUC := usecase.NewQuoteUseCase(quoteRepo)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, saleRepo, customerRepo, leadRepo, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(metrics.Middleware())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ProReps CRM API",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CustomerUC:    customerUC,
		SaleUC:        saleUC,
		LeadUC:        leadUC,
		QuoteUC:       quoteUC,
		AppointmentUC: appointmentUC,
		CompanyUC:     companyUC,
		ReportUC:      reportUC,
		Pool:          pool,
		JWTSecret:     cfg.JWT.Secret,
	})

	// SPA: arquivos estáticos do frontend; qualquer rota não-API cai no index.html
	app.Static("/", cfg.HTTP.StaticDir)
	app.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"code": "NOT_FOUND", "message": "rota não encontrada"})
		}
		return c.SendFile(filepath.Join(cfg.HTTP.StaticDir, "index.html"))
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
