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

	"github.com/majidtech25/my-project02/internal/application/auth"
	"github.com/majidtech25/my-project02/internal/application/day"
	"github.com/majidtech25/my-project02/internal/application/report"
	"github.com/majidtech25/my-project02/internal/application/sales"
	"github.com/majidtech25/my-project02/internal/application/usecase"
	infrapdf "github.com/majidtech25/my-project02/internal/infrastructure/pdf"
	"github.com/majidtech25/my-project02/internal/infrastructure/storage"
	httpRouter "github.com/majidtech25/my-project02/internal/interfaces/http"
	"github.com/majidtech25/my-project02/pkg/config"
	"github.com/majidtech25/my-project02/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: no se podrán emitir tokens")
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer store.Close()

	// "Hoy" se calcula en la zona horaria del negocio
	loc := cfg.App.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	repos, tx := store.Repos, store.Tx
	employeeUC := usecase.NewEmployeeUseCase(tx, repos, log.Component("employees"))
	categoryUC := usecase.NewCategoryUseCase(repos.Categories)
	supplierUC := usecase.NewSupplierUseCase(repos.Suppliers)
	productUC := usecase.NewProductUseCase(tx, repos, log.Component("products"))
	dayUC := day.NewDayUseCase(tx, repos, clock, log.Component("day"))
	saleUC := sales.NewSaleUseCase(tx, repos, clock, log.Component("sales"))
	creditUC := sales.NewCreditUseCase(tx, repos, clock, log.Component("credits"))

	// PDF: reporte diario de ventas
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewReportUseCase(repos, pdfGenerator, clock, report.Config{
		BusinessName:      cfg.App.Name,
		LowStockThreshold: cfg.Reports.LowStockThreshold,
		TopProductsLimit:  cfg.Reports.TopProductsLimit,
	})
	authUC := auth.NewAuthUseCase(repos.Employees, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Duka POS API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "driver": store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		EmployeeUC: employeeUC,
		CategoryUC: categoryUC,
		SupplierUC: supplierUC,
		ProductUC:  productUC,
		DayUC:      dayUC,
		SaleUC:     saleUC,
		CreditUC:   creditUC,
		ReportUC:   reportUC,
		Employees:  repos.Employees,
		Tokens:     httpRouter.TokenConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer},
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
