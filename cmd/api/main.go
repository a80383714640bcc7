package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jhoicas/cueros-api/docs"
	"github.com/jhoicas/cueros-api/internal/application/auth"
	"github.com/jhoicas/cueros-api/internal/application/client"
	"github.com/jhoicas/cueros-api/internal/application/ledger"
	"github.com/jhoicas/cueros-api/internal/application/movement"
	"github.com/jhoicas/cueros-api/internal/application/payment"
	"github.com/jhoicas/cueros-api/internal/application/report"
	"github.com/jhoicas/cueros-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/cueros-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cueros-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/cueros-api/internal/interfaces/http"
	"github.com/jhoicas/cueros-api/pkg/config"
	"github.com/jhoicas/cueros-api/pkg/logger"
)

// @title                       Cueros API
// @version                     1.0
// @description                 Stock de cueros y sal, cuentas corrientes y pagos a cuenta.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacenamiento")
	}
	defer closeStore()

	userUC := auth.NewUserUseCase(repos.Users, bcrypt.DefaultCost)
	// En memoria no corre cmd/migrate: el admin se siembra al arrancar.
	if cfg.App.Storage == config.StorageMemory {
		if _, err := userUC.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("crear administrador inicial")
		}
	}

	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ledgerUC := ledger.NewLedgerUseCase(repos.Movements, repos.Payments)
	reportUC := report.NewReportUseCase(ledgerUC, report.Renderers{
		XLSX: export.NewExcelExporter(),
		CSV:  export.NewCSVExporter(),
		PDF:  infrapdf.NewStatementPDFGenerator(cfg.App.Name),
	}, repos)

	limiter := httpRouter.NewLoginRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)
	done := make(chan struct{})
	limiter.StartCleanup(5*time.Minute, done)
	defer close(done)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cueros API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.App.Storage})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		MovementUC:   movement.NewMovementUseCase(repos.Movements),
		ClientUC:     client.NewClientUseCase(repos.Clients),
		PaymentUC:    payment.NewPaymentUseCase(repos.Payments),
		LedgerUC:     ledgerUC,
		ReportUC:     reportUC,
		LoginLimiter: limiter,
		Logger:       log,
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
