package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cueros-api/internal/application/auth"
	"github.com/jhoicas/cueros-api/internal/application/client"
	"github.com/jhoicas/cueros-api/internal/application/ledger"
	"github.com/jhoicas/cueros-api/internal/application/movement"
	"github.com/jhoicas/cueros-api/internal/application/payment"
	"github.com/jhoicas/cueros-api/internal/application/report"
	"github.com/jhoicas/cueros-api/internal/domain/entity"
	"github.com/jhoicas/cueros-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *auth.UserUseCase
	MovementUC   *movement.MovementUseCase
	ClientUC     *client.ClientUseCase
	PaymentUC    *payment.PaymentUseCase
	LedgerUC     *ledger.LedgerUseCase
	ReportUC     *report.ReportUseCase
	LoginLimiter *LoginRateLimiter
	Logger       *logger.Logger
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	login := []fiber.Handler{authHandler.Login}
	if deps.LoginLimiter != nil {
		login = append([]fiber.Handler{deps.LoginLimiter.Middleware()}, login...)
	}
	api.Post("/auth/login", login...)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	protected.Get("/me", authHandler.Me)

	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.ReportUC, log)
	protected.Get("/stats", ledgerHandler.Stats)

	// Movimientos: lectura para todos, escritura solo admin
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements := protected.Group("/movements")
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", admin, movementHandler.Create)
	movements.Put("/:id", admin, movementHandler.Update)
	movements.Delete("/", admin, movementHandler.DeleteByCounterparty)
	movements.Delete("/:id", admin, movementHandler.Delete)
	protected.Post("/valuation", movementHandler.Valuate)

	// Clientes
	clientHandler := NewClientHandler(deps.ClientUC)
	clients := protected.Group("/clients")
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", admin, clientHandler.Create)
	clients.Put("/:id", admin, clientHandler.Update)
	clients.Delete("/:id", admin, clientHandler.Delete)

	// Pagos a cuenta
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments := protected.Group("/payments")
	payments.Get("/", paymentHandler.List)
	payments.Get("/balances", paymentHandler.Balances)
	payments.Post("/", admin, paymentHandler.Create)
	payments.Delete("/:id", admin, paymentHandler.Delete)

	// Saldos y exportes
	ledgerGroup := protected.Group("/ledger")
	ledgerGroup.Get("/summary", ledgerHandler.Summary)
	ledgerGroup.Get("/balances/:name", ledgerHandler.Balance)
	ledgerGroup.Get("/statements/:name", ledgerHandler.Statement)
	ledgerGroup.Get("/rollup", ledgerHandler.Rollup)

	// Usuarios (solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", admin)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
