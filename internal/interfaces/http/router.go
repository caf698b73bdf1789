// Package http wires the helpdesk HTTP surface: repositories, use cases,
// gateways, and routes.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	categoryusecases "helpdesk/internal/application/category/usecases"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/notification"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/telegram"
	sharedDB "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
)

// Router holds the wired HTTP dependencies.
type Router struct {
	engine *gin.Engine
	config *config.Config
}

// NewRouter wires repositories, use cases, gateways, and handlers into a
// ready gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.NewLogger()

	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	txManager := sharedDB.NewTransactionManager(db)

	gateway := buildGateway(cfg, log)

	createTicketUC := usecases.NewCreateTicketUseCase(
		ticketRepo, userRepo, sequenceRepo, txManager, gateway, cfg.Ticket.MaxTextLength, log)
	appendMessageUC := usecases.NewAppendUserMessageUseCase(
		ticketRepo, userRepo, txManager, gateway, cfg.Ticket.MaxTextLength, log)
	staffReplyUC := usecases.NewStaffReplyUseCase(
		ticketRepo, userRepo, txManager, gateway, cfg.Ticket.MaxTextLength, log)
	getActiveTicketUC := usecases.NewGetActiveTicketUseCase(ticketRepo, userRepo, log)
	listCategoriesUC := categoryusecases.NewListCategoriesUseCase(categoryRepo, log)

	intakeHandler := tickethandlers.NewIntakeHandler(createTicketUC, appendMessageUC, getActiveTicketUC)
	staffHandler := tickethandlers.NewStaffHandler(staffReplyUC)
	categoryHandler := tickethandlers.NewCategoryHandler(listCategoriesUC)

	staffAuth := middleware.NewStaffAuthMiddleware(cfg.Auth.StaffToken)
	rateLimit := middleware.NewRateLimitMiddleware(
		ratelimit.NewRedisRateLimiter(redisClient), cfg.RateLimit)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		IntakeHandler:       intakeHandler,
		StaffHandler:        staffHandler,
		CategoryHandler:     categoryHandler,
		StaffAuthMiddleware: staffAuth,
		RateLimitMiddleware: rateLimit,
	})

	return &Router{engine: engine, config: cfg}
}

// buildGateway assembles the notification fan-out. Telegram always carries
// both channels; email mirrors staff alerts when a staff mailbox is set.
func buildGateway(cfg *config.Config, log logger.Interface) usecases.NotificationGateway {
	bot := telegram.NewBotService(cfg.Telegram)
	gateways := []usecases.NotificationGateway{
		notification.NewTelegramGateway(bot, cfg.Telegram, log),
	}
	if cfg.Email.StaffAddr != "" {
		gateways = append(gateways, notification.NewEmailGateway(cfg.Email, log))
	}
	return notification.NewCompositeGateway(gateways...)
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	return r.engine.Run(r.config.Server.GetAddr())
}
