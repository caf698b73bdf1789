package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	IntakeHandler       *tickethandlers.IntakeHandler
	StaffHandler        *tickethandlers.StaffHandler
	CategoryHandler     *tickethandlers.CategoryHandler
	StaffAuthMiddleware *middleware.StaffAuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	intake := engine.Group("/intake")
	intake.Use(config.RateLimitMiddleware.Limit())
	{
		intake.POST("/messages", config.IntakeHandler.ReceiveMessage)
		intake.GET("/users/:external_id/active-ticket", config.IntakeHandler.GetActiveTicket)
	}

	tickets := engine.Group("/tickets")
	tickets.Use(config.StaffAuthMiddleware.RequireStaff())
	{
		tickets.POST("/:id/reply", config.StaffHandler.Reply)
	}

	engine.GET("/categories", config.CategoryHandler.List)
}
