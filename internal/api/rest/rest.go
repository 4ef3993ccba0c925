package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes.
// Every v1 route is wrapped by the given middlewares (authentication, rate limiting).
func SetupRoutes(router *gin.Engine, handler Handler, v1Middlewares ...gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1", v1Middlewares...)
	{
		// User balance and settlement
		v1.GET("/users/:id/balance", handler.GetBalance)
		v1.POST("/users/:id/address", handler.RegisterAddress)
		v1.POST("/users/:id/withdrawals", handler.Withdraw)
		v1.POST("/users/:id/merge", handler.MergeBalance)

		// Message tips
		v1.GET("/messages/:id/tips", handler.GetMessageTips)
		v1.POST("/messages/:id/tips", handler.TipMessage)
	}
}
