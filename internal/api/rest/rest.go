package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// User endpoints
		v1.GET("/users", handler.ListUsers)
		v1.POST("/users", handler.CreateUser)
		v1.GET("/users/:id", handler.GetUser)
		v1.PUT("/users/:id", handler.UpdateUser)
		v1.DELETE("/users/:id", handler.DeleteUser)

		// Payment endpoints
		v1.GET("/payments", handler.ListPayments)
		v1.POST("/payments", handler.CreatePayment)
		v1.GET("/payments/:id", handler.GetPayment)
		v1.PUT("/payments/:id", handler.UpdatePayment)
		v1.DELETE("/payments/:id", handler.DeletePayment)
	}
}
