package stubstore

import (
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitByIP(50, 100))

	requests := r.Group("/leave_requests")
	{
		requests.GET("", handler.List)
		requests.GET("/:id", handler.GetByID)
		requests.POST("", handler.Create)
		requests.PUT("/:id", handler.Update)
	}
}
