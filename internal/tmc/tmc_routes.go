package tmc

import (
	"github.com/darkhan2409/security-cost-calculator/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	items := r.Group("/tmc")
	{
		// /summary before /:id so gin does not treat it as an id
		items.GET("",
			middleware.RateLimitByIP(5, 10),
			handler.GetAll,
		)
		items.GET("/summary",
			middleware.RateLimitByIP(5, 10),
			handler.Summary,
		)
		items.GET("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.GetById,
		)
		items.POST("",
			middleware.RateLimitByIP(1, 3),
			handler.Create,
		)
		items.DELETE("/:id",
			middleware.RateLimitByIP(1, 3),
			handler.Delete,
		)
	}
}
