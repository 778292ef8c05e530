package salary

import (
	"github.com/darkhan2409/security-cost-calculator/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	salaries := r.Group("/salary")
	{
		salaries.POST("/breakdown",
			middleware.RateLimitByIP(5, 10),
			handler.Breakdown,
		)
	}
}
