package calculation

import (
	"github.com/darkhan2409/security-cost-calculator/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/calculate",
		middleware.RateLimitByIP(2, 5),
		handler.Calculate,
	)
}
