package estimate

import (
	"github.com/darkhan2409/security-cost-calculator/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	drafts := r.Group("/estimates")
	drafts.Use(middleware.RateLimitByIP(10, 20))
	{
		drafts.POST("", handler.CreateDraft)
		drafts.GET("/:id", handler.GetDraft)
		drafts.DELETE("/:id", handler.DeleteDraft)

		drafts.POST("/:id/posts", handler.AddPost)
		drafts.PUT("/:id/posts/:postID", handler.UpdatePost)
		drafts.DELETE("/:id/posts/:postID", handler.RemovePost)

		drafts.POST("/:id/posts/:postID/staff", handler.AddStaff)
		drafts.PUT("/:id/posts/:postID/staff/:staffID", handler.UpdateStaff)
		drafts.DELETE("/:id/posts/:postID/staff/:staffID", handler.RemoveStaff)

		drafts.PUT("/:id/tmc", handler.SelectTMC)
		drafts.DELETE("/:id/tmc/:itemID", handler.UnselectTMC)
		drafts.PUT("/:id/markup", handler.SetMarkup)

		drafts.POST("/:id/calculate", handler.Calculate)
	}
}
