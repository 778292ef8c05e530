package app

import (
	"database/sql"

	"github.com/darkhan2409/security-cost-calculator/internal/calculation"
	"github.com/darkhan2409/security-cost-calculator/internal/estimate"
	"github.com/darkhan2409/security-cost-calculator/internal/messaging/kafka"
	"github.com/darkhan2409/security-cost-calculator/internal/salary"
	"github.com/darkhan2409/security-cost-calculator/internal/tmc"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	tmcRepo := tmc.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	tmcService := tmc.NewService(db, tmcRepo, rdb)
	calculationService := calculation.NewServiceWithOutbox(db, tmcRepo, outboxRepo)
	estimateService := estimate.NewService(calculationService)

	// --- Handlers ---
	tmcHandler := tmc.NewHandler(tmcService)
	calculationHandler := calculation.NewHandler(calculationService)
	estimateHandler := estimate.NewHandler(estimateService)
	salaryHandler := salary.NewHandler()

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		tmc.RegisterRoutes(api, tmcHandler)
		calculation.RegisterRoutes(api, calculationHandler)
		estimate.RegisterRoutes(api, estimateHandler)
		salary.RegisterRoutes(api, salaryHandler)
	}

	return nil
}
