// Package server wires services and handlers into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"luxeledger/internal/handlers"
	"luxeledger/internal/insight"
	"luxeledger/internal/middleware"
	"luxeledger/internal/notify"
	"luxeledger/internal/services"

	_ "luxeledger/internal/docs" // Import swagger docs
)

// Options are the collaborators the router is built from.
type Options struct {
	DB       *gorm.DB
	Clock    services.Clock
	Notifier notify.Notifier
	Insight  *insight.Generator
}

// NewRouter builds the services and handlers over opts and registers every
// route.
func NewRouter(opts Options) *gin.Engine {
	db := opts.DB

	auditService := services.NewAuditService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db, opts.Clock, opts.Notifier)
	importService := services.NewImportService(db)
	budgetService := services.NewBudgetService(db, opts.Clock)
	statsService := services.NewStatsService(db, opts.Clock, opts.Insight)
	settingsService := services.NewSettingsService(db)

	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	importHandler := handlers.NewImportHandler(importService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	statsHandler := handlers.NewStatsHandler(statsService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, auditService)
	auditHandler := handlers.NewAuditHandler(auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/parsed", transactionHandler.CreateParsedTransaction)
	transactions.POST("/import", importHandler.Import)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory)

	budgets := v1.Group("/budgets")
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.POST("/evaluate", budgetHandler.EvaluateBudget)
	budgets.PUT("/:category", budgetHandler.SetBudget)

	stats := v1.Group("/stats")
	stats.GET("/period", statsHandler.GetPeriod)
	stats.GET("/summary", statsHandler.GetSummary)
	stats.GET("/recent", statsHandler.GetRecent)
	stats.GET("/insight", statsHandler.GetInsight)

	v1.GET("/settings", settingsHandler.GetSettings)
	v1.PUT("/settings", settingsHandler.UpdateSettings)
	v1.GET("/currencies", settingsHandler.ListCurrencies)

	v1.GET("/audit-logs", auditHandler.ListAuditLogs)

	return router
}
