// Package server assembles the HTTP router: middleware, services, handlers
// and routes.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"walletwise/internal/config"
	"walletwise/internal/handlers"
	"walletwise/internal/middleware"
	"walletwise/internal/services"

	_ "walletwise/internal/docs" // Import swagger docs
)

// NewRouter wires every service and handler against db and registers the
// /api routes.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Services
	auditService := services.NewAuditService(db)
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	savingsService := services.NewSavingsService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Handlers
	userHandler := handlers.NewUserHandler(userService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	savingsHandler := handlers.NewSavingsHandler(savingsService, auditService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.NoRoute(handlers.NoRoute)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := api.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.ListUsers)

	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:userId", transactionHandler.GetTransactions)
	transactions.GET("/:userId/history", transactionHandler.GetTransactionHistory)
	transactions.GET("/:userId/trends", analyticsHandler.GetTrends)

	// Each method has its own route tree: reads key on the owner, writes on
	// the record.
	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("/:userId", budgetHandler.GetBudgets)
	budgets.GET("/:userId/summary", analyticsHandler.GetBudgetSummary)
	budgets.PUT("/:budgetId", budgetHandler.UpdateBudget)
	budgets.DELETE("/:budgetId", budgetHandler.DeleteBudget)

	savings := api.Group("/savings")
	savings.POST("", savingsHandler.CreateSavingsGoal)
	savings.GET("/:userId", savingsHandler.GetSavingsGoals)
	savings.PUT("/:savingGoalId", savingsHandler.AllocateFunds)
	savings.DELETE("/:savingGoalId", savingsHandler.DeleteSavingsGoal)

	api.GET("/dashboard/:userId", analyticsHandler.GetDashboard)

	return router
}
