package router

import (
	"github.com/gin-gonic/gin"

	"github.com/hirenow/hirenow-backend/internal/config"
	"github.com/hirenow/hirenow-backend/internal/http/handlers"
	"github.com/hirenow/hirenow-backend/internal/http/middleware"
	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	laborerHandler *handlers.LaborerHandler,
	contractorHandler *handlers.ContractorHandler,
	projectHandler *handlers.ProjectHandler,
	hireHandler *handlers.HireHandler,
	reportHandler *handlers.ReportHandler,
	wsHandler *handlers.WSHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/session", authHandler.CreateSession)
		authGroup.GET("/session", authHandler.GetSession)
	}

	protectedAuth := api.Group("/auth")
	protectedAuth.Use(middleware.AuthMiddleware(tokenManager))
	{
		protectedAuth.DELETE("/session", authHandler.DeleteSession)
	}

	// Публичные маршруты
	api.POST("/laborers", laborerHandler.Register)
	api.GET("/laborers", laborerHandler.List)
	api.GET("/laborers/options", laborerHandler.Options)
	api.GET("/laborers/:id", laborerHandler.Get)
	api.POST("/contractors", contractorHandler.Register)
	api.GET("/contractors/:id", contractorHandler.Get)
	api.GET("/projects/:id", projectHandler.Get)
	api.GET("/ws", wsHandler.Serve)

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.GET("/hire-requests/my", hireHandler.ListMy)

		protected.POST("/reports", reportHandler.Create)
		protected.GET("/reports/my", reportHandler.ListMy)

		// Действия подрядчика
		contractorOnly := protected.Group("/")
		contractorOnly.Use(middleware.RequireRole(models.RoleContractor))
		{
			contractorOnly.POST("/projects", projectHandler.Create)
			contractorOnly.GET("/projects/my", projectHandler.ListMy)
			contractorOnly.PUT("/projects/:id/status", projectHandler.Complete)

			contractorOnly.POST("/hire-requests", hireHandler.Create)
			contractorOnly.POST("/hire-requests/:id/approve", hireHandler.Approve)
			contractorOnly.POST("/hire-requests/:id/deny", hireHandler.Deny)
			contractorOnly.POST("/hire-requests/:id/amend", hireHandler.Amend)
			contractorOnly.POST("/hire-requests/:id/complete", hireHandler.Complete)

			contractorOnly.POST("/laborers/:id/ratings", laborerHandler.Rate)
		}

		// Действия рабочего
		laborerOnly := protected.Group("/")
		laborerOnly.Use(middleware.RequireRole(models.RoleLaborer))
		{
			laborerOnly.POST("/hire-requests/:id/accept", hireHandler.Accept)
			laborerOnly.POST("/hire-requests/:id/decline", hireHandler.Decline)
			laborerOnly.POST("/hire-requests/:id/counter", hireHandler.Counter)

			laborerOnly.POST("/contractors/:id/ratings", contractorHandler.Rate)
		}
	}

	return r
}
