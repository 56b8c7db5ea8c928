package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/handlers"
)

// RegisterRoutes регистрирует все HTTP маршруты шлюза.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.CompanyHandler.RegisterRoutes(api)
		appHandlers.GoogleHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.AIHandler.RegisterRoutes(api)
		appHandlers.SearchHandler.RegisterRoutes(api)
	}
}
