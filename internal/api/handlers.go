package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/service"
)

// Services bundles what the handlers need.
type Services struct {
	Accounts service.IAccountService
	Recipes  service.IRecipeService
	Sets     service.ISetService
}

// RegisterRoutes registers all API routes. authLimit, when non-nil, guards
// signup and login.
func RegisterRoutes(router gin.IRouter, svc Services, authLimit gin.HandlerFunc, log *zap.Logger) {
	var limit []gin.HandlerFunc
	if authLimit != nil {
		limit = append(limit, authLimit)
	}

	NewAuthHandler(svc.Accounts, log, limit...).RegisterRoutes(router)
	NewRecipeHandler(svc.Recipes, log).RegisterRoutes(router)
	NewSetHandler(svc.Sets, log).RegisterRoutes(router)
}

// HealthCheck reports whether the database answers a ping.
func HealthCheck(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
