package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/service"
)

const BasePath = "/api/" + APIVersion

// RegisterRoutes mounts every endpoint on router.
func RegisterRoutes(router *gin.Engine, dashboard *service.DashboardService, session *service.SessionService, source string) {
	healthHandler := NewHealthHandler(dashboard, source)
	dashboardHandler := NewDashboardHandler(dashboard)
	txnHandler := NewTransactionHandler(dashboard)
	sessionHandler := NewSessionHandler(session)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, BasePath+"/")
	})
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	SetupSwagger(router)

	api := router.Group(BasePath)
	{
		api.GET("/", healthHandler.Status)
		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.GET("/transactions", txnHandler.List)
		api.GET("/user", sessionHandler.User)
		api.GET("/notifications", sessionHandler.Notifications)
		api.GET("/banner", sessionHandler.Banner)
	}
}
