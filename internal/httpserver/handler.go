package httpserver

import (
	"repupulse-api/internal/middleware"
)

// mapHandlers wires middleware and routes.
func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	api := srv.gin.Group("/internal/api/v1")

	// Scheduler entry points.
	api.POST("/sync/run", srv.runSync)
	api.POST("/notifications/run", srv.runNotifications)

	// Admin surface, scoped per company.
	company := api.Group("/companies/:company_id")
	{
		company.POST("/sync/run", srv.runCompanySync)
		company.GET("/sync/jobs", srv.listSyncJobs)
		company.GET("/sync/jobs/latest", srv.latestSyncJob)
		company.GET("/sync/stats", srv.syncStats)
		company.GET("/sync/success-rate", srv.syncSuccessRate)

		company.GET("/reviews", srv.listReviews)
		company.GET("/reviews/stats", srv.reviewStats)
		company.GET("/reviews/search", srv.searchReviews)

		company.GET("/notifications/configs", srv.listNotificationConfigs)
		company.POST("/notifications/configs", srv.createNotificationConfig)
		company.PATCH("/notifications/configs/:id", srv.updateNotificationConfig)
		company.DELETE("/notifications/configs/:id", srv.deleteNotificationConfig)
		company.POST("/notifications/configs/:id/test", srv.testNotification)
		company.POST("/notifications/run", srv.runCompanyNotifications)
		company.GET("/notifications/logs", srv.listNotificationLogs)
		company.GET("/notifications/stats", srv.notificationStats)

		company.GET("/credentials", srv.listCredentials)
		company.PUT("/credentials", srv.saveCredential)
		company.DELETE("/credentials", srv.deleteCredential)
	}

	return nil
}
