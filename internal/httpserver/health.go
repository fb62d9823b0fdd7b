package httpserver

import (
	"github.com/gin-gonic/gin"

	"repupulse-api/pkg/errors"
	"repupulse-api/pkg/response"
)

// healthCheck reports overall service health, including database reachability.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "database connection failed"))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "repupulse-api",
		"version":  "1.0.0",
		"database": "connected",
	})
}

// readyCheck reports whether the service is ready to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "database connection not available"))
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"service":  "repupulse-api",
		"version":  "1.0.0",
		"database": "connected",
	})
}

// liveCheck reports process liveness only.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "repupulse-api",
		"version": "1.0.0",
	})
}
