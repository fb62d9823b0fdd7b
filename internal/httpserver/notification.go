package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repupulse-api/internal/notification"
	pkgErrors "repupulse-api/pkg/errors"
	"repupulse-api/pkg/response"
)

// runNotifications is the scheduler entry point for the dispatch pass.
func (srv *HTTPServer) runNotifications(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := srv.notificationUC.RunAll(ctx)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.runNotifications.RunAll: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":        false,
			"processedCount": 0,
			"message":        "notification run failed",
		})
		return
	}

	message := fmt.Sprintf("Processed %d notification(s) across %d company(ies)", summary.ProcessedCount, summary.Companies)
	if len(summary.Failures) > 0 {
		message = fmt.Sprintf("%s, %d company(ies) failed", message, len(summary.Failures))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"processedCount": summary.ProcessedCount,
		"message":        message,
	})
}

func (srv *HTTPServer) runCompanyNotifications(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	processed, err := srv.notificationUC.RunCompany(ctx, sc)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.runCompanyNotifications.RunCompany: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"processed_count": processed})
}

type createConfigReq struct {
	NotificationType string `json:"notification_type" binding:"required"`
	Recipient        string `json:"recipient" binding:"required"`
	AlertType        string `json:"alert_type" binding:"required"`
	IsActive         *bool  `json:"is_active"`
}

func (srv *HTTPServer) createNotificationConfig(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	var req createConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HttpError(c, pkgErrors.NewHTTPError(400, "invalid request body"))
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	cfg, err := srv.notificationUC.CreateConfig(ctx, sc, notification.CreateConfigInput{
		NotificationType: req.NotificationType,
		Recipient:        req.Recipient,
		AlertType:        req.AlertType,
		IsActive:         active,
	})
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.createNotificationConfig.CreateConfig: %v", err)
		srv.notificationError(c, err)
		return
	}

	response.OK(c, cfg)
}

type updateConfigReq struct {
	NotificationType *string `json:"notification_type"`
	Recipient        *string `json:"recipient"`
	AlertType        *string `json:"alert_type"`
	IsActive         *bool   `json:"is_active"`
}

func (srv *HTTPServer) updateNotificationConfig(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	var req updateConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HttpError(c, pkgErrors.NewHTTPError(400, "invalid request body"))
		return
	}

	cfg, err := srv.notificationUC.UpdateConfig(ctx, sc, notification.UpdateConfigInput{
		ID:               c.Param("id"),
		NotificationType: req.NotificationType,
		Recipient:        req.Recipient,
		AlertType:        req.AlertType,
		IsActive:         req.IsActive,
	})
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.updateNotificationConfig.UpdateConfig: %v", err)
		srv.notificationError(c, err)
		return
	}

	response.OK(c, cfg)
}

func (srv *HTTPServer) deleteNotificationConfig(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	if err := srv.notificationUC.DeleteConfig(ctx, sc, c.Param("id")); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.deleteNotificationConfig.DeleteConfig: %v", err)
		srv.notificationError(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true})
}

func (srv *HTTPServer) listNotificationConfigs(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	configs, err := srv.notificationUC.ListConfigs(ctx, sc)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.listNotificationConfigs.ListConfigs: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"configs": configs})
}

func (srv *HTTPServer) testNotification(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	logEntry, err := srv.notificationUC.Test(ctx, sc, c.Param("id"))
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.testNotification.Test: %v", err)
		srv.notificationError(c, err)
		return
	}

	response.OK(c, logEntry)
}

func (srv *HTTPServer) listNotificationLogs(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	logs, err := srv.notificationUC.ListLogs(ctx, sc, limit)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.listNotificationLogs.ListLogs: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"logs": logs})
}

func (srv *HTTPServer) notificationStats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	stats, err := srv.notificationUC.Stats(ctx, sc)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.notificationStats.Stats: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}

// notificationError maps domain sentinel errors onto HTTP statuses.
func (srv *HTTPServer) notificationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, notification.ErrConfigNotFound):
		response.HttpError(c, pkgErrors.NewHTTPError(404, err.Error()))
	case errors.Is(err, notification.ErrInvalidType),
		errors.Is(err, notification.ErrInvalidAlertType),
		errors.Is(err, notification.ErrRecipientRequired),
		errors.Is(err, notification.ErrNothingToUpdate):
		response.HttpError(c, pkgErrors.NewHTTPError(400, err.Error()))
	default:
		response.Error(c, err)
	}
}
