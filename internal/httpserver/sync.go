package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repupulse-api/internal/syncjob"
	pkgErrors "repupulse-api/pkg/errors"
	"repupulse-api/pkg/response"
)

// runSync is the scheduler entry point for the ingestion pipeline. It never
// propagates an internal error as anything but a JSON body: the scheduler
// only needs success/failure plus a count.
func (srv *HTTPServer) runSync(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := srv.aggregatorUC.IngestAll(ctx)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.runSync.IngestAll: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":        false,
			"reviewsFetched": 0,
			"message":        "sync run failed",
		})
		return
	}

	message := fmt.Sprintf("Synced %d company(ies), %d review(s) fetched", summary.Companies, summary.ReviewsFetched)
	if len(summary.Failures) > 0 {
		message = fmt.Sprintf("%s, %d company(ies) failed", message, len(summary.Failures))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"reviewsFetched": summary.ReviewsFetched,
		"message":        message,
	})
}

// runCompanySync triggers ingestion for a single company.
func (srv *HTTPServer) runCompanySync(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	count, err := srv.aggregatorUC.IngestCompany(ctx, sc)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.runCompanySync.IngestCompany: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"reviews_fetched": count})
}

func (srv *HTTPServer) listSyncJobs(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	jobs, err := srv.syncjobUC.List(ctx, sc, syncjob.ListInput{
		PlatformName: c.Query("platform"),
		Limit:        limit,
	})
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.listSyncJobs.List: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"jobs": jobs})
}

func (srv *HTTPServer) latestSyncJob(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	job, err := srv.syncjobUC.Latest(ctx, sc, c.Query("platform"))
	if err != nil {
		if errors.Is(err, syncjob.ErrJobNotFound) {
			response.HttpError(c, pkgErrors.NewHTTPError(404, err.Error()))
			return
		}
		srv.logger.Errorf(ctx, "internal.httpserver.latestSyncJob.Latest: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, job)
}

func (srv *HTTPServer) syncStats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	stats, err := srv.syncjobUC.Stats(ctx, sc)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.syncStats.Stats: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}

func (srv *HTTPServer) syncSuccessRate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.Query("days"))
	rate, err := srv.syncjobUC.SuccessRate(ctx, sc, days)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.syncSuccessRate.SuccessRate: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"success_rate": rate})
}
