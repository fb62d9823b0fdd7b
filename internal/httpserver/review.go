package httpserver

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"repupulse-api/internal/review"
	pkgErrors "repupulse-api/pkg/errors"
	"repupulse-api/pkg/paginator"
	"repupulse-api/pkg/response"
)

func (srv *HTTPServer) listReviews(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		response.HttpError(c, pkgErrors.NewHTTPError(400, "invalid pagination query"))
		return
	}

	out, err := srv.reviewUC.Get(ctx, sc, review.GetInput{
		Filter:        reviewFilterFromQuery(c),
		PaginateQuery: pq,
	})
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.listReviews.Get: %v", err)
		srv.reviewError(c, err)
		return
	}

	response.OK(c, gin.H{
		"reviews":   out.Reviews,
		"paginator": out.Paginator.ToResponse(),
	})
}

func (srv *HTTPServer) reviewStats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	stats, err := srv.reviewUC.Stats(ctx, sc)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.reviewStats.Stats: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}

func (srv *HTTPServer) searchReviews(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	reviews, err := srv.reviewUC.Search(ctx, sc, review.SearchInput{
		Keyword: c.Query("q"),
		Limit:   limit,
	})
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.searchReviews.Search: %v", err)
		srv.reviewError(c, err)
		return
	}

	response.OK(c, gin.H{"reviews": reviews})
}

func reviewFilterFromQuery(c *gin.Context) review.Filter {
	f := review.Filter{
		PlatformName: c.Query("platform"),
		Sentiment:    c.Query("sentiment"),
	}

	if v, err := strconv.ParseFloat(c.Query("min_rating"), 64); err == nil {
		f.MinRating = v
	}
	if v, err := strconv.ParseFloat(c.Query("max_rating"), 64); err == nil {
		f.MaxRating = v
	}
	if v, err := time.Parse(time.RFC3339, c.Query("from")); err == nil {
		f.From = v
	}
	if v, err := time.Parse(time.RFC3339, c.Query("to")); err == nil {
		f.To = v
	}

	return f
}

func (srv *HTTPServer) reviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, review.ErrInvalidSentiment),
		errors.Is(err, review.ErrEmptyKeyword):
		response.HttpError(c, pkgErrors.NewHTTPError(400, err.Error()))
	default:
		response.Error(c, err)
	}
}
