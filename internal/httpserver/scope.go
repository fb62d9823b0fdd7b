package httpserver

import (
	"github.com/gin-gonic/gin"

	"repupulse-api/internal/model"
	"repupulse-api/pkg/errors"
	postgresPkg "repupulse-api/pkg/postgre"
	"repupulse-api/pkg/response"
)

// companyScope extracts and validates the company id path parameter. The
// second return is false when the request was already answered with an error.
func (srv *HTTPServer) companyScope(c *gin.Context) (model.Scope, bool) {
	companyID := c.Param("company_id")
	if err := postgresPkg.IsUUID(companyID); err != nil {
		response.HttpError(c, errors.NewHTTPError(400, "invalid company id"))
		return model.Scope{}, false
	}

	return model.Scope{CompanyID: companyID}, true
}
