package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"repupulse-api/internal/credential"
	pkgErrors "repupulse-api/pkg/errors"
	"repupulse-api/pkg/response"
)

func (srv *HTTPServer) listCredentials(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	creds, err := srv.credentialSt.List(ctx, sc, c.Query("platform"))
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.listCredentials.List: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"credentials": creds})
}

type saveCredentialReq struct {
	PlatformName string `json:"platform_name" binding:"required"`
	KeyName      string `json:"key_name" binding:"required"`
	Value        string `json:"value" binding:"required"`
}

func (srv *HTTPServer) saveCredential(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	var req saveCredentialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HttpError(c, pkgErrors.NewHTTPError(400, "invalid request body"))
		return
	}

	cred, err := srv.credentialSt.Save(ctx, sc, credential.SaveInput{
		PlatformName: req.PlatformName,
		KeyName:      req.KeyName,
		Value:        req.Value,
	})
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.saveCredential.Save: %v", err)
		srv.credentialError(c, err)
		return
	}

	response.OK(c, cred)
}

func (srv *HTTPServer) deleteCredential(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := srv.companyScope(c)
	if !ok {
		return
	}

	platformName := c.Query("platform")
	keyName := c.Query("key")
	if platformName == "" || keyName == "" {
		response.HttpError(c, pkgErrors.NewHTTPError(400, "platform and key query parameters required"))
		return
	}

	if err := srv.credentialSt.Delete(ctx, sc, platformName, keyName); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.deleteCredential.Delete: %v", err)
		srv.credentialError(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true})
}

func (srv *HTTPServer) credentialError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, credential.ErrKeyNotFound):
		response.HttpError(c, pkgErrors.NewHTTPError(404, err.Error()))
	case errors.Is(err, credential.ErrEmptyValue),
		errors.Is(err, credential.ErrEmptyKeyName),
		errors.Is(err, credential.ErrEmptyPlatform):
		response.HttpError(c, pkgErrors.NewHTTPError(400, err.Error()))
	default:
		response.Error(c, err)
	}
}
