package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to its HTTP representation. Server-side
// errors are logged and their detail hidden from the client.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := domainerr.HTTPStatus(err)
	message := err.Error()

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest reports a malformed request body or parameter
func respondBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: detail,
	})
}
