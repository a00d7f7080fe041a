package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindOrError parses a JSON or form body into dst, answering 400 on failure.
func BindOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBind(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "request body could not be parsed", err.Error())
		return false
	}
	return true
}
