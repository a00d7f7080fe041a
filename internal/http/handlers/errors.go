package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"truckqr/internal/domain"
	"truckqr/internal/http/middleware"
	"truckqr/internal/utils"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ValidationDetails lists every rejected field of a submission.
type ValidationDetails struct {
	Errors []string     `json:"errors"`
	Fields []fieldError `json:"fields"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Anything that is
// not a known domain error is logged and reported generically.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusUnprocessableEntity, "validation_error", "submission has invalid fields", validationDetails(err))
	case domain.IsPayloadTooLarge(err):
		respondError(c, http.StatusRequestEntityTooLarge, "payload_too_large", err.Error(), nil)
	default:
		_ = c.Error(err)
		utils.L().Error("unexpected error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}

func validationDetails(err error) ValidationDetails {
	d := ValidationDetails{Errors: domain.ValidationMessages(err)}
	var batch domain.ValidationErrors
	if errors.As(err, &batch) {
		for _, f := range batch.Fields {
			d.Fields = append(d.Fields, fieldError{Field: f.Field, Message: f.Msg})
		}
	}
	return d
}
