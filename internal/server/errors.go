package server

import (
	"errors"
	"net/http"
	"strings"

	customerdomain "github.com/evabo/wasteflow/internal/customer/domain"
	invoicedomain "github.com/evabo/wasteflow/internal/invoice/domain"
	messagedomain "github.com/evabo/wasteflow/internal/message/domain"
	paymentdomain "github.com/evabo/wasteflow/internal/payment/domain"
	productdomain "github.com/evabo/wasteflow/internal/product/domain"
	supplierdomain "github.com/evabo/wasteflow/internal/supplier/domain"
	wasterecorddomain "github.com/evabo/wasteflow/internal/wasterecord/domain"
	"github.com/evabo/wasteflow/pkg/db"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	if dup := asDuplicateError(err); dup != nil {
		payload := errorPayload{
			Type:    "conflict",
			Message: "duplicate supplier",
		}
		for _, field := range dup.Fields {
			payload.Errors = append(payload.Errors, ValidationError{
				Field:   field,
				Code:    "duplicate",
				Message: "value already in use",
			})
		}
		return http.StatusConflict, payload
	}

	switch {
	case errors.Is(err, invoicedomain.ErrIllegalTransition):
		return http.StatusConflict, errorPayload{
			Type:    "illegal_transition",
			Message: "status transition not allowed",
		}
	case errors.Is(err, invoicedomain.ErrStatusConflict):
		return http.StatusConflict, errorPayload{
			Type:    "status_conflict",
			Message: "invoice status changed concurrently",
		}
	case errors.Is(err, invoicedomain.ErrMissingCustomerEmail):
		return http.StatusConflict, errorPayload{
			Type:    "missing_customer_email",
			Message: "customer has no email address",
		}
	case errors.Is(err, invoicedomain.ErrNotificationFailed):
		return http.StatusBadGateway, errorPayload{
			Type:    "notification_failed",
			Message: "invoice notification could not be delivered",
		}
	case db.IsDuplicateKeyErr(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

// classifyErrorForLog feeds the request-log middleware the same buckets
// the response mapping uses.
func classifyErrorForLog(err error) (string, string) {
	status, payload := mapError(err)
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error", payload.Type
	case status >= http.StatusBadRequest:
		return "client_error", payload.Type
	default:
		return "", ""
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func asDuplicateError(err error) *supplierdomain.DuplicateError {
	var dup *supplierdomain.DuplicateError
	if errors.As(err, &dup) && dup != nil {
		return dup
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isCustomerValidationError(err),
		isSupplierValidationError(err),
		isProductValidationError(err),
		isWasteRecordValidationError(err),
		isInvoiceValidationError(err),
		isPaymentValidationError(err),
		isMessageValidationError(err):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, supplierdomain.ErrNotFound),
		errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, wasterecorddomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, paymentdomain.ErrNotFound),
		errors.Is(err, messagedomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	default:
		return err.Error()
	}
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}
