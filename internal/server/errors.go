package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	additionalproductdomain "github.com/tapetashop/tapeta/internal/additionalproduct/domain"
	authdomain "github.com/tapetashop/tapeta/internal/auth/domain"
	catalogdomain "github.com/tapetashop/tapeta/internal/catalog/domain"
	supplierdomain "github.com/tapetashop/tapeta/internal/supplier/domain"
	transactiondomain "github.com/tapetashop/tapeta/internal/transaction/domain"
	userdomain "github.com/tapetashop/tapeta/internal/user/domain"
	verificationdomain "github.com/tapetashop/tapeta/internal/verification/domain"
	"gorm.io/gorm"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid_request")
)

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorHandlingMiddleware maps domain errors recorded on the context to
// a status and the error payload shape after the handler chain runs.
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
		c.AbortWithStatusJSON(status, payload)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorResponse) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorResponse{
			Message: "invalid request",
			Error:   err.Error(),
		}
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse{Message: "authentication required"}
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, errorResponse{Message: "access denied"}
	case errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidToken):
		return http.StatusForbidden, errorResponse{
			Message: "invalid credentials",
			Error:   err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorResponse{
			Message: "not found",
			Error:   err.Error(),
		}
	case errors.Is(err, transactiondomain.ErrInsufficientStock):
		return http.StatusConflict, errorResponse{
			Message: "insufficient stock",
			Error:   err.Error(),
		}
	case errors.Is(err, catalogdomain.ErrStockRemains),
		errors.Is(err, additionalproductdomain.ErrStockRemains):
		return http.StatusConflict, errorResponse{
			Message: "stock or reservations remain",
			Error:   err.Error(),
		}
	case errors.Is(err, authdomain.ErrPhoneTaken):
		return http.StatusConflict, errorResponse{
			Message: "phone number already registered",
			Error:   err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorResponse{Message: "internal server error"}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, transactiondomain.ErrEmptyItems),
		errors.Is(err, transactiondomain.ErrUnknownItemKind),
		errors.Is(err, transactiondomain.ErrInvalidQuantity),
		errors.Is(err, catalogdomain.ErrInvalidRollWidth),
		errors.Is(err, userdomain.ErrInvalidRole),
		errors.Is(err, additionalproductdomain.ErrInvalidName),
		errors.Is(err, supplierdomain.ErrInvalidName),
		errors.Is(err, verificationdomain.ErrInvalidPhone):
		return true
	}
	return false
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, supplierdomain.ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, additionalproductdomain.ErrNotFound),
		errors.Is(err, userdomain.ErrNotFound),
		errors.Is(err, transactiondomain.ErrWallpaperNotFound),
		errors.Is(err, transactiondomain.ErrProductNotFound),
		errors.Is(err, transactiondomain.ErrSupplierNotFound):
		return true
	}
	return false
}
