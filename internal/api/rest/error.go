package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/mobius-network/tipbot-ledger/internal/api/shared/errors"
	"github.com/mobius-network/tipbot-ledger/internal/domain"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
)

// domainError maps a domain sentinel to its HTTP status and code
type domainError struct {
	err    error
	status int
	code   apierrors.ErrorCode
}

var domainErrors = []domainError{
	{domain.ErrInvalidAddress, http.StatusBadRequest, apierrors.ErrCodeValidationFailed},
	{domain.ErrInvalidAmount, http.StatusBadRequest, apierrors.ErrCodeValidationFailed},
	{domain.ErrAccountNotFound, http.StatusNotFound, apierrors.ErrCodeNotFound},
	{domain.ErrNoTrustline, http.StatusUnprocessableEntity, apierrors.ErrCodeNoTrustline},
	{domain.ErrNothingToWithdraw, http.StatusUnprocessableEntity, apierrors.ErrCodeNothingToWithdraw},
	{domain.ErrSelfTip, http.StatusUnprocessableEntity, apierrors.ErrCodeSelfTip},
	{domain.ErrAlreadyTipped, http.StatusConflict, apierrors.ErrCodeAlreadyTipped},
	{domain.ErrMergeInProgress, http.StatusConflict, apierrors.ErrCodeMergeInProgress},
	{domain.ErrAddressAlreadyLinked, http.StatusConflict, apierrors.ErrCodeAddressAlreadyLinked},
	{domain.ErrCooldown, http.StatusTooManyRequests, apierrors.ErrCodeCooldown},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired, apierrors.ErrCodeInsufficientFunds},
	{domain.ErrPayoutFailed, http.StatusBadGateway, apierrors.ErrCodeServiceError},
}

// respondError sends the response matching a service error; unknown errors are logged as internal
func respondError(c *gin.Context, err error, fields ...zap.Field) {
	for _, de := range domainErrors {
		if errors.Is(err, de.err) {
			if de.status >= http.StatusInternalServerError {
				logger.ErrorCtx(c.Request.Context(), err, fields...)
			}
			c.JSON(de.status, apierrors.New(de.code, de.err.Error(), err.Error()))
			return
		}
	}

	respondInternalError(c, err, "Internal server error", fields...)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(details))
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}
