// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/receipt-match/backend/internal/domain/error"
	"github.com/receipt-match/backend/internal/integration/entrypoint/dto"
	"github.com/receipt-match/backend/internal/integration/entrypoint/middleware"
)

// handleDomainError maps matching and pattern domain errors to HTTP responses.
// Errors that are neither fall through to a generic 500.
func handleDomainError(ctx *gin.Context, err error) {
	var matchErr *domainerror.MatchError
	if errors.As(err, &matchErr) {
		ctx.JSON(statusForMatchError(matchErr.Code), dto.ErrorResponse{
			Error: matchErr.Message,
			Code:  string(matchErr.Code),
		})
		return
	}

	var patternErr *domainerror.PatternError
	if errors.As(err, &patternErr) {
		ctx.JSON(statusForPatternError(patternErr.Code), dto.ErrorResponse{
			Error: patternErr.Message,
			Code:  string(patternErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForMatchError maps match error codes to HTTP status codes.
func statusForMatchError(code domainerror.MatchErrorCode) int {
	switch code {
	case domainerror.ErrCodeAmbiguousMatchTarget,
		domainerror.ErrCodeMissingMatchTarget,
		domainerror.ErrCodeEmptyGroup:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransactionGrouped,
		domainerror.ErrCodeMatchNotConfirmable:
		return http.StatusConflict
	case domainerror.ErrCodeReceiptNotFound,
		domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeGroupNotFound,
		domainerror.ErrCodeMatchNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedMatch:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// statusForPatternError maps pattern error codes to HTTP status codes.
func statusForPatternError(code domainerror.PatternErrorCode) int {
	switch code {
	case domainerror.ErrCodePredictionExists:
		return http.StatusConflict
	case domainerror.ErrCodePatternNotFound,
		domainerror.ErrCodePredictionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedPattern:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// requireUserID extracts the authenticated user ID from the Gin context,
// responding with 401 when the auth middleware did not run.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// parseUUIDParam parses a UUID path parameter, responding with 400 on failure.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseDateField parses a YYYY-MM-DD request field, responding with 400 on failure.
func parseDateField(ctx *gin.Context, value string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return date, true
}
