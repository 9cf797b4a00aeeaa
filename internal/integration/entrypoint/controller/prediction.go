// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/usecase/prediction"
	"github.com/receipt-match/backend/internal/domain/valueobject"
	"github.com/receipt-match/backend/internal/integration/entrypoint/dto"
)

// PredictionController handles prediction and pattern endpoints.
type PredictionController struct {
	generateUseCase       *prediction.GeneratePredictionsUseCase
	listUseCase           *prediction.ListPredictionsUseCase
	feedbackUseCase       *prediction.RecordFeedbackUseCase
	manualOverrideUseCase *prediction.CreateManualOverrideUseCase
	listPatternsUseCase   *prediction.ListPatternsUseCase
	updatePatternUseCase  *prediction.UpdatePatternUseCase
}

// NewPredictionController creates a new prediction controller instance.
func NewPredictionController(
	generateUseCase *prediction.GeneratePredictionsUseCase,
	listUseCase *prediction.ListPredictionsUseCase,
	feedbackUseCase *prediction.RecordFeedbackUseCase,
	manualOverrideUseCase *prediction.CreateManualOverrideUseCase,
	listPatternsUseCase *prediction.ListPatternsUseCase,
	updatePatternUseCase *prediction.UpdatePatternUseCase,
) *PredictionController {
	return &PredictionController{
		generateUseCase:       generateUseCase,
		listUseCase:           listUseCase,
		feedbackUseCase:       feedbackUseCase,
		manualOverrideUseCase: manualOverrideUseCase,
		listPatternsUseCase:   listPatternsUseCase,
		updatePatternUseCase:  updatePatternUseCase,
	}
}

// Generate handles POST /predictions/generate requests.
func (c *PredictionController) Generate(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	// The body is optional; an absent or empty body means an unscoped pass.
	var req dto.GeneratePredictionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	transactionIDs := make([]uuid.UUID, 0, len(req.TransactionIDs))
	for _, raw := range req.TransactionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid transaction_ids",
			})
			return
		}
		transactionIDs = append(transactionIDs, id)
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), prediction.GeneratePredictionsInput{
		UserID:         userID,
		TransactionIDs: transactionIDs,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	generated := make([]dto.PredictionResponse, len(output.Generated))
	for i, p := range output.Generated {
		generated[i] = dto.ToPredictionResponse(p)
	}

	ctx.JSON(http.StatusOK, dto.GeneratePredictionsResponse{
		Generated: generated,
		Skipped:   output.Skipped,
	})
}

// List handles GET /predictions requests.
func (c *PredictionController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), prediction.ListPredictionsInput{UserID: userID})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	predictions := make([]dto.PredictionResponse, len(output.Predictions))
	for i, p := range output.Predictions {
		predictions[i] = dto.ToPredictionResponse(p)
	}

	ctx.JSON(http.StatusOK, dto.PredictionListResponse{Predictions: predictions})
}

// Confirm handles POST /predictions/:id/confirm requests.
func (c *PredictionController) Confirm(ctx *gin.Context) {
	c.applyFeedback(ctx, c.feedbackUseCase.Confirm)
}

// Reject handles POST /predictions/:id/reject requests.
func (c *PredictionController) Reject(ctx *gin.Context) {
	c.applyFeedback(ctx, c.feedbackUseCase.Reject)
}

func (c *PredictionController) applyFeedback(
	ctx *gin.Context,
	apply func(context.Context, prediction.FeedbackInput) (*prediction.FeedbackOutput, error),
) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	predictionID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := apply(ctx.Request.Context(), prediction.FeedbackInput{
		UserID:       userID,
		PredictionID: predictionID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPredictionResponse(output.Prediction))
}

// CreateManualOverride handles POST /predictions/override requests.
func (c *PredictionController) CreateManualOverride(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateManualOverrideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	transactionID, err := uuid.Parse(req.TransactionID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction_id",
		})
		return
	}

	output, err := c.manualOverrideUseCase.Execute(ctx.Request.Context(), prediction.CreateManualOverrideInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPredictionResponse(output.Prediction))
}

// ListPatterns handles GET /patterns requests.
func (c *PredictionController) ListPatterns(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listPatternsUseCase.Execute(ctx.Request.Context(), prediction.ListPatternsInput{UserID: userID})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	patterns := make([]dto.PatternResponse, len(output.Patterns))
	for i, summary := range output.Patterns {
		patterns[i] = dto.ToPatternResponse(summary)
	}

	ctx.JSON(http.StatusOK, dto.PatternListResponse{Patterns: patterns})
}

// UpdatePattern handles PATCH /patterns/:id requests.
func (c *PredictionController) UpdatePattern(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	patternID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePatternRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updatePatternUseCase.Execute(ctx.Request.Context(), prediction.UpdatePatternInput{
		UserID:               userID,
		PatternID:            patternID,
		IsSuppressed:         req.IsSuppressed,
		RequiresReceiptMatch: req.RequiresReceiptMatch,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	classification, err := valueobject.Classify(output.Pattern.ConfirmCount, output.Pattern.RejectCount)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPatternResponse(prediction.PatternSummary{
		Pattern:        output.Pattern,
		Classification: classification,
	}))
}
