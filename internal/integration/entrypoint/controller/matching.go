// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/usecase/matching"
	"github.com/receipt-match/backend/internal/integration/entrypoint/dto"
)

// MatchingController handles matching endpoints.
type MatchingController struct {
	proposeUseCase     *matching.ProposeMatchesUseCase
	candidatesUseCase  *matching.SelectCandidatesUseCase
	manualMatchUseCase *matching.CreateManualMatchUseCase
	confirmUseCase     *matching.ConfirmMatchUseCase
	rejectUseCase      *matching.RejectMatchUseCase
}

// NewMatchingController creates a new matching controller instance.
func NewMatchingController(
	proposeUseCase *matching.ProposeMatchesUseCase,
	candidatesUseCase *matching.SelectCandidatesUseCase,
	manualMatchUseCase *matching.CreateManualMatchUseCase,
	confirmUseCase *matching.ConfirmMatchUseCase,
	rejectUseCase *matching.RejectMatchUseCase,
) *MatchingController {
	return &MatchingController{
		proposeUseCase:     proposeUseCase,
		candidatesUseCase:  candidatesUseCase,
		manualMatchUseCase: manualMatchUseCase,
		confirmUseCase:     confirmUseCase,
		rejectUseCase:      rejectUseCase,
	}
}

// Propose handles POST /receipts/:id/matches/propose requests. It runs a scoring
// pass for the receipt and persists every candidate that clears the threshold.
func (c *MatchingController) Propose(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	receiptID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.proposeUseCase.Execute(ctx.Request.Context(), matching.ProposeMatchesInput{
		UserID:    userID,
		ReceiptID: receiptID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	matches := make([]dto.MatchResponse, len(output.Proposed))
	for i, m := range output.Proposed {
		matches[i] = dto.ToMatchResponse(m)
	}

	ctx.JSON(http.StatusOK, dto.MatchListResponse{Matches: matches})
}

// Candidates handles GET /receipts/:id/candidates requests. It returns the full
// scored candidate pool without persisting anything.
func (c *MatchingController) Candidates(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	receiptID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.candidatesUseCase.Execute(ctx.Request.Context(), matching.SelectCandidatesInput{
		UserID:    userID,
		ReceiptID: receiptID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	candidates := make([]dto.CandidateResponse, len(output.Candidates))
	for i, sc := range output.Candidates {
		candidates[i] = dto.ToCandidateResponse(sc)
	}

	ctx.JSON(http.StatusOK, dto.CandidateListResponse{Candidates: candidates})
}

// CreateManual handles POST /receipts/:id/matches requests.
func (c *MatchingController) CreateManual(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	receiptID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateManualMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := matching.CreateManualMatchInput{
		UserID:    userID,
		ReceiptID: receiptID,
	}
	if req.TransactionID != nil {
		id, err := uuid.Parse(*req.TransactionID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid transaction_id",
			})
			return
		}
		input.TransactionID = &id
	}
	if req.GroupID != nil {
		id, err := uuid.Parse(*req.GroupID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid group_id",
			})
			return
		}
		input.GroupID = &id
	}

	output, err := c.manualMatchUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMatchResponse(output.Match))
}

// Confirm handles POST /matches/:id/confirm requests.
func (c *MatchingController) Confirm(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	matchID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.confirmUseCase.Execute(ctx.Request.Context(), matching.ConfirmMatchInput{
		UserID:  userID,
		MatchID: matchID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMatchResponse(output.Match))
}

// Reject handles POST /matches/:id/reject requests.
func (c *MatchingController) Reject(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	matchID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.rejectUseCase.Execute(ctx.Request.Context(), matching.RejectMatchInput{
		UserID:  userID,
		MatchID: matchID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMatchResponse(output.Match))
}
