// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/receipt-match/backend/internal/application/usecase/receipt"
	"github.com/receipt-match/backend/internal/integration/entrypoint/dto"
)

// ReceiptController handles receipt endpoints.
type ReceiptController struct {
	createUseCase *receipt.CreateReceiptUseCase
	listUseCase   *receipt.ListReceiptsUseCase
	deleteUseCase *receipt.DeleteReceiptUseCase
}

// NewReceiptController creates a new receipt controller instance.
func NewReceiptController(
	createUseCase *receipt.CreateReceiptUseCase,
	listUseCase *receipt.ListReceiptsUseCase,
	deleteUseCase *receipt.DeleteReceiptUseCase,
) *ReceiptController {
	return &ReceiptController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /receipts requests.
func (c *ReceiptController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date, ok := parseDateField(ctx, req.Date)
	if !ok {
		return
	}

	input := receipt.CreateReceiptInput{
		UserID:     userID,
		Date:       date,
		VendorText: req.VendorText,
		Amount:     decimal.NewFromFloat(req.Amount),
		Notes:      req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReceiptResponse(output.Receipt))
}

// List handles GET /receipts requests.
func (c *ReceiptController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), receipt.ListReceiptsInput{UserID: userID})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	receipts := make([]dto.ReceiptResponse, len(output.Receipts))
	for i, r := range output.Receipts {
		receipts[i] = dto.ToReceiptResponse(r)
	}

	ctx.JSON(http.StatusOK, dto.ReceiptListResponse{Receipts: receipts})
}

// Delete handles DELETE /receipts/:id requests.
func (c *ReceiptController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	receiptID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), receipt.DeleteReceiptInput{
		UserID:    userID,
		ReceiptID: receiptID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
