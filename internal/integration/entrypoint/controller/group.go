// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/usecase/group"
	"github.com/receipt-match/backend/internal/integration/entrypoint/dto"
)

// GroupController handles transaction group endpoints.
type GroupController struct {
	createUseCase *group.CreateGroupUseCase
	listUseCase   *group.ListGroupsUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	createUseCase *group.CreateGroupUseCase,
	listUseCase *group.ListGroupsUseCase,
) *GroupController {
	return &GroupController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /groups requests.
func (c *GroupController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	transactionIDs := make([]uuid.UUID, len(req.TransactionIDs))
	for i, raw := range req.TransactionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid transaction ID: " + raw,
			})
			return
		}
		transactionIDs[i] = id
	}

	input := group.CreateGroupInput{
		UserID:         userID,
		DisplayName:    req.DisplayName,
		TransactionIDs: transactionIDs,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGroupResponse(output.Group))
}

// List handles GET /groups requests.
func (c *GroupController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), group.ListGroupsInput{UserID: userID})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	groups := make([]dto.GroupResponse, len(output.Groups))
	for i, g := range output.Groups {
		groups[i] = dto.ToGroupResponse(g)
	}

	ctx.JSON(http.StatusOK, dto.GroupListResponse{Groups: groups})
}
