package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/status"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// StatusController handles client status check endpoints.
type StatusController struct {
	createUseCase *status.CreateStatusCheckUseCase
	listUseCase   *status.ListStatusChecksUseCase
}

// NewStatusController creates a new status controller instance.
func NewStatusController(
	createUseCase *status.CreateStatusCheckUseCase,
	listUseCase *status.ListStatusChecksUseCase,
) *StatusController {
	return &StatusController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /status requests.
func (c *StatusController) Create(ctx *gin.Context) {
	var req dto.CreateStatusCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), status.CreateStatusCheckInput{
		ClientName: req.ClientName,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create status check",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatusCheckResponse(output.StatusCheck))
}

// List handles GET /status requests.
func (c *StatusController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve status checks",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatusCheckListResponse(output.StatusChecks))
}
