package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/analytics"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles derived-aggregation endpoints.
type AnalyticsController struct {
	monthlyUseCase *analytics.GetMonthlyAnalyticsUseCase
	summaryUseCase *analytics.GetCategorySummaryUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	monthlyUseCase *analytics.GetMonthlyAnalyticsUseCase,
	summaryUseCase *analytics.GetCategorySummaryUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		monthlyUseCase: monthlyUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// Monthly handles GET /analytics/monthly/:year/:month requests.
func (c *AnalyticsController) Monthly(ctx *gin.Context) {
	year, errYear := strconv.Atoi(ctx.Param("year"))
	month, errMonth := strconv.Atoi(ctx.Param("month"))
	if errYear != nil || errMonth != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year and month must be integers",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}

	summary, err := c.monthlyUseCase.Execute(ctx.Request.Context(), analytics.GetMonthlyAnalyticsInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// CategorySummary handles GET /analytics/category-summary/:days requests.
func (c *AnalyticsController) CategorySummary(ctx *gin.Context) {
	days, err := strconv.Atoi(ctx.Param("days"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "days must be an integer",
			Code:  string(domainerror.ErrCodeInvalidPeriodDays),
		})
		return
	}

	summary, err := c.summaryUseCase.Execute(ctx.Request.Context(), analytics.GetCategorySummaryInput{
		PeriodDays: days,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// handleAnalyticsError maps analytics errors to HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var anlErr *domainerror.AnalyticsError
	if errors.As(err, &anlErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: anlErr.Message,
			Code:  string(anlErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
