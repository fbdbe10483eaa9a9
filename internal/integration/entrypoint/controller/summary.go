// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/usecase/summary"
	"github.com/alquimia/backend/internal/integration/entrypoint/dto"
	"github.com/alquimia/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles summary and metric endpoints.
type SummaryController struct {
	monthlyUseCase *summary.MonthlySummaryUseCase
	yearlyUseCase  *summary.YearlySummaryUseCase
	hoursUseCase   *summary.HoursEquivalentUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	monthlyUseCase *summary.MonthlySummaryUseCase,
	yearlyUseCase *summary.YearlySummaryUseCase,
	hoursUseCase *summary.HoursEquivalentUseCase,
) *SummaryController {
	return &SummaryController{
		monthlyUseCase: monthlyUseCase,
		yearlyUseCase:  yearlyUseCase,
		hoursUseCase:   hoursUseCase,
	}
}

// Monthly handles GET /summary/monthly requests. The optional date query
// selects the month; it defaults to today.
func (c *SummaryController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	referenceDate := time.Now().UTC()
	if v := ctx.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		referenceDate = parsed
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), summary.MonthlySummaryInput{
		UserID:        userID,
		ReferenceDate: referenceDate,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// Yearly handles GET /summary/yearly requests. The optional year query
// defaults to the current year.
func (c *SummaryController) Yearly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	year := time.Now().UTC().Year()
	if v := ctx.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1970 || parsed > 9999 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year"})
			return
		}
		year = parsed
	}

	output, err := c.yearlyUseCase.Execute(ctx.Request.Context(), summary.YearlySummaryInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToYearlySummaryResponse(output))
}

// Hours handles POST /summary/hours requests, converting an amount into the
// work hours it costs.
func (c *SummaryController) Hours(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.HoursEquivalentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid amount"})
		return
	}

	output, err := c.hoursUseCase.Execute(ctx.Request.Context(), summary.HoursEquivalentInput{
		UserID: userID,
		Amount: amount,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.HoursEquivalentResponse{Hours: output.Hours.String()})
}
