// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dumpmycash/backend/internal/application/usecase/report"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
	"github.com/dumpmycash/backend/internal/domain/valueobject"
	"github.com/dumpmycash/backend/internal/integration/entrypoint/dto"
	"github.com/dumpmycash/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	overviewUseCase     *report.GetOverviewUseCase
	breakdownUseCase    *report.GetCategoryBreakdownUseCase
	topExpensesUseCase  *report.GetTopExpensesUseCase
	monthlyTrendUseCase *report.GetMonthlyTrendUseCase
	dailyUseCase        *report.GetDailyActivityUseCase
	totalsUseCase       *report.GetTotalsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	overviewUseCase *report.GetOverviewUseCase,
	breakdownUseCase *report.GetCategoryBreakdownUseCase,
	topExpensesUseCase *report.GetTopExpensesUseCase,
	monthlyTrendUseCase *report.GetMonthlyTrendUseCase,
	dailyUseCase *report.GetDailyActivityUseCase,
	totalsUseCase *report.GetTotalsUseCase,
) *ReportController {
	return &ReportController{
		overviewUseCase:     overviewUseCase,
		breakdownUseCase:    breakdownUseCase,
		topExpensesUseCase:  topExpensesUseCase,
		monthlyTrendUseCase: monthlyTrendUseCase,
		dailyUseCase:        dailyUseCase,
		totalsUseCase:       totalsUseCase,
	}
}

// Overview handles GET /reports/overview requests.
func (c *ReportController) Overview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	recentLimit, _ := strconv.Atoi(ctx.DefaultQuery("recent_limit", "10"))

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), report.GetOverviewInput{
		UserID:      userID,
		RecentLimit: recentLimit,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	recent := make([]dto.RecentTransactionResponse, 0, len(output.RecentTransactions))
	for _, t := range output.RecentTransactions {
		recent = append(recent, dto.RecentTransactionResponse{
			ID:            t.ID.String(),
			Amount:        t.Amount.StringFixed(2),
			Date:          t.Date,
			Description:   t.Description,
			AccountName:   t.AccountName,
			CategoryName:  t.CategoryName,
			CategoryType:  string(t.CategoryType),
			CategoryEmoji: t.CategoryEmoji,
		})
	}

	ctx.JSON(http.StatusOK, dto.OverviewResponse{
		TotalBalance:       output.TotalBalance.StringFixed(2),
		MonthIncome:        output.MonthIncome.StringFixed(2),
		MonthExpenses:      output.MonthExpenses.StringFixed(2),
		MonthNet:           output.MonthNet.StringFixed(2),
		RecentTransactions: recent,
	})
}

// CategoryBreakdown handles GET /reports/category-breakdown requests.
func (c *ReportController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), report.GetCategoryBreakdownInput{
		UserID:    userID,
		Type:      entity.CategoryType(ctx.DefaultQuery("type", "expense")),
		Filter:    valueobject.DateFilter(ctx.DefaultQuery("period", "month")),
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	categories := make([]dto.CategoryBreakdownItemResponse, 0, len(output.Categories))
	for _, item := range output.Categories {
		categories = append(categories, dto.ToCategoryBreakdownItemResponse(item))
	}

	ctx.JSON(http.StatusOK, dto.CategoryBreakdownResponse{
		Total:      output.Total.StringFixed(2),
		Categories: categories,
	})
}

// TopExpenses handles GET /reports/top-expenses requests.
func (c *ReportController) TopExpenses(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	output, err := c.topExpensesUseCase.Execute(ctx.Request.Context(), report.GetTopExpensesInput{
		UserID:    userID,
		Filter:    valueobject.DateFilter(ctx.DefaultQuery("period", "month")),
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
		Limit:     limit,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	categories := make([]dto.CategoryBreakdownItemResponse, 0, len(output.Categories))
	for _, item := range output.Categories {
		categories = append(categories, dto.ToCategoryBreakdownItemResponse(item))
	}

	ctx.JSON(http.StatusOK, dto.TopExpensesResponse{
		Categories: categories,
	})
}

// MonthlyTrend handles GET /reports/monthly-trend requests.
func (c *ReportController) MonthlyTrend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	months, _ := strconv.Atoi(ctx.DefaultQuery("months", "12"))

	output, err := c.monthlyTrendUseCase.Execute(ctx.Request.Context(), report.GetMonthlyTrendInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	points := make([]dto.MonthlyTrendPointResponse, 0, len(output.Points))
	for _, point := range output.Points {
		points = append(points, dto.ToMonthlyTrendPointResponse(point))
	}

	ctx.JSON(http.StatusOK, dto.MonthlyTrendResponse{
		Points: points,
	})
}

// DailyActivity handles GET /reports/daily-activity requests.
func (c *ReportController) DailyActivity(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), report.GetDailyActivityInput{
		UserID:    userID,
		Filter:    valueobject.DateFilter(ctx.DefaultQuery("period", "month")),
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	days := make([]dto.DailyActivityItemResponse, 0, len(output.Days))
	for _, day := range output.Days {
		days = append(days, dto.ToDailyActivityItemResponse(day))
	}

	ctx.JSON(http.StatusOK, dto.DailyActivityResponse{
		Days: days,
	})
}

// Totals handles GET /reports/totals requests.
func (c *ReportController) Totals(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.totalsUseCase.Execute(ctx.Request.Context(), report.GetTotalsInput{
		UserID:    userID,
		Filter:    valueobject.DateFilter(ctx.DefaultQuery("period", "month")),
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PeriodTotalsResponse{
		Income:   output.Income.StringFixed(2),
		Expenses: output.Expenses.StringFixed(2),
		Net:      output.Net.StringFixed(2),
	})
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := http.StatusInternalServerError
		if reportErr.Code == domainerror.ErrCodeInvalidReportPeriod {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
