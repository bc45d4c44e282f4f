// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/usecase/category"
	"github.com/dumpmycash/backend/internal/domain/entity"
	"github.com/dumpmycash/backend/internal/domain/valueobject"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
	"github.com/dumpmycash/backend/internal/integration/entrypoint/dto"
	"github.com/dumpmycash/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	createUseCase     *category.CreateCategoryUseCase
	listUseCase       *category.ListCategoriesUseCase
	listTotalsUseCase *category.ListCategoriesWithTotalsUseCase
	getUseCase        *category.GetCategoryUseCase
	updateUseCase     *category.UpdateCategoryUseCase
	deleteUseCase     *category.DeleteCategoryUseCase
	statsUseCase      *category.GetCategoryStatsUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	listTotalsUseCase *category.ListCategoriesWithTotalsUseCase,
	getUseCase *category.GetCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	statsUseCase *category.GetCategoryStatsUseCase,
) *CategoryController {
	return &CategoryController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		listTotalsUseCase: listTotalsUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		statsUseCase:      statsUseCase,
	}
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyCategoryName),
		})
		return
	}

	input := category.CreateCategoryInput{
		UserID: userID,
		Name:   req.Name,
		Type:   entity.CategoryType(req.Type),
		Emoji:  req.Emoji,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// List handles GET /categories requests. An optional "type" query filters by
// category type; "with_totals=true" adds per-category transaction sums over
// an optional start_date/end_date window.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if ctx.Query("with_totals") == "true" {
		c.listWithTotals(ctx, userID)
		return
	}

	input := category.ListCategoriesInput{
		UserID: userID,
	}

	if typeParam := ctx.Query("type"); typeParam != "" {
		categoryType := entity.CategoryType(typeParam)
		if categoryType != entity.CategoryTypeIncome && categoryType != entity.CategoryTypeExpense {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Type must be 'income' or 'expense'",
				Code:  string(domainerror.ErrCodeInvalidCategoryType),
			})
			return
		}
		input.Type = &categoryType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	categories := make([]dto.CategoryResponse, 0, len(output.Categories))
	for _, cat := range output.Categories {
		categories = append(categories, dto.ToCategoryResponse(cat))
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: categories,
	})
}

// listWithTotals serves the with_totals=true variant of List.
func (c *CategoryController) listWithTotals(ctx *gin.Context, userID uuid.UUID) {
	input := category.ListCategoriesWithTotalsInput{
		UserID: userID,
	}

	if startParam := ctx.Query("start_date"); startParam != "" {
		start, err := time.Parse("2006-01-02", startParam)
		if err == nil {
			input.StartDate = &start
		}
	}
	if endParam := ctx.Query("end_date"); endParam != "" {
		end, err := time.Parse("2006-01-02", endParam)
		if err == nil {
			endOfDay := end.AddDate(0, 0, 1).Add(-time.Microsecond)
			input.EndDate = &endOfDay
		}
	}

	output, err := c.listTotalsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	categories := make([]dto.CategoryWithTotalResponse, 0, len(output.Categories))
	for _, ct := range output.Categories {
		categories = append(categories, dto.ToCategoryWithTotalResponse(ct))
	}

	ctx.JSON(http.StatusOK, dto.CategoryWithTotalsListResponse{
		Categories: categories,
	})
}

// Stats handles GET /categories/stats requests. The "period" query selects
// the window (month by default); custom windows use start_date/end_date.
func (c *CategoryController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), category.GetCategoryStatsInput{
		UserID:    userID,
		Filter:    valueobject.DateFilter(ctx.DefaultQuery("period", "month")),
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryStatsResponse{
		TotalCategories:   output.TotalCategories,
		IncomeCategories:  output.IncomeCategories,
		ExpenseCategories: output.ExpenseCategories,
		PeriodIncome:      output.PeriodIncome.StringFixed(2),
		PeriodExpenses:    output.PeriodExpenses.StringFixed(2),
		PeriodNet:         output.PeriodNet.StringFixed(2),
	})
}

// Get handles GET /categories/:id requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), category.GetCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Update handles PUT /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyCategoryName),
		})
		return
	}

	input := category.UpdateCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
		Name:       req.Name,
		Emoji:      req.Emoji,
	}

	if req.Type != nil {
		categoryType := entity.CategoryType(*req.Type)
		input.Type = &categoryType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	}); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Category deleted successfully",
	})
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		statusCode := c.getStatusCodeForCategoryError(categoryErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: categoryErr.Message,
			Code:  string(categoryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCategoryType,
		domainerror.ErrCodeEmptyCategoryName,
		domainerror.ErrCodeCategoryNameTooLong:
		return http.StatusBadRequest
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedCategory:
		return http.StatusForbidden
	case domainerror.ErrCodeCategoryAlreadyExists,
		domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
