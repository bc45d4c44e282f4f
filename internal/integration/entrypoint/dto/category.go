// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Type  string `json:"type" binding:"required,oneof=income expense"`
	Emoji string `json:"emoji"`
}

// UpdateCategoryRequest represents the request body for category update.
// Omitted fields are left unchanged.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	Emoji *string `json:"emoji"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryWithTotalResponse represents a category with its transaction total.
type CategoryWithTotalResponse struct {
	CategoryResponse
	Total string `json:"total"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryWithTotalsListResponse represents the response for listing
// categories with totals.
type CategoryWithTotalsListResponse struct {
	Categories []CategoryWithTotalResponse `json:"categories"`
}

// CategoryStatsResponse represents category counts and period totals.
type CategoryStatsResponse struct {
	TotalCategories   int    `json:"total_categories"`
	IncomeCategories  int    `json:"income_categories"`
	ExpenseCategories int    `json:"expense_categories"`
	PeriodIncome      string `json:"period_income"`
	PeriodExpenses    string `json:"period_expenses"`
	PeriodNet         string `json:"period_net"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		Emoji:     category.Emoji,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryWithTotalResponse converts a CategoryWithTotal to its DTO.
func ToCategoryWithTotalResponse(ct *entity.CategoryWithTotal) CategoryWithTotalResponse {
	return CategoryWithTotalResponse{
		CategoryResponse: ToCategoryResponse(ct.Category),
		Total:            ct.Total.StringFixed(2),
	}
}
