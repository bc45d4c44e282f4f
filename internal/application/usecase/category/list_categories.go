// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
	Type   *entity.CategoryType
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category listing, optionally filtered by type.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{Categories: categories}, nil
}

// ListCategoriesWithTotalsInput represents the input for listing categories
// with their transaction totals over a window.
type ListCategoriesWithTotalsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ListCategoriesWithTotalsOutput represents the output of listing categories
// with totals.
type ListCategoriesWithTotalsOutput struct {
	Categories []*entity.CategoryWithTotal
}

// ListCategoriesWithTotalsUseCase handles listing categories with totals.
type ListCategoriesWithTotalsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesWithTotalsUseCase creates a new ListCategoriesWithTotalsUseCase instance.
func NewListCategoriesWithTotalsUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesWithTotalsUseCase {
	return &ListCategoriesWithTotalsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists the user's categories annotated with their transaction totals.
func (uc *ListCategoriesWithTotalsUseCase) Execute(ctx context.Context, input ListCategoriesWithTotalsInput) (*ListCategoriesWithTotalsOutput, error) {
	categories, err := uc.categoryRepo.ListWithTotals(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories with totals: %w", err)
	}

	return &ListCategoriesWithTotalsOutput{Categories: categories}, nil
}
