// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	"github.com/dumpmycash/backend/internal/domain/valueobject"
)

// GetCategoryStatsInput represents the input for category statistics.
type GetCategoryStatsInput struct {
	UserID    uuid.UUID
	Now       time.Time
	Filter    valueobject.DateFilter
	StartDate string
	EndDate   string
}

// GetCategoryStatsOutput represents the output of category statistics.
type GetCategoryStatsOutput struct {
	TotalCategories   int
	IncomeCategories  int
	ExpenseCategories int
	PeriodIncome      decimal.Decimal
	PeriodExpenses    decimal.Decimal
	PeriodNet         decimal.Decimal
}

// GetCategoryStatsUseCase computes category counts and period totals.
type GetCategoryStatsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryStatsUseCase creates a new GetCategoryStatsUseCase instance.
func NewGetCategoryStatsUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryStatsUseCase {
	return &GetCategoryStatsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute counts the user's categories by type and sums their transaction
// totals over the resolved window. Transfer bookkeeping categories count
// toward the totals of neither side.
func (uc *GetCategoryStatsUseCase) Execute(ctx context.Context, input GetCategoryStatsInput) (*GetCategoryStatsOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	dateRange := valueobject.ResolveDateRange(now, input.Filter, input.StartDate, input.EndDate)

	categories, err := uc.categoryRepo.ListWithTotals(ctx, input.UserID, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load category totals: %w", err)
	}

	output := &GetCategoryStatsOutput{
		TotalCategories: len(categories),
		PeriodIncome:    decimal.Zero,
		PeriodExpenses:  decimal.Zero,
	}

	for _, ct := range categories {
		switch ct.Category.Type {
		case entity.CategoryTypeIncome:
			output.IncomeCategories++
		case entity.CategoryTypeExpense:
			output.ExpenseCategories++
		}

		if ct.Category.Name == entity.TransferCategoryName {
			continue
		}
		if ct.Category.Type == entity.CategoryTypeIncome {
			output.PeriodIncome = output.PeriodIncome.Add(ct.Total)
		} else {
			output.PeriodExpenses = output.PeriodExpenses.Add(ct.Total)
		}
	}

	output.PeriodNet = output.PeriodIncome.Sub(output.PeriodExpenses)
	return output, nil
}
