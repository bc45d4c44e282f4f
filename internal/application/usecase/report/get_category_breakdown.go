// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
	"github.com/dumpmycash/backend/internal/domain/valueobject"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	UserID    uuid.UUID
	Type      entity.CategoryType
	Now       time.Time
	Filter    valueobject.DateFilter
	StartDate string
	EndDate   string
}

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	CategoryID       uuid.UUID
	CategoryName     string
	CategoryEmoji    string
	Amount           decimal.Decimal
	Percentage       float64
	TransactionCount int
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Total      decimal.Decimal
	Categories []CategoryBreakdownItem
}

// GetCategoryBreakdownUseCase handles per-category aggregation for one type.
type GetCategoryBreakdownUseCase struct {
	reportRepo ReportRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(reportRepo ReportRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		reportRepo: reportRepo,
	}
}

// Execute groups the window's transactions by category, sorted by sum
// descending. Each row carries its share of the type's total; a zero total
// yields zero percentages rather than a division error.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if input.Type != entity.CategoryTypeExpense && input.Type != entity.CategoryTypeIncome {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportPeriod,
			"breakdown type must be 'expense' or 'income'",
			domainerror.ErrInvalidReportPeriod,
		)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	dateRange := valueobject.ResolveDateRange(now, input.Filter, input.StartDate, input.EndDate)

	rows, total, err := uc.reportRepo.GetCategoryBreakdown(ctx, input.UserID, input.Type, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	categories := make([]CategoryBreakdownItem, 0, len(rows))
	for _, raw := range rows {
		var percentage float64
		if !total.IsZero() {
			pct := raw.Amount.Mul(decimal.NewFromInt(100)).Div(total)
			percentage, _ = pct.Round(2).Float64()
		}

		categories = append(categories, CategoryBreakdownItem{
			CategoryID:       raw.CategoryID,
			CategoryName:     raw.CategoryName,
			CategoryEmoji:    raw.CategoryEmoji,
			Amount:           raw.Amount,
			Percentage:       percentage,
			TransactionCount: raw.TransactionCount,
		})
	}

	return &GetCategoryBreakdownOutput{
		Total:      total,
		Categories: categories,
	}, nil
}
