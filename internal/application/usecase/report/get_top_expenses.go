// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/domain/entity"
	"github.com/dumpmycash/backend/internal/domain/valueobject"
)

// DefaultTopExpensesLimit caps the top-expense-categories widget.
const DefaultTopExpensesLimit = 10

// GetTopExpensesInput represents the input for the top expense categories.
type GetTopExpensesInput struct {
	UserID    uuid.UUID
	Now       time.Time
	Filter    valueobject.DateFilter
	StartDate string
	EndDate   string
	Limit     int
}

// GetTopExpensesOutput represents the output of the top expense categories.
type GetTopExpensesOutput struct {
	Categories []CategoryBreakdownItem
}

// GetTopExpensesUseCase handles the top expense categories report.
type GetTopExpensesUseCase struct {
	breakdown *GetCategoryBreakdownUseCase
}

// NewGetTopExpensesUseCase creates a new GetTopExpensesUseCase instance.
func NewGetTopExpensesUseCase(reportRepo ReportRepository) *GetTopExpensesUseCase {
	return &GetTopExpensesUseCase{
		breakdown: NewGetCategoryBreakdownUseCase(reportRepo),
	}
}

// Execute returns the expense breakdown truncated to the highest-spending
// categories.
func (uc *GetTopExpensesUseCase) Execute(ctx context.Context, input GetTopExpensesInput) (*GetTopExpensesOutput, error) {
	out, err := uc.breakdown.Execute(ctx, GetCategoryBreakdownInput{
		UserID:    input.UserID,
		Type:      entity.CategoryTypeExpense,
		Now:       input.Now,
		Filter:    input.Filter,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit < 1 {
		limit = DefaultTopExpensesLimit
	}
	if len(out.Categories) > limit {
		out.Categories = out.Categories[:limit]
	}

	return &GetTopExpensesOutput{Categories: out.Categories}, nil
}
