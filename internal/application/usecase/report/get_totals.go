// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/domain/valueobject"
)

// GetTotalsInput represents the input for the period totals report.
type GetTotalsInput struct {
	UserID    uuid.UUID
	Now       time.Time
	Filter    valueobject.DateFilter
	StartDate string
	EndDate   string
}

// GetTotalsOutput represents the output of the period totals report.
type GetTotalsOutput struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// GetTotalsUseCase computes income/expense/net totals for a window.
type GetTotalsUseCase struct {
	reportRepo ReportRepository
}

// NewGetTotalsUseCase creates a new GetTotalsUseCase instance.
func NewGetTotalsUseCase(reportRepo ReportRepository) *GetTotalsUseCase {
	return &GetTotalsUseCase{
		reportRepo: reportRepo,
	}
}

// Execute resolves the window and sums transactions per type. Empty windows
// return zeros.
func (uc *GetTotalsUseCase) Execute(ctx context.Context, input GetTotalsInput) (*GetTotalsOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	dateRange := valueobject.ResolveDateRange(now, input.Filter, input.StartDate, input.EndDate)

	income, expenses, err := uc.reportRepo.GetTotalsByType(ctx, input.UserID, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	return &GetTotalsOutput{
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}, nil
}
