// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTrendMonths is the number of months covered by the trend chart.
const DefaultTrendMonths = 12

// GetMonthlyTrendInput represents the input for the monthly trend report.
type GetMonthlyTrendInput struct {
	UserID uuid.UUID
	Now    time.Time
	Months int
}

// MonthlyTrendPoint represents one month on the trend chart.
type MonthlyTrendPoint struct {
	Year     int
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// GetMonthlyTrendOutput represents the output of the monthly trend report.
type GetMonthlyTrendOutput struct {
	Points []MonthlyTrendPoint
}

// GetMonthlyTrendUseCase computes the income/expense trend per month.
type GetMonthlyTrendUseCase struct {
	reportRepo ReportRepository
}

// NewGetMonthlyTrendUseCase creates a new GetMonthlyTrendUseCase instance.
func NewGetMonthlyTrendUseCase(reportRepo ReportRepository) *GetMonthlyTrendUseCase {
	return &GetMonthlyTrendUseCase{
		reportRepo: reportRepo,
	}
}

// Execute returns one point per month over the window, oldest first. Months
// without transactions appear with zero totals so the chart has no gaps.
func (uc *GetMonthlyTrendUseCase) Execute(ctx context.Context, input GetMonthlyTrendInput) (*GetMonthlyTrendOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	months := input.Months
	if months < 1 {
		months = DefaultTrendMonths
	}

	// Window: first day of (now - months + 1) through the end of this month
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := currentMonth.AddDate(0, -(months - 1), 0)
	end := currentMonth.AddDate(0, 1, 0).Add(-time.Microsecond)

	rows, err := uc.reportRepo.GetMonthlyTotals(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}

	byMonth := make(map[string]RawMonthlyTotal, len(rows))
	for _, row := range rows {
		byMonth[fmt.Sprintf("%04d-%02d", row.Year, row.Month)] = row
	}

	points := make([]MonthlyTrendPoint, 0, months)
	for cursor := start; !cursor.After(currentMonth); cursor = cursor.AddDate(0, 1, 0) {
		point := MonthlyTrendPoint{
			Year:     cursor.Year(),
			Month:    cursor.Month(),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
		if row, ok := byMonth[fmt.Sprintf("%04d-%02d", cursor.Year(), cursor.Month())]; ok {
			point.Income = row.Income
			point.Expenses = row.Expenses
		}
		point.Net = point.Income.Sub(point.Expenses)
		points = append(points, point)
	}

	return &GetMonthlyTrendOutput{Points: points}, nil
}
