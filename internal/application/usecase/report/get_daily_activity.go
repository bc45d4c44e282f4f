// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/domain/valueobject"
)

// GetDailyActivityInput represents the input for the daily activity report.
type GetDailyActivityInput struct {
	UserID    uuid.UUID
	Now       time.Time
	Filter    valueobject.DateFilter
	StartDate string
	EndDate   string
}

// GetDailyActivityOutput represents the output of the daily activity report.
type GetDailyActivityOutput struct {
	Days []RawDailyActivity
}

// GetDailyActivityUseCase computes per-day transaction activity.
type GetDailyActivityUseCase struct {
	reportRepo ReportRepository
}

// NewGetDailyActivityUseCase creates a new GetDailyActivityUseCase instance.
func NewGetDailyActivityUseCase(reportRepo ReportRepository) *GetDailyActivityUseCase {
	return &GetDailyActivityUseCase{
		reportRepo: reportRepo,
	}
}

// Execute returns per-day income/expense sums for the resolved window. An
// unbounded filter falls back to the current month; a day-by-day series over
// all history is never useful.
func (uc *GetDailyActivityUseCase) Execute(ctx context.Context, input GetDailyActivityInput) (*GetDailyActivityOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	dateRange := valueobject.ResolveDateRange(now, input.Filter, input.StartDate, input.EndDate)
	if dateRange.Start == nil || dateRange.End == nil {
		dateRange = valueobject.ResolveDateRange(now, valueobject.DateFilterMonth, "", "")
	}

	days, err := uc.reportRepo.GetDailyActivity(ctx, input.UserID, *dateRange.Start, *dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily activity: %w", err)
	}

	return &GetDailyActivityOutput{Days: days}, nil
}
