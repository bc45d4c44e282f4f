// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

// ReportRepository defines the interface for report data operations.
//
// Every query is scoped to one user and excludes transactions tagged with the
// reserved "Transfer" category, which is bookkeeping noise from the legacy
// transfer scheme, not real income or spending.
type ReportRepository interface {
	// GetTotalsByType returns the summed transaction amounts per category
	// type within the window. Nil bounds mean unbounded. Missing rows
	// produce zero, never an error.
	GetTotalsByType(
		ctx context.Context,
		userID uuid.UUID,
		start, end *time.Time,
	) (income, expenses decimal.Decimal, err error)

	// GetCategoryBreakdown returns per-category sums for one category type
	// within the window, sorted by sum descending, plus the type's total.
	GetCategoryBreakdown(
		ctx context.Context,
		userID uuid.UUID,
		categoryType entity.CategoryType,
		start, end *time.Time,
	) ([]RawCategoryTotal, decimal.Decimal, error)

	// GetMonthlyTotals returns income/expense sums grouped by calendar month
	// over the window. Months without transactions are absent from the result.
	GetMonthlyTotals(
		ctx context.Context,
		userID uuid.UUID,
		start, end time.Time,
	) ([]RawMonthlyTotal, error)

	// GetDailyActivity returns per-day income/expense sums over the window.
	GetDailyActivity(
		ctx context.Context,
		userID uuid.UUID,
		start, end time.Time,
	) ([]RawDailyActivity, error)

	// GetRecentTransactions returns the user's newest transactions with
	// account and category loaded, date descending with newest-inserted
	// first among ties.
	GetRecentTransactions(
		ctx context.Context,
		userID uuid.UUID,
		limit int,
	) ([]*entity.TransactionWithRefs, error)
}

// RawCategoryTotal represents one category's aggregate from the database.
type RawCategoryTotal struct {
	CategoryID       uuid.UUID
	CategoryName     string
	CategoryEmoji    string
	Amount           decimal.Decimal
	TransactionCount int
}

// RawMonthlyTotal represents one month's aggregate from the database.
type RawMonthlyTotal struct {
	Year     int
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// RawDailyActivity represents one day's aggregate from the database.
type RawDailyActivity struct {
	Day              time.Time
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	TransactionCount int
}
