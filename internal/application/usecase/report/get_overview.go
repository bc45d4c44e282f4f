// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/domain/entity"
	"github.com/dumpmycash/backend/internal/domain/valueobject"
)

// Recent-transactions widget bounds.
const (
	DefaultRecentTransactionsLimit = 10
	MaxRecentTransactionsLimit     = 50
)

// GetOverviewInput represents the input for the overview report.
type GetOverviewInput struct {
	UserID      uuid.UUID
	Now         time.Time
	RecentLimit int
}

// RecentTransaction represents one row of the recent-transactions widget.
type RecentTransaction struct {
	ID            uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
	AccountName   string
	CategoryName  string
	CategoryType  entity.CategoryType
	CategoryEmoji string
}

// GetOverviewOutput represents the output of the overview report.
type GetOverviewOutput struct {
	TotalBalance       decimal.Decimal
	MonthIncome        decimal.Decimal
	MonthExpenses      decimal.Decimal
	MonthNet           decimal.Decimal
	RecentTransactions []RecentTransaction
}

// GetOverviewUseCase computes the home-screen overview.
type GetOverviewUseCase struct {
	reportRepo ReportRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(reportRepo ReportRepository) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the all-time balance, the current month's totals and the
// recent transactions list.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	// All-time balance across every account
	allIncome, allExpenses, err := uc.reportRepo.GetTotalsByType(ctx, input.UserID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get all-time totals: %w", err)
	}

	// Current calendar month
	monthRange := valueobject.ResolveDateRange(now, valueobject.DateFilterMonth, "", "")
	monthIncome, monthExpenses, err := uc.reportRepo.GetTotalsByType(ctx, input.UserID, monthRange.Start, monthRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}

	limit := input.RecentLimit
	if limit < 1 {
		limit = DefaultRecentTransactionsLimit
	}
	if limit > MaxRecentTransactionsLimit {
		limit = MaxRecentTransactionsLimit
	}

	recent, err := uc.reportRepo.GetRecentTransactions(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}

	recentOut := make([]RecentTransaction, 0, len(recent))
	for _, t := range recent {
		row := RecentTransaction{
			ID:          t.Transaction.ID,
			Amount:      t.Transaction.Amount,
			Date:        t.Transaction.Date,
			Description: t.Transaction.Description,
		}
		if t.Account != nil {
			row.AccountName = t.Account.Name
		}
		if t.Category != nil {
			row.CategoryName = t.Category.Name
			row.CategoryType = t.Category.Type
			row.CategoryEmoji = t.Category.Emoji
		}
		recentOut = append(recentOut, row)
	}

	return &GetOverviewOutput{
		TotalBalance:       allIncome.Sub(allExpenses),
		MonthIncome:        monthIncome,
		MonthExpenses:      monthExpenses,
		MonthNet:           monthIncome.Sub(monthExpenses),
		RecentTransactions: recentOut,
	}, nil
}
