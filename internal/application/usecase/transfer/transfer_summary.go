// Package transfer contains transfer-related use cases.
package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/adapter"
)

// TopPairsLimit caps the most-frequent-pairs breakdown in the summary.
const TopPairsLimit = 5

// TransferSummaryInput represents the input for the transfer summary.
type TransferSummaryInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// TransferSummaryOutput represents aggregated transfer statistics.
type TransferSummaryOutput struct {
	TotalCount   int64
	TotalAmount  decimal.Decimal
	MonthCount   int64
	MonthAmount  decimal.Decimal
	FrequentPair []*adapter.TransferPairStat
}

// TransferSummaryUseCase computes transfer statistics for a user.
type TransferSummaryUseCase struct {
	transferRepo adapter.TransferRepository
}

// NewTransferSummaryUseCase creates a new TransferSummaryUseCase instance.
func NewTransferSummaryUseCase(transferRepo adapter.TransferRepository) *TransferSummaryUseCase {
	return &TransferSummaryUseCase{
		transferRepo: transferRepo,
	}
}

// Execute computes all-time totals, current-month totals and the top directed
// account pairs by transfer count.
func (uc *TransferSummaryUseCase) Execute(ctx context.Context, input TransferSummaryInput) (*TransferSummaryOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	// All-time totals
	allTime, err := uc.transferRepo.CountAndSum(ctx, input.UserID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transfers: %w", err)
	}

	// Current calendar month
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Microsecond)
	month, err := uc.transferRepo.CountAndSum(ctx, input.UserID, &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly transfers: %w", err)
	}

	pairs, err := uc.transferRepo.TopPairs(ctx, input.UserID, TopPairsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transfer pairs: %w", err)
	}

	return &TransferSummaryOutput{
		TotalCount:   allTime.Count,
		TotalAmount:  allTime.Amount,
		MonthCount:   month.Count,
		MonthAmount:  month.Amount,
		FrequentPair: pairs,
	}, nil
}
