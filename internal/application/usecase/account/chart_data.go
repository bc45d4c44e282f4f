// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
)

// ChartDataInput represents the input for the balance distribution chart.
type ChartDataInput struct {
	UserID uuid.UUID
}

// ChartDataOutput represents the output for the balance distribution chart.
type ChartDataOutput struct {
	Accounts []*entity.Account
}

// ChartDataUseCase selects the accounts shown on the balance chart.
type ChartDataUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewChartDataUseCase creates a new ChartDataUseCase instance.
func NewChartDataUseCase(accountRepo adapter.AccountRepository) *ChartDataUseCase {
	return &ChartDataUseCase{
		accountRepo: accountRepo,
	}
}

// Execute returns the user's accounts holding a positive balance. Zero and
// negative balances would render as empty or inverted slices, so they are
// left off the chart.
func (uc *ChartDataUseCase) Execute(ctx context.Context, input ChartDataInput) (*ChartDataOutput, error) {
	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	positive := make([]*entity.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Balance.IsPositive() {
			positive = append(positive, account)
		}
	}

	return &ChartDataOutput{Accounts: positive}, nil
}
