// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account update. Nil fields are
// left unchanged.
type UpdateAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Name      *string
	Color     *string
	Balance   *decimal.Decimal
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the account update. A balance change is not a silent
// overwrite: the difference is recorded as a balance adjustment transaction
// so the transaction history still explains the stored balance.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByIDAndUser(ctx, input.AccountID, input.UserID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	// Apply name change
	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeEmptyAccountName,
				"account name cannot be empty",
				domainerror.ErrEmptyAccountName,
			)
		}
		if len(*input.Name) > MaxAccountNameLength {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameTooLong,
				fmt.Sprintf("account name must not exceed %d characters", MaxAccountNameLength),
				domainerror.ErrAccountNameTooLong,
			)
		}
		account.Name = *input.Name
	}

	// Apply color change
	if input.Color != nil && *input.Color != "" {
		account.Color = *input.Color
	}

	account.UpdatedAt = time.Now().UTC()

	// Without a balance change a plain update suffices
	if input.Balance == nil || input.Balance.Equal(account.Balance) {
		if err := uc.accountRepo.Update(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to update account: %w", err)
		}
		return &UpdateAccountOutput{Account: account}, nil
	}

	oldBalance := account.Balance
	newBalance := *input.Balance
	diff := newBalance.Sub(oldBalance)

	categoryName := entity.BalanceIncreaseCategoryName
	categoryType := entity.CategoryTypeIncome
	emoji := entity.BalanceIncreaseEmoji
	if diff.IsNegative() {
		categoryName = entity.BalanceDecreaseCategoryName
		categoryType = entity.CategoryTypeExpense
		emoji = entity.BalanceDecreaseEmoji
	}

	category, err := uc.categoryRepo.GetOrCreateSystem(ctx, input.UserID, categoryName, categoryType, emoji)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance adjustment category: %w", err)
	}

	adjustment := entity.NewTransaction(
		input.UserID,
		account.ID,
		category.ID,
		diff.Abs(),
		time.Now().UTC(),
		fmt.Sprintf("Manual balance adjustment: $%s → $%s", oldBalance.StringFixed(2), newBalance.StringFixed(2)),
	)

	account.Balance = newBalance

	if err := uc.accountRepo.UpdateWithAdjustment(ctx, account, adjustment); err != nil {
		return nil, fmt.Errorf("failed to update account with adjustment: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
