// Package transaction contains transaction-related use cases.
package transaction

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

// UpdateTransactionInput represents the input for transaction update. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	AccountID     *uuid.UUID
	CategoryID    *uuid.UUID
	Amount        *decimal.Decimal
	Date          *time.Time
	Description   *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update. The old contribution is reversed
// against the old account and category before the new contribution is applied
// against the new ones, so an edit never double-counts even when only the
// amount changes. All touched balances are persisted with the transaction
// row atomically.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	// Load the transaction with ownership check
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil || transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	// Validate new amount if provided
	if input.Amount != nil && !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	// Validate new description if provided
	if input.Description != nil && len(*input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	// Load the current account and category
	oldAccount, err := uc.accountRepo.FindByIDAndUser(ctx, transaction.AccountID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction account: %w", err)
	}
	oldCategory, err := uc.categoryRepo.FindByIDAndUser(ctx, transaction.CategoryID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction category: %w", err)
	}

	// Resolve the target account, which may differ from the current one
	newAccount := oldAccount
	if input.AccountID != nil && *input.AccountID != oldAccount.ID {
		newAccount, err = uc.accountRepo.FindByIDAndUser(ctx, *input.AccountID, input.UserID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFoundForTransaction,
			)
		}
	}

	// Resolve the target category
	newCategory := oldCategory
	if input.CategoryID != nil && *input.CategoryID != oldCategory.ID {
		newCategory, err = uc.categoryRepo.FindByIDAndUser(ctx, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
	}

	// Reverse the old contribution, then apply the new one
	oldAccount.ReverseTransaction(oldCategory.Type, transaction.Amount)

	transaction.AccountID = newAccount.ID
	transaction.CategoryID = newCategory.ID
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	transaction.UpdatedAt = time.Now().UTC()

	newAccount.ApplyTransaction(newCategory.Type, transaction.Amount)

	// Persist the transaction and every touched balance atomically
	accounts := []*entity.Account{oldAccount}
	if newAccount != oldAccount {
		accounts = append(accounts, newAccount)
	}
	if err := uc.transactionRepo.UpdateWithBalances(ctx, transaction, accounts...); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: newTransactionOutput(transaction, newAccount, newCategory),
	}, nil
}
