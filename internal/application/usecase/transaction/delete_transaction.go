// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/adapter"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	AccountBalance decimal.Decimal
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction deletion. The transaction's contribution
// is reversed against its account before the row is removed, atomically.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	// Load the transaction with ownership check
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil || transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	account, err := uc.accountRepo.FindByIDAndUser(ctx, transaction.AccountID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction account: %w", err)
	}
	category, err := uc.categoryRepo.FindByIDAndUser(ctx, transaction.CategoryID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction category: %w", err)
	}

	// Reverse the contribution and remove the row atomically
	account.ReverseTransaction(category.Type, transaction.Amount)

	if err := uc.transactionRepo.DeleteWithBalance(ctx, transaction.ID, account); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	return &DeleteTransactionOutput{AccountBalance: account.Balance}, nil
}
