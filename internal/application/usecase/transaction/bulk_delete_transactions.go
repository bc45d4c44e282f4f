// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// BulkDeleteTransactionsInput represents the input for bulk transaction
// deletion.
type BulkDeleteTransactionsInput struct {
	UserID         uuid.UUID
	TransactionIDs []uuid.UUID
}

// BulkDeleteTransactionsOutput represents the output of bulk transaction
// deletion.
type BulkDeleteTransactionsOutput struct {
	DeletedCount int
}

// BulkDeleteTransactionsUseCase deletes a batch of transactions and reverses
// their contributions on the touched accounts.
type BulkDeleteTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewBulkDeleteTransactionsUseCase creates a new BulkDeleteTransactionsUseCase
// instance.
func NewBulkDeleteTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
) *BulkDeleteTransactionsUseCase {
	return &BulkDeleteTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the bulk deletion. Every ID must resolve to a transaction
// owned by the caller or nothing is deleted. Reversals for transactions on
// the same account accumulate on one entity so each balance is written once.
func (uc *BulkDeleteTransactionsUseCase) Execute(ctx context.Context, input BulkDeleteTransactionsInput) (*BulkDeleteTransactionsOutput, error) {
	if len(input.TransactionIDs) == 0 {
		return &BulkDeleteTransactionsOutput{DeletedCount: 0}, nil
	}

	accounts := make(map[uuid.UUID]*entity.Account)
	ids := make([]uuid.UUID, 0, len(input.TransactionIDs))
	seen := make(map[uuid.UUID]bool)

	for _, transactionID := range input.TransactionIDs {
		if seen[transactionID] {
			continue
		}
		seen[transactionID] = true

		withRefs, err := uc.transactionRepo.FindByIDWithRefs(ctx, transactionID)
		if err != nil || withRefs.Transaction.UserID != input.UserID {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"some transactions were not found",
				domainerror.ErrTransactionNotFound,
			)
		}

		account, ok := accounts[withRefs.Transaction.AccountID]
		if !ok {
			account = withRefs.Account
			accounts[withRefs.Transaction.AccountID] = account
		}
		account.ReverseTransaction(withRefs.Category.Type, withRefs.Transaction.Amount)
		ids = append(ids, transactionID)
	}

	accountList := make([]*entity.Account, 0, len(accounts))
	for _, account := range accounts {
		accountList = append(accountList, account)
	}

	if err := uc.transactionRepo.DeleteManyWithBalances(ctx, ids, accountList...); err != nil {
		return nil, fmt.Errorf("failed to delete transactions: %w", err)
	}

	return &BulkDeleteTransactionsOutput{DeletedCount: len(ids)}, nil
}
