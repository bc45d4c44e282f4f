// Package transfer contains transfer-related use cases.
package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/adapter"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// ReverseTransferInput represents the input for transfer reversal.
type ReverseTransferInput struct {
	UserID     uuid.UUID
	TransferID uuid.UUID
}

// ReverseTransferOutput represents the output of transfer reversal.
type ReverseTransferOutput struct {
	Amount             decimal.Decimal
	FromAccountBalance decimal.Decimal
	ToAccountBalance   decimal.Decimal
}

// ReverseTransferUseCase handles transfer reversal logic.
type ReverseTransferUseCase struct {
	transferRepo adapter.TransferRepository
	accountRepo  adapter.AccountRepository
}

// NewReverseTransferUseCase creates a new ReverseTransferUseCase instance.
func NewReverseTransferUseCase(
	transferRepo adapter.TransferRepository,
	accountRepo adapter.AccountRepository,
) *ReverseTransferUseCase {
	return &ReverseTransferUseCase{
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
	}
}

// Execute performs the transfer reversal, the only delete path a transfer
// has. Both balances are restored, any legacy shadow transactions linked to
// the transfer are removed, and the transfer row is deleted, all atomically.
func (uc *ReverseTransferUseCase) Execute(ctx context.Context, input ReverseTransferInput) (*ReverseTransferOutput, error) {
	transfer, err := uc.transferRepo.FindByIDAndUser(ctx, input.TransferID, input.UserID)
	if err != nil {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeTransferNotFound,
			"transfer not found",
			domainerror.ErrTransferNotFound,
		)
	}

	fromAccount, err := uc.accountRepo.FindByIDAndUser(ctx, transfer.FromAccountID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load source account: %w", err)
	}
	toAccount, err := uc.accountRepo.FindByIDAndUser(ctx, transfer.ToAccountID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load destination account: %w", err)
	}

	// Undo both sides
	fromAccount.Credit(transfer.Amount)
	toAccount.Debit(transfer.Amount)

	if err := uc.transferRepo.ReverseWithBalances(ctx, transfer, fromAccount, toAccount); err != nil {
		return nil, fmt.Errorf("failed to reverse transfer: %w", err)
	}

	return &ReverseTransferOutput{
		Amount:             transfer.Amount,
		FromAccountBalance: fromAccount.Balance,
		ToAccountBalance:   toAccount.Balance,
	}, nil
}
