// Package transfer contains transfer-related use cases.
package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// CreateTransferInput represents the input for transfer creation.
type CreateTransferInput struct {
	UserID        uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Description   string
}

// CreateTransferOutput represents the output of transfer creation.
type CreateTransferOutput struct {
	Transfer    *entity.Transfer
	FromAccount *entity.Account
	ToAccount   *entity.Account
}

// CreateTransferUseCase handles transfer creation logic.
type CreateTransferUseCase struct {
	transferRepo adapter.TransferRepository
	accountRepo  adapter.AccountRepository
}

// NewCreateTransferUseCase creates a new CreateTransferUseCase instance.
func NewCreateTransferUseCase(
	transferRepo adapter.TransferRepository,
	accountRepo adapter.AccountRepository,
) *CreateTransferUseCase {
	return &CreateTransferUseCase{
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
	}
}

// Execute performs the transfer creation. All validation runs before any
// mutation; the debit, the credit and the transfer row are then committed in
// a single database transaction.
func (uc *CreateTransferUseCase) Execute(ctx context.Context, input CreateTransferInput) (*CreateTransferOutput, error) {
	// Both accounts are required
	if input.FromAccountID == uuid.Nil || input.ToAccountID == uuid.Nil {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeMissingTransferAccounts,
			"both accounts are required",
			domainerror.ErrMissingTransferAccounts,
		)
	}

	// Source and destination must differ
	if input.FromAccountID == input.ToAccountID {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeSameTransferAccount,
			"cannot transfer to the same account",
			domainerror.ErrSameTransferAccount,
		)
	}

	// Amount must be positive
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeInvalidTransferAmount,
			"transfer amount must be positive",
			domainerror.ErrInvalidTransferAmount,
		)
	}

	// Both accounts must exist and belong to the caller
	fromAccount, err := uc.accountRepo.FindByIDAndUser(ctx, input.FromAccountID, input.UserID)
	if err != nil {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeTransferAccountNotFound,
			"source account not found",
			domainerror.ErrTransferAccountNotFound,
		)
	}
	toAccount, err := uc.accountRepo.FindByIDAndUser(ctx, input.ToAccountID, input.UserID)
	if err != nil {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeTransferAccountNotFound,
			"destination account not found",
			domainerror.ErrTransferAccountNotFound,
		)
	}

	// The source must cover the amount
	if !fromAccount.CanCover(input.Amount) {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeInsufficientBalance,
			fmt.Sprintf("insufficient balance in %s: available $%s, requested $%s",
				fromAccount.Name, fromAccount.Balance.StringFixed(2), input.Amount.StringFixed(2)),
			domainerror.ErrInsufficientBalance,
		)
	}

	// Move the money and persist everything atomically
	transfer := entity.NewTransfer(input.UserID, fromAccount.ID, toAccount.ID, input.Amount, input.Description)
	fromAccount.Debit(input.Amount)
	toAccount.Credit(input.Amount)

	if err := uc.transferRepo.CreateWithBalances(ctx, transfer, fromAccount, toAccount); err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	return &CreateTransferOutput{
		Transfer:    transfer,
		FromAccount: fromAccount,
		ToAccount:   toAccount,
	}, nil
}
