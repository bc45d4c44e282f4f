// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account deletion. An account still referenced by
// transactions or transfers cannot be deleted.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	account, err := uc.accountRepo.FindByIDAndUser(ctx, input.AccountID, input.UserID)
	if err != nil {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	activity, err := uc.accountRepo.CountActivity(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("failed to count account activity: %w", err)
	}
	if activity.TransactionCount > 0 || activity.TransferCount > 0 {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountHasActivity,
			fmt.Sprintf(
				"cannot delete account %s: %d associated transactions and %d transfers",
				account.Name, activity.TransactionCount, activity.TransferCount,
			),
			domainerror.ErrAccountHasActivity,
		)
	}

	if err := uc.accountRepo.Delete(ctx, account.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
