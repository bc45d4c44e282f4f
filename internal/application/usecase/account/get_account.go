// Package account contains account-related use cases.
package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// GetAccountInput represents the input for retrieving an account.
type GetAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// GetAccountOutput represents the output of retrieving an account.
type GetAccountOutput struct {
	Account *entity.Account
}

// GetAccountUseCase handles account retrieval logic.
type GetAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(accountRepo adapter.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account retrieval.
func (uc *GetAccountUseCase) Execute(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error) {
	account, err := uc.accountRepo.FindByIDAndUser(ctx, input.AccountID, input.UserID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	return &GetAccountOutput{Account: account}, nil
}
