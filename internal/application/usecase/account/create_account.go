// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID  uuid.UUID
	Name    string
	Balance decimal.Decimal
	Color   string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the account creation. A positive starting balance is
// recorded as an "Initial Deposit" income transaction so the balance
// invariant holds from the account's first moment.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	// Validate name
	if input.Name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeEmptyAccountName,
			"account name cannot be empty",
			domainerror.ErrEmptyAccountName,
		)
	}
	if len(input.Name) > MaxAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooLong,
			fmt.Sprintf("account name must not exceed %d characters", MaxAccountNameLength),
			domainerror.ErrAccountNameTooLong,
		)
	}

	// Validate balance
	if input.Balance.IsNegative() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeNegativeInitialBalance,
			"initial balance cannot be negative",
			domainerror.ErrNegativeInitialBalance,
		)
	}

	// Create account entity
	account := entity.NewAccount(input.UserID, input.Name, input.Balance, input.Color)

	// A zero balance needs no seed transaction
	if input.Balance.IsZero() {
		if err := uc.accountRepo.Create(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
		return &CreateAccountOutput{Account: account}, nil
	}

	// Seed the opening balance with an income transaction
	category, err := uc.categoryRepo.GetOrCreateSystem(
		ctx,
		input.UserID,
		entity.InitialDepositCategoryName,
		entity.CategoryTypeIncome,
		entity.InitialDepositEmoji,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get initial deposit category: %w", err)
	}

	deposit := entity.NewTransaction(
		input.UserID,
		account.ID,
		category.ID,
		input.Balance,
		account.CreatedAt,
		fmt.Sprintf("Initial deposit for %s", account.Name),
	)

	if err := uc.accountRepo.CreateWithInitialDeposit(ctx, account, deposit); err != nil {
		return nil, fmt.Errorf("failed to create account with initial deposit: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}
