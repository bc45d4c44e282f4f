// Package account contains account-related use cases.
package account

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// fakeAccountRepo is an in-memory adapter.AccountRepository. It records which
// write path the use case took and the seed transaction it was handed.
type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
	activity adapter.AccountActivity

	deposit    *entity.Transaction // set by CreateWithInitialDeposit
	adjustment *entity.Transaction // set by UpdateWithAdjustment
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}
	return repo
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) CreateWithInitialDeposit(ctx context.Context, account *entity.Account, deposit *entity.Transaction) error {
	r.accounts[account.ID] = account
	r.deposit = deposit
	return nil
}

func (r *fakeAccountRepo) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Account, error) {
	account, ok := r.accounts[id]
	if !ok || account.UserID != userID {
		return nil, domainerror.ErrAccountNotFound
	}
	return account, nil
}

func (r *fakeAccountRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var result []*entity.Account
	for _, a := range r.accounts {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) UpdateWithAdjustment(ctx context.Context, account *entity.Account, adjustment *entity.Transaction) error {
	r.accounts[account.ID] = account
	r.adjustment = adjustment
	return nil
}

func (r *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.accounts, id)
	return nil
}

func (r *fakeAccountRepo) CountActivity(ctx context.Context, id uuid.UUID) (*adapter.AccountActivity, error) {
	return &r.activity, nil
}

// fakeCategoryRepo is an in-memory adapter.CategoryRepository for tests.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok || category.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindByUser(ctx context.Context, userID uuid.UUID, categoryType *entity.CategoryType) ([]*entity.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) ExistsByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error) {
	return false, nil
}

func (r *fakeCategoryRepo) GetOrCreateSystem(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, emoji string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.UserID == userID && c.Name == name && c.Type == categoryType {
			return c, nil
		}
	}
	category := entity.NewCategory(userID, name, categoryType, emoji)
	r.categories[category.ID] = category
	return category, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) CountTransactions(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeCategoryRepo) ListWithTotals(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]*entity.CategoryWithTotal, error) {
	return nil, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateAccountZeroBalance(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	uc := NewCreateAccountUseCase(accountRepo, newFakeCategoryRepo())

	output, err := uc.Execute(context.Background(), CreateAccountInput{
		UserID:  uuid.New(),
		Name:    "Checking",
		Balance: decimal.Zero,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.Account.Balance.IsZero() {
		t.Errorf("balance = %s, want 0", output.Account.Balance)
	}
	if accountRepo.deposit != nil {
		t.Error("expected no seed transaction for a zero starting balance")
	}
}

func TestCreateAccountSeedsInitialDeposit(t *testing.T) {
	userID := uuid.New()
	accountRepo := newFakeAccountRepo()
	categoryRepo := newFakeCategoryRepo()
	uc := NewCreateAccountUseCase(accountRepo, categoryRepo)

	output, err := uc.Execute(context.Background(), CreateAccountInput{
		UserID:  userID,
		Name:    "Savings",
		Balance: dec("250.00"),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if accountRepo.deposit == nil {
		t.Fatal("expected a seed transaction for a positive starting balance")
	}
	if !accountRepo.deposit.Amount.Equal(dec("250.00")) {
		t.Errorf("deposit amount = %s, want 250.00", accountRepo.deposit.Amount)
	}
	if accountRepo.deposit.Description != "Initial deposit for Savings" {
		t.Errorf("deposit description = %q", accountRepo.deposit.Description)
	}

	// The deposit references the user's Initial Deposit income category
	category, err := categoryRepo.FindByIDAndUser(context.Background(), accountRepo.deposit.CategoryID, userID)
	if err != nil {
		t.Fatalf("deposit category not found: %v", err)
	}
	if category.Name != entity.InitialDepositCategoryName || category.Type != entity.CategoryTypeIncome {
		t.Errorf("deposit category = %s/%s, want %s/income", category.Name, category.Type, entity.InitialDepositCategoryName)
	}

	if !output.Account.Balance.Equal(dec("250.00")) {
		t.Errorf("balance = %s, want 250.00", output.Account.Balance)
	}
}

func TestCreateAccountValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateAccountInput
		wantCode domainerror.AccountErrorCode
	}{
		{
			name:     "empty name",
			input:    CreateAccountInput{UserID: uuid.New(), Name: "", Balance: decimal.Zero},
			wantCode: domainerror.ErrCodeEmptyAccountName,
		},
		{
			name:     "name too long",
			input:    CreateAccountInput{UserID: uuid.New(), Name: strings.Repeat("a", MaxAccountNameLength+1), Balance: decimal.Zero},
			wantCode: domainerror.ErrCodeAccountNameTooLong,
		},
		{
			name:     "negative balance",
			input:    CreateAccountInput{UserID: uuid.New(), Name: "Checking", Balance: dec("-1.00")},
			wantCode: domainerror.ErrCodeNegativeInitialBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateAccountUseCase(newFakeAccountRepo(), newFakeCategoryRepo())

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var accountErr *domainerror.AccountError
			if !errors.As(err, &accountErr) {
				t.Fatalf("expected *AccountError, got %T", err)
			}
			if accountErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", accountErr.Code, tt.wantCode)
			}
		})
	}
}

func TestUpdateAccountNameOnly(t *testing.T) {
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", dec("100.00"), "")
	accountRepo := newFakeAccountRepo(account)
	uc := NewUpdateAccountUseCase(accountRepo, newFakeCategoryRepo())

	name := "Main Checking"
	output, err := uc.Execute(context.Background(), UpdateAccountInput{
		UserID:    userID,
		AccountID: account.ID,
		Name:      &name,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Account.Name != "Main Checking" {
		t.Errorf("name = %q, want %q", output.Account.Name, "Main Checking")
	}
	if accountRepo.adjustment != nil {
		t.Error("expected no adjustment transaction for a name change")
	}
}

func TestUpdateAccountBalanceRecordsAdjustment(t *testing.T) {
	tests := []struct {
		name             string
		startBalance     string
		newBalance       string
		wantAmount       string
		wantCategoryName string
		wantCategoryType entity.CategoryType
	}{
		{
			name:             "increase",
			startBalance:     "100.00",
			newBalance:       "175.00",
			wantAmount:       "75.00",
			wantCategoryName: entity.BalanceIncreaseCategoryName,
			wantCategoryType: entity.CategoryTypeIncome,
		},
		{
			name:             "decrease",
			startBalance:     "100.00",
			newBalance:       "40.00",
			wantAmount:       "60.00",
			wantCategoryName: entity.BalanceDecreaseCategoryName,
			wantCategoryType: entity.CategoryTypeExpense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			account := entity.NewAccount(userID, "Checking", dec(tt.startBalance), "")
			accountRepo := newFakeAccountRepo(account)
			categoryRepo := newFakeCategoryRepo()
			uc := NewUpdateAccountUseCase(accountRepo, categoryRepo)

			newBalance := dec(tt.newBalance)
			output, err := uc.Execute(context.Background(), UpdateAccountInput{
				UserID:    userID,
				AccountID: account.ID,
				Balance:   &newBalance,
			})
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if !output.Account.Balance.Equal(newBalance) {
				t.Errorf("balance = %s, want %s", output.Account.Balance, tt.newBalance)
			}

			if accountRepo.adjustment == nil {
				t.Fatal("expected an adjustment transaction")
			}
			if !accountRepo.adjustment.Amount.Equal(dec(tt.wantAmount)) {
				t.Errorf("adjustment amount = %s, want %s", accountRepo.adjustment.Amount, tt.wantAmount)
			}

			category, err := categoryRepo.FindByIDAndUser(context.Background(), accountRepo.adjustment.CategoryID, userID)
			if err != nil {
				t.Fatalf("adjustment category not found: %v", err)
			}
			if category.Name != tt.wantCategoryName || category.Type != tt.wantCategoryType {
				t.Errorf("adjustment category = %s/%s, want %s/%s",
					category.Name, category.Type, tt.wantCategoryName, tt.wantCategoryType)
			}
		})
	}
}

func TestUpdateAccountSameBalanceSkipsAdjustment(t *testing.T) {
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", dec("100.00"), "")
	accountRepo := newFakeAccountRepo(account)
	uc := NewUpdateAccountUseCase(accountRepo, newFakeCategoryRepo())

	sameBalance := dec("100.00")
	_, err := uc.Execute(context.Background(), UpdateAccountInput{
		UserID:    userID,
		AccountID: account.ID,
		Balance:   &sameBalance,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if accountRepo.adjustment != nil {
		t.Error("expected no adjustment when the balance is unchanged")
	}
}

func TestDeleteAccountBlockedByActivity(t *testing.T) {
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", dec("100.00"), "")
	accountRepo := newFakeAccountRepo(account)
	accountRepo.activity = adapter.AccountActivity{TransactionCount: 3, TransferCount: 1}

	uc := NewDeleteAccountUseCase(accountRepo)
	err := uc.Execute(context.Background(), DeleteAccountInput{UserID: userID, AccountID: account.ID})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var accountErr *domainerror.AccountError
	if !errors.As(err, &accountErr) {
		t.Fatalf("expected *AccountError, got %T", err)
	}
	if accountErr.Code != domainerror.ErrCodeAccountHasActivity {
		t.Errorf("code = %s, want %s", accountErr.Code, domainerror.ErrCodeAccountHasActivity)
	}

	if _, ok := accountRepo.accounts[account.ID]; !ok {
		t.Error("expected the account to survive a blocked delete")
	}
}

func TestDeleteAccountWithoutActivity(t *testing.T) {
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", decimal.Zero, "")
	accountRepo := newFakeAccountRepo(account)

	uc := NewDeleteAccountUseCase(accountRepo)
	if err := uc.Execute(context.Background(), DeleteAccountInput{UserID: userID, AccountID: account.ID}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, ok := accountRepo.accounts[account.ID]; ok {
		t.Error("expected the account to be removed")
	}
}
