// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// fakeAccountRepo is an in-memory adapter.AccountRepository for tests.
type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
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
	return nil
}

func (r *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.accounts, id)
	return nil
}

func (r *fakeAccountRepo) CountActivity(ctx context.Context, id uuid.UUID) (*adapter.AccountActivity, error) {
	return &adapter.AccountActivity{}, nil
}

// fakeCategoryRepo is an in-memory adapter.CategoryRepository for tests.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
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
	var result []*entity.Category
	for _, c := range r.categories {
		if c.UserID != userID {
			continue
		}
		if categoryType != nil && c.Type != *categoryType {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *fakeCategoryRepo) ExistsByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error) {
	for _, c := range r.categories {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.UserID == userID && c.Name == name && c.Type == categoryType {
			return true, nil
		}
	}
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

// fakeTransactionRepo is an in-memory adapter.TransactionRepository for tests.
// It records the account balances it was asked to persist and the filters it
// received so tests can verify the atomic write carried the right values.
type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	refs         map[uuid.UUID]*entity.TransactionWithRefs
	saved        map[uuid.UUID]decimal.Decimal
	listFilter   adapter.TransactionFilter
	totalsFilter adapter.TransactionFilter
}

func newFakeTransactionRepo(transactions ...*entity.Transaction) *fakeTransactionRepo {
	repo := &fakeTransactionRepo{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		refs:         make(map[uuid.UUID]*entity.TransactionWithRefs),
		saved:        make(map[uuid.UUID]decimal.Decimal),
	}
	for _, t := range transactions {
		repo.transactions[t.ID] = t
	}
	return repo
}

// addWithRefs seeds a transaction together with its account and category.
func (r *fakeTransactionRepo) addWithRefs(txn *entity.Transaction, account *entity.Account, category *entity.Category) {
	r.transactions[txn.ID] = txn
	r.refs[txn.ID] = &entity.TransactionWithRefs{Transaction: txn, Account: account, Category: category}
}

func (r *fakeTransactionRepo) CreateWithBalance(ctx context.Context, transaction *entity.Transaction, account *entity.Account) error {
	r.transactions[transaction.ID] = transaction
	r.saved[account.ID] = account.Balance
	return nil
}

func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return transaction, nil
}

func (r *fakeTransactionRepo) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRefs, error) {
	if withRefs, ok := r.refs[id]; ok {
		return withRefs, nil
	}
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return &entity.TransactionWithRefs{Transaction: transaction}, nil
}

func (r *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	r.listFilter = filter
	return &adapter.TransactionListResult{Page: pagination.Page, Limit: pagination.Limit}, nil
}

func (r *fakeTransactionRepo) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	r.totalsFilter = filter
	return &adapter.TransactionTotals{}, nil
}

func (r *fakeTransactionRepo) UpdateWithBalances(ctx context.Context, transaction *entity.Transaction, accounts ...*entity.Account) error {
	r.transactions[transaction.ID] = transaction
	for _, account := range accounts {
		r.saved[account.ID] = account.Balance
	}
	return nil
}

func (r *fakeTransactionRepo) DeleteWithBalance(ctx context.Context, id uuid.UUID, account *entity.Account) error {
	delete(r.transactions, id)
	r.saved[account.ID] = account.Balance
	return nil
}

func (r *fakeTransactionRepo) DeleteManyWithBalances(ctx context.Context, ids []uuid.UUID, accounts ...*entity.Account) error {
	for _, id := range ids {
		if _, ok := r.transactions[id]; !ok {
			return domainerror.ErrTransactionNotFound
		}
	}
	for _, id := range ids {
		delete(r.transactions, id)
		delete(r.refs, id)
	}
	for _, account := range accounts {
		r.saved[account.ID] = account.Balance
	}
	return nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateTransactionAppliesByCategoryType(t *testing.T) {
	tests := []struct {
		name         string
		categoryType entity.CategoryType
		amount       string
		wantBalance  string
	}{
		{"expense lowers the balance", entity.CategoryTypeExpense, "50.00", "950.00"},
		{"income raises the balance", entity.CategoryTypeIncome, "50.00", "1050.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			account := entity.NewAccount(userID, "Checking", dec("1000.00"), "")
			category := entity.NewCategory(userID, "Groceries", tt.categoryType, "")

			repo := newFakeTransactionRepo()
			uc := NewCreateTransactionUseCase(repo, newFakeAccountRepo(account), newFakeCategoryRepo(category))

			output, err := uc.Execute(context.Background(), CreateTransactionInput{
				UserID:     userID,
				AccountID:  account.ID,
				CategoryID: category.ID,
				Amount:     dec(tt.amount),
			})
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if !output.Transaction.Account.Balance.Equal(dec(tt.wantBalance)) {
				t.Errorf("balance = %s, want %s", output.Transaction.Account.Balance, tt.wantBalance)
			}
			if !repo.saved[account.ID].Equal(dec(tt.wantBalance)) {
				t.Errorf("persisted balance = %s, want %s", repo.saved[account.ID], tt.wantBalance)
			}
		})
	}
}

func TestCreateTransactionRejectsInvalidInput(t *testing.T) {
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", dec("1000.00"), "")
	category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "")

	longDescription := make([]byte, MaxDescriptionLength+1)
	for i := range longDescription {
		longDescription[i] = 'x'
	}

	tests := []struct {
		name     string
		input    CreateTransactionInput
		wantCode domainerror.TransactionErrorCode
	}{
		{
			name: "zero amount",
			input: CreateTransactionInput{
				UserID: userID, AccountID: account.ID, CategoryID: category.ID,
				Amount: decimal.Zero,
			},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "negative amount",
			input: CreateTransactionInput{
				UserID: userID, AccountID: account.ID, CategoryID: category.ID,
				Amount: dec("-1.00"),
			},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "description too long",
			input: CreateTransactionInput{
				UserID: userID, AccountID: account.ID, CategoryID: category.ID,
				Amount: dec("10.00"), Description: string(longDescription),
			},
			wantCode: domainerror.ErrCodeDescriptionTooLong,
		},
		{
			name: "unknown account",
			input: CreateTransactionInput{
				UserID: userID, AccountID: uuid.New(), CategoryID: category.ID,
				Amount: dec("10.00"),
			},
			wantCode: domainerror.ErrCodeTxnAccountNotFound,
		},
		{
			name: "unknown category",
			input: CreateTransactionInput{
				UserID: userID, AccountID: account.ID, CategoryID: uuid.New(),
				Amount: dec("10.00"),
			},
			wantCode: domainerror.ErrCodeTxnCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeTransactionRepo()
			uc := NewCreateTransactionUseCase(repo, newFakeAccountRepo(account), newFakeCategoryRepo(category))

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) {
				t.Fatalf("expected *TransactionError, got %T", err)
			}
			if txnErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", txnErr.Code, tt.wantCode)
			}
			if len(repo.transactions) != 0 {
				t.Error("expected no transaction to be persisted")
			}
		})
	}
}

func TestUpdateTransactionAmountEdit(t *testing.T) {
	// Editing a 50.00 expense to 80.00 must land the balance on 920.00, not
	// on 870.00 (which would mean the old contribution was counted twice).
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", dec("1000.00"), "")
	category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "")

	txn := entity.NewTransaction(userID, account.ID, category.ID, dec("50.00"), time.Now().UTC(), "groceries")
	account.ApplyTransaction(category.Type, txn.Amount)
	if !account.Balance.Equal(dec("950.00")) {
		t.Fatalf("setup balance = %s, want 950.00", account.Balance)
	}

	repo := newFakeTransactionRepo(txn)
	uc := NewUpdateTransactionUseCase(repo, newFakeAccountRepo(account), newFakeCategoryRepo(category))

	newAmount := dec("80.00")
	output, err := uc.Execute(context.Background(), UpdateTransactionInput{
		UserID:        userID,
		TransactionID: txn.ID,
		Amount:        &newAmount,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.Transaction.Account.Balance.Equal(dec("920.00")) {
		t.Errorf("balance = %s, want 920.00", output.Transaction.Account.Balance)
	}
	if !repo.saved[account.ID].Equal(dec("920.00")) {
		t.Errorf("persisted balance = %s, want 920.00", repo.saved[account.ID])
	}
	if !repo.transactions[txn.ID].Amount.Equal(newAmount) {
		t.Errorf("persisted amount = %s, want 80.00", repo.transactions[txn.ID].Amount)
	}
}

func TestUpdateTransactionMoveBetweenAccounts(t *testing.T) {
	// Moving a 50.00 expense from Checking to Savings restores Checking and
	// charges Savings. Both balances travel in the same repository call.
	userID := uuid.New()
	checking := entity.NewAccount(userID, "Checking", dec("1000.00"), "")
	savings := entity.NewAccount(userID, "Savings", dec("500.00"), "")
	category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "")

	txn := entity.NewTransaction(userID, checking.ID, category.ID, dec("50.00"), time.Now().UTC(), "")
	checking.ApplyTransaction(category.Type, txn.Amount)

	repo := newFakeTransactionRepo(txn)
	uc := NewUpdateTransactionUseCase(repo, newFakeAccountRepo(checking, savings), newFakeCategoryRepo(category))

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		UserID:        userID,
		TransactionID: txn.ID,
		AccountID:     &savings.ID,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !repo.saved[checking.ID].Equal(dec("1000.00")) {
		t.Errorf("checking balance = %s, want 1000.00", repo.saved[checking.ID])
	}
	if !repo.saved[savings.ID].Equal(dec("450.00")) {
		t.Errorf("savings balance = %s, want 450.00", repo.saved[savings.ID])
	}
	if repo.transactions[txn.ID].AccountID != savings.ID {
		t.Error("expected transaction to reference the new account")
	}
}

func TestUpdateTransactionCategoryTypeFlip(t *testing.T) {
	// Recategorizing a 50.00 expense as income swings the balance by twice
	// the amount: the reversal adds 50 back and the new apply adds 50 more.
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", dec("1000.00"), "")
	expense := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "")
	income := entity.NewCategory(userID, "Refunds", entity.CategoryTypeIncome, "")

	txn := entity.NewTransaction(userID, account.ID, expense.ID, dec("50.00"), time.Now().UTC(), "")
	account.ApplyTransaction(expense.Type, txn.Amount)

	repo := newFakeTransactionRepo(txn)
	uc := NewUpdateTransactionUseCase(repo, newFakeAccountRepo(account), newFakeCategoryRepo(expense, income))

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		UserID:        userID,
		TransactionID: txn.ID,
		CategoryID:    &income.ID,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !repo.saved[account.ID].Equal(dec("1050.00")) {
		t.Errorf("balance = %s, want 1050.00", repo.saved[account.ID])
	}
}

func TestUpdateTransactionNotOwned(t *testing.T) {
	owner := uuid.New()
	account := entity.NewAccount(owner, "Checking", dec("100.00"), "")
	category := entity.NewCategory(owner, "Groceries", entity.CategoryTypeExpense, "")
	txn := entity.NewTransaction(owner, account.ID, category.ID, dec("10.00"), time.Now().UTC(), "")

	repo := newFakeTransactionRepo(txn)
	uc := NewUpdateTransactionUseCase(repo, newFakeAccountRepo(account), newFakeCategoryRepo(category))

	amount := dec("20.00")
	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		UserID:        uuid.New(),
		TransactionID: txn.ID,
		Amount:        &amount,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) {
		t.Fatalf("expected *TransactionError, got %T", err)
	}
	if txnErr.Code != domainerror.ErrCodeTransactionNotFound {
		t.Errorf("code = %s, want %s", txnErr.Code, domainerror.ErrCodeTransactionNotFound)
	}
}

func TestDeleteTransactionReversesBalance(t *testing.T) {
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", dec("1000.00"), "")
	category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "")

	txn := entity.NewTransaction(userID, account.ID, category.ID, dec("50.00"), time.Now().UTC(), "")
	account.ApplyTransaction(category.Type, txn.Amount)

	repo := newFakeTransactionRepo(txn)
	uc := NewDeleteTransactionUseCase(repo, newFakeAccountRepo(account), newFakeCategoryRepo(category))

	output, err := uc.Execute(context.Background(), DeleteTransactionInput{
		UserID:        userID,
		TransactionID: txn.ID,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.AccountBalance.Equal(dec("1000.00")) {
		t.Errorf("balance = %s, want 1000.00", output.AccountBalance)
	}
	if len(repo.transactions) != 0 {
		t.Errorf("transaction count = %d, want 0", len(repo.transactions))
	}
	if !repo.saved[account.ID].Equal(dec("1000.00")) {
		t.Errorf("persisted balance = %s, want 1000.00", repo.saved[account.ID])
	}
}
