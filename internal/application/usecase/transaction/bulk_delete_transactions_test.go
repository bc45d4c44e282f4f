// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

func TestBulkDeleteTransactionsReversesBalances(t *testing.T) {
	// Two expenses on Checking and an income on Savings: deleting all three
	// must restore both balances, writing each account exactly once.
	userID := uuid.New()
	checking := entity.NewAccount(userID, "Checking", dec("1000.00"), "")
	savings := entity.NewAccount(userID, "Savings", dec("500.00"), "")
	expense := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "")
	income := entity.NewCategory(userID, "Salary", entity.CategoryTypeIncome, "")

	first := entity.NewTransaction(userID, checking.ID, expense.ID, dec("50.00"), time.Now().UTC(), "")
	second := entity.NewTransaction(userID, checking.ID, expense.ID, dec("30.00"), time.Now().UTC(), "")
	third := entity.NewTransaction(userID, savings.ID, income.ID, dec("200.00"), time.Now().UTC(), "")
	checking.ApplyTransaction(expense.Type, first.Amount)
	checking.ApplyTransaction(expense.Type, second.Amount)
	savings.ApplyTransaction(income.Type, third.Amount)

	repo := newFakeTransactionRepo()
	repo.addWithRefs(first, checking, expense)
	repo.addWithRefs(second, checking, expense)
	repo.addWithRefs(third, savings, income)

	uc := NewBulkDeleteTransactionsUseCase(repo)
	output, err := uc.Execute(context.Background(), BulkDeleteTransactionsInput{
		UserID:         userID,
		TransactionIDs: []uuid.UUID{first.ID, second.ID, third.ID},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.DeletedCount != 3 {
		t.Errorf("deleted count = %d, want 3", output.DeletedCount)
	}
	if len(repo.transactions) != 0 {
		t.Errorf("transaction count = %d, want 0", len(repo.transactions))
	}
	if !repo.saved[checking.ID].Equal(dec("1000.00")) {
		t.Errorf("checking balance = %s, want 1000.00", repo.saved[checking.ID])
	}
	if !repo.saved[savings.ID].Equal(dec("500.00")) {
		t.Errorf("savings balance = %s, want 500.00", repo.saved[savings.ID])
	}
}

func TestBulkDeleteTransactionsAllOrNothing(t *testing.T) {
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", dec("1000.00"), "")
	category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "")

	owned := entity.NewTransaction(userID, account.ID, category.ID, dec("50.00"), time.Now().UTC(), "")
	account.ApplyTransaction(category.Type, owned.Amount)

	repo := newFakeTransactionRepo()
	repo.addWithRefs(owned, account, category)

	uc := NewBulkDeleteTransactionsUseCase(repo)

	tests := []struct {
		name string
		ids  []uuid.UUID
	}{
		{"unknown id in the batch", []uuid.UUID{owned.ID, uuid.New()}},
		{"another user's id in the batch", []uuid.UUID{owned.ID, seedForeignTransaction(repo)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), BulkDeleteTransactionsInput{
				UserID:         userID,
				TransactionIDs: tt.ids,
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
			if _, ok := repo.transactions[owned.ID]; !ok {
				t.Error("expected the owned transaction to survive a failed batch")
			}
		})
	}
}

func TestBulkDeleteTransactionsIgnoresDuplicateIDs(t *testing.T) {
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", dec("1000.00"), "")
	category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "")

	txn := entity.NewTransaction(userID, account.ID, category.ID, dec("50.00"), time.Now().UTC(), "")
	account.ApplyTransaction(category.Type, txn.Amount)

	repo := newFakeTransactionRepo()
	repo.addWithRefs(txn, account, category)

	uc := NewBulkDeleteTransactionsUseCase(repo)
	output, err := uc.Execute(context.Background(), BulkDeleteTransactionsInput{
		UserID:         userID,
		TransactionIDs: []uuid.UUID{txn.ID, txn.ID, txn.ID},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.DeletedCount != 1 {
		t.Errorf("deleted count = %d, want 1", output.DeletedCount)
	}
	if !repo.saved[account.ID].Equal(dec("1000.00")) {
		t.Errorf("balance = %s, want 1000.00 (reversal applied once)", repo.saved[account.ID])
	}
}

// seedForeignTransaction stores a transaction owned by a different user and
// returns its ID.
func seedForeignTransaction(repo *fakeTransactionRepo) uuid.UUID {
	otherUser := uuid.New()
	otherAccount := entity.NewAccount(otherUser, "Other", dec("100.00"), "")
	otherCategory := entity.NewCategory(otherUser, "Misc", entity.CategoryTypeExpense, "")
	foreign := entity.NewTransaction(otherUser, otherAccount.ID, otherCategory.ID, dec("10.00"), time.Now().UTC(), "")
	repo.addWithRefs(foreign, otherAccount, otherCategory)
	return foreign.ID
}
