// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
	"github.com/dumpmycash/backend/internal/integration/persistence/model"
)

func TestTransferRepositoryCreateWithBalances(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewTransferRepository(db)
	accountRepo := NewAccountRepository(db)

	from := seedAccount(t, db, userID, "Checking", "1000.00")
	to := seedAccount(t, db, userID, "Savings", "500.00")

	transfer := entity.NewTransfer(userID, from.ID, to.ID, mustDec(t, "200.00"), "monthly savings")
	from.Debit(transfer.Amount)
	to.Credit(transfer.Amount)

	if err := repo.CreateWithBalances(ctx(), transfer, from, to); err != nil {
		t.Fatalf("CreateWithBalances error = %v", err)
	}

	storedFrom, _ := accountRepo.FindByIDAndUser(ctx(), from.ID, userID)
	storedTo, _ := accountRepo.FindByIDAndUser(ctx(), to.ID, userID)
	if !storedFrom.Balance.Equal(mustDec(t, "800.00")) {
		t.Errorf("from balance = %s, want 800.00", storedFrom.Balance)
	}
	if !storedTo.Balance.Equal(mustDec(t, "700.00")) {
		t.Errorf("to balance = %s, want 700.00", storedTo.Balance)
	}

	stored, err := repo.FindByIDAndUser(ctx(), transfer.ID, userID)
	if err != nil {
		t.Fatalf("FindByIDAndUser error = %v", err)
	}
	if !stored.Amount.Equal(mustDec(t, "200.00")) {
		t.Errorf("amount = %s, want 200.00", stored.Amount)
	}
}

func TestTransferRepositoryReverseWithBalances(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewTransferRepository(db)
	accountRepo := NewAccountRepository(db)

	from := seedAccount(t, db, userID, "Checking", "800.00")
	to := seedAccount(t, db, userID, "Savings", "700.00")

	transfer := entity.NewTransfer(userID, from.ID, to.ID, mustDec(t, "200.00"), "")
	if err := db.Create(model.TransferFromEntity(transfer)).Error; err != nil {
		t.Fatalf("failed to seed transfer: %v", err)
	}

	from.Credit(transfer.Amount)
	to.Debit(transfer.Amount)

	if err := repo.ReverseWithBalances(ctx(), transfer, from, to); err != nil {
		t.Fatalf("ReverseWithBalances error = %v", err)
	}

	_, err := repo.FindByIDAndUser(ctx(), transfer.ID, userID)
	if !errors.Is(err, domainerror.ErrTransferNotFound) {
		t.Errorf("error = %v, want ErrTransferNotFound", err)
	}

	storedFrom, _ := accountRepo.FindByIDAndUser(ctx(), from.ID, userID)
	if !storedFrom.Balance.Equal(mustDec(t, "1000.00")) {
		t.Errorf("from balance = %s, want 1000.00", storedFrom.Balance)
	}
}

func TestTransferRepositoryReverseDeletesShadowTransactions(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewTransferRepository(db)
	txnRepo := NewTransactionRepository(db)

	from := seedAccount(t, db, userID, "Checking", "800.00")
	to := seedAccount(t, db, userID, "Savings", "700.00")
	transferCat := seedCategory(t, db, userID, entity.TransferCategoryName, entity.CategoryTypeExpense)

	// A transfer created under the legacy scheme carries two bookkeeping
	// transaction rows linked by ID.
	now := time.Now().UTC()
	outTxn := seedTransaction(t, db, userID, from, transferCat, "200.00", now, "transfer out")
	inTxn := seedTransaction(t, db, userID, to, transferCat, "200.00", now, "transfer in")

	transfer := entity.NewTransfer(userID, from.ID, to.ID, mustDec(t, "200.00"), "")
	transfer.FromTransactionID = &outTxn.ID
	transfer.ToTransactionID = &inTxn.ID
	if err := db.Create(model.TransferFromEntity(transfer)).Error; err != nil {
		t.Fatalf("failed to seed transfer: %v", err)
	}

	from.Credit(transfer.Amount)
	to.Debit(transfer.Amount)
	if err := repo.ReverseWithBalances(ctx(), transfer, from, to); err != nil {
		t.Fatalf("ReverseWithBalances error = %v", err)
	}

	for _, shadowID := range []uuid.UUID{outTxn.ID, inTxn.ID} {
		if _, err := txnRepo.FindByID(ctx(), shadowID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("shadow transaction %s survived reversal: %v", shadowID, err)
		}
	}
}

func TestTransferRepositoryFindRecent(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewTransferRepository(db)

	from := seedAccount(t, db, userID, "Checking", "1000.00")
	to := seedAccount(t, db, userID, "Savings", "0")

	base := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		transfer := entity.NewTransfer(userID, from.ID, to.ID, mustDec(t, "10.00"), "")
		transfer.Date = base.AddDate(0, 0, i)
		if err := db.Create(model.TransferFromEntity(transfer)).Error; err != nil {
			t.Fatalf("failed to seed transfer: %v", err)
		}
	}

	recent, err := repo.FindRecent(ctx(), userID, 5)
	if err != nil {
		t.Fatalf("FindRecent error = %v", err)
	}

	if len(recent) != 5 {
		t.Fatalf("recent count = %d, want 5", len(recent))
	}
	if !recent[0].Transfer.Date.After(recent[4].Transfer.Date) {
		t.Error("expected newest transfer first")
	}
	if recent[0].FromAccount == nil || recent[0].FromAccount.Name != "Checking" {
		t.Error("expected the source account to be preloaded")
	}
}

func TestTransferRepositoryCountAndSum(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewTransferRepository(db)

	from := seedAccount(t, db, userID, "Checking", "1000.00")
	to := seedAccount(t, db, userID, "Savings", "0")

	base := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	amounts := []string{"100.00", "250.00", "50.00"}
	for i, amount := range amounts {
		transfer := entity.NewTransfer(userID, from.ID, to.ID, mustDec(t, amount), "")
		transfer.Date = base.AddDate(0, 0, i*10)
		if err := db.Create(model.TransferFromEntity(transfer)).Error; err != nil {
			t.Fatalf("failed to seed transfer: %v", err)
		}
	}

	t.Run("unbounded", func(t *testing.T) {
		totals, err := repo.CountAndSum(ctx(), userID, nil, nil)
		if err != nil {
			t.Fatalf("CountAndSum error = %v", err)
		}
		if totals.Count != 3 {
			t.Errorf("count = %d, want 3", totals.Count)
		}
		if totals.Amount.StringFixed(2) != "400.00" {
			t.Errorf("amount = %s, want 400.00", totals.Amount)
		}
	})

	t.Run("windowed", func(t *testing.T) {
		start := base.AddDate(0, 0, 5)
		end := base.AddDate(0, 0, 15)
		totals, err := repo.CountAndSum(ctx(), userID, &start, &end)
		if err != nil {
			t.Fatalf("CountAndSum error = %v", err)
		}
		if totals.Count != 1 {
			t.Errorf("count = %d, want 1", totals.Count)
		}
		if totals.Amount.StringFixed(2) != "250.00" {
			t.Errorf("amount = %s, want 250.00", totals.Amount)
		}
	})
}

func TestTransferRepositoryTopPairs(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewTransferRepository(db)

	checking := seedAccount(t, db, userID, "Checking", "1000.00")
	savings := seedAccount(t, db, userID, "Savings", "0")
	wallet := seedAccount(t, db, userID, "Wallet", "0")

	seedTransfers := func(from, to *entity.Account, count int, amount string) {
		for i := 0; i < count; i++ {
			transfer := entity.NewTransfer(userID, from.ID, to.ID, mustDec(t, amount), "")
			if err := db.Create(model.TransferFromEntity(transfer)).Error; err != nil {
				t.Fatalf("failed to seed transfer: %v", err)
			}
		}
	}
	seedTransfers(checking, savings, 3, "100.00")
	seedTransfers(checking, wallet, 1, "40.00")

	pairs, err := repo.TopPairs(ctx(), userID, 5)
	if err != nil {
		t.Fatalf("TopPairs error = %v", err)
	}

	if len(pairs) != 2 {
		t.Fatalf("pair count = %d, want 2", len(pairs))
	}
	top := pairs[0]
	if top.FromAccountName != "Checking" || top.ToAccountName != "Savings" {
		t.Errorf("top pair = %s -> %s, want Checking -> Savings", top.FromAccountName, top.ToAccountName)
	}
	if top.Count != 3 {
		t.Errorf("top pair count = %d, want 3", top.Count)
	}
	if top.Amount.StringFixed(2) != "300.00" {
		t.Errorf("top pair amount = %s, want 300.00", top.Amount)
	}
}

func TestTransferRepositoryFindByUserPagination(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewTransferRepository(db)

	from := seedAccount(t, db, userID, "Checking", "1000.00")
	to := seedAccount(t, db, userID, "Savings", "0")

	base := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		transfer := entity.NewTransfer(userID, from.ID, to.ID, mustDec(t, "10.00"), "")
		transfer.Date = base.AddDate(0, 0, i)
		if err := db.Create(model.TransferFromEntity(transfer)).Error; err != nil {
			t.Fatalf("failed to seed transfer: %v", err)
		}
	}

	result, err := repo.FindByUser(ctx(), userID, adapter.TransferPagination{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("FindByUser error = %v", err)
	}

	if result.Total != 5 {
		t.Errorf("total = %d, want 5", result.Total)
	}
	if result.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", result.TotalPages)
	}
	if len(result.Transfers) != 2 {
		t.Errorf("page size = %d, want 2", len(result.Transfers))
	}
}
