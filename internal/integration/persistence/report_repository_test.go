// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"testing"
	"time"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

func TestReportRepositoryGetTotalsByTypeExcludesTransfers(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewReportRepository(db)

	account := seedAccount(t, db, userID, "Checking", "1000.00")
	salary := seedCategory(t, db, userID, "Salary", entity.CategoryTypeIncome)
	groceries := seedCategory(t, db, userID, "Groceries", entity.CategoryTypeExpense)
	transferCat := seedCategory(t, db, userID, entity.TransferCategoryName, entity.CategoryTypeExpense)

	now := time.Now().UTC()
	seedTransaction(t, db, userID, account, salary, "2000.00", now, "")
	seedTransaction(t, db, userID, account, groceries, "150.00", now, "")
	seedTransaction(t, db, userID, account, groceries, "50.00", now, "")
	seedTransaction(t, db, userID, account, transferCat, "500.00", now, "legacy transfer row")

	income, expenses, err := repo.GetTotalsByType(ctx(), userID, nil, nil)
	if err != nil {
		t.Fatalf("GetTotalsByType error = %v", err)
	}

	if income.StringFixed(2) != "2000.00" {
		t.Errorf("income = %s, want 2000.00", income)
	}
	if expenses.StringFixed(2) != "200.00" {
		t.Errorf("expenses = %s, want 200.00", expenses)
	}
}

func TestReportRepositoryGetTotalsByTypeEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewReportRepository(db)

	income, expenses, err := repo.GetTotalsByType(ctx(), userID, nil, nil)
	if err != nil {
		t.Fatalf("GetTotalsByType error = %v", err)
	}
	if !income.IsZero() || !expenses.IsZero() {
		t.Errorf("totals = %s/%s, want zeros", income, expenses)
	}
}

func TestReportRepositoryGetCategoryBreakdown(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewReportRepository(db)

	account := seedAccount(t, db, userID, "Checking", "1000.00")
	rent := seedCategory(t, db, userID, "Rent", entity.CategoryTypeExpense)
	groceries := seedCategory(t, db, userID, "Groceries", entity.CategoryTypeExpense)
	salary := seedCategory(t, db, userID, "Salary", entity.CategoryTypeIncome)

	now := time.Now().UTC()
	seedTransaction(t, db, userID, account, rent, "600.00", now, "")
	seedTransaction(t, db, userID, account, groceries, "100.00", now, "")
	seedTransaction(t, db, userID, account, groceries, "200.00", now, "")
	seedTransaction(t, db, userID, account, salary, "3000.00", now, "not an expense")

	rows, total, err := repo.GetCategoryBreakdown(ctx(), userID, entity.CategoryTypeExpense, nil, nil)
	if err != nil {
		t.Fatalf("GetCategoryBreakdown error = %v", err)
	}

	if total.StringFixed(2) != "900.00" {
		t.Errorf("total = %s, want 900.00", total)
	}
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}
	// Sorted by sum descending
	if rows[0].CategoryName != "Rent" || rows[1].CategoryName != "Groceries" {
		t.Errorf("order = %s, %s; want Rent, Groceries", rows[0].CategoryName, rows[1].CategoryName)
	}
	if rows[1].TransactionCount != 2 {
		t.Errorf("groceries count = %d, want 2", rows[1].TransactionCount)
	}
}

func TestReportRepositoryGetMonthlyTotals(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewReportRepository(db)

	account := seedAccount(t, db, userID, "Checking", "1000.00")
	salary := seedCategory(t, db, userID, "Salary", entity.CategoryTypeIncome)
	groceries := seedCategory(t, db, userID, "Groceries", entity.CategoryTypeExpense)

	seedTransaction(t, db, userID, account, salary, "2000.00", time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC), "")
	seedTransaction(t, db, userID, account, groceries, "300.00", time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC), "")
	seedTransaction(t, db, userID, account, groceries, "120.00", time.Date(2025, time.May, 2, 10, 0, 0, 0, time.UTC), "")

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)
	totals, err := repo.GetMonthlyTotals(ctx(), userID, start, end)
	if err != nil {
		t.Fatalf("GetMonthlyTotals error = %v", err)
	}

	// Only months with transactions appear, oldest first
	if len(totals) != 2 {
		t.Fatalf("month count = %d, want 2", len(totals))
	}
	march := totals[0]
	if march.Month != time.March || march.Year != 2025 {
		t.Errorf("first month = %d-%s, want 2025-March", march.Year, march.Month)
	}
	if march.Income.StringFixed(2) != "2000.00" || march.Expenses.StringFixed(2) != "300.00" {
		t.Errorf("march totals = %s/%s, want 2000.00/300.00", march.Income, march.Expenses)
	}
	may := totals[1]
	if may.Month != time.May || may.Expenses.StringFixed(2) != "120.00" {
		t.Errorf("second month = %s with expenses %s, want May with 120.00", may.Month, may.Expenses)
	}
}

func TestReportRepositoryGetDailyActivity(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewReportRepository(db)

	account := seedAccount(t, db, userID, "Checking", "1000.00")
	groceries := seedCategory(t, db, userID, "Groceries", entity.CategoryTypeExpense)
	salary := seedCategory(t, db, userID, "Salary", entity.CategoryTypeIncome)

	day := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	seedTransaction(t, db, userID, account, groceries, "20.00", day.Add(9*time.Hour), "")
	seedTransaction(t, db, userID, account, groceries, "35.00", day.Add(18*time.Hour), "")
	seedTransaction(t, db, userID, account, salary, "100.00", day.AddDate(0, 0, 1), "")

	start := day.AddDate(0, 0, -1)
	end := day.AddDate(0, 0, 2)
	days, err := repo.GetDailyActivity(ctx(), userID, start, end)
	if err != nil {
		t.Fatalf("GetDailyActivity error = %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("day count = %d, want 2", len(days))
	}

	first := days[0]
	if !first.Day.Equal(day) {
		t.Errorf("first day = %s, want %s", first.Day, day)
	}
	if first.Expenses.StringFixed(2) != "55.00" {
		t.Errorf("first day expenses = %s, want 55.00", first.Expenses)
	}
	if first.TransactionCount != 2 {
		t.Errorf("first day count = %d, want 2", first.TransactionCount)
	}
	if days[1].Income.StringFixed(2) != "100.00" {
		t.Errorf("second day income = %s, want 100.00", days[1].Income)
	}
}

func TestReportRepositoryGetRecentTransactions(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	repo := NewReportRepository(db)

	account := seedAccount(t, db, userID, "Checking", "1000.00")
	groceries := seedCategory(t, db, userID, "Groceries", entity.CategoryTypeExpense)
	transferCat := seedCategory(t, db, userID, entity.TransferCategoryName, entity.CategoryTypeExpense)

	base := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		seedTransaction(t, db, userID, account, groceries, "10.00", base.AddDate(0, 0, i), "")
	}
	// Legacy transfer rows never show up in the recent feed
	seedTransaction(t, db, userID, account, transferCat, "500.00", base.AddDate(0, 0, 10), "transfer")

	recent, err := repo.GetRecentTransactions(ctx(), userID, 3)
	if err != nil {
		t.Fatalf("GetRecentTransactions error = %v", err)
	}

	if len(recent) != 3 {
		t.Fatalf("recent count = %d, want 3", len(recent))
	}
	for i, txn := range recent {
		if txn.Category == nil || txn.Category.Name == entity.TransferCategoryName {
			t.Errorf("recent[%d] is a transfer bookkeeping row", i)
		}
	}
	if !recent[0].Transaction.Date.After(recent[1].Transaction.Date) {
		t.Error("expected newest transaction first")
	}
}
