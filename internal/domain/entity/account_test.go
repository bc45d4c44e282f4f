// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAccountApplyTransaction(t *testing.T) {
	tests := []struct {
		name         string
		startBalance string
		categoryType CategoryType
		amount       string
		wantBalance  string
	}{
		{"income adds to balance", "100.00", CategoryTypeIncome, "50.00", "150.00"},
		{"expense subtracts from balance", "100.00", CategoryTypeExpense, "30.00", "70.00"},
		{"expense can push balance negative", "10.00", CategoryTypeExpense, "25.00", "-15.00"},
		{"income on zero balance", "0", CategoryTypeIncome, "0.01", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := NewAccount(uuid.New(), "Checking", dec(tt.startBalance), "")
			account.ApplyTransaction(tt.categoryType, dec(tt.amount))

			if !account.Balance.Equal(dec(tt.wantBalance)) {
				t.Errorf("balance = %s, want %s", account.Balance, tt.wantBalance)
			}
		})
	}
}

func TestAccountReverseTransactionIsInverse(t *testing.T) {
	account := NewAccount(uuid.New(), "Checking", dec("1000.00"), "")

	account.ApplyTransaction(CategoryTypeExpense, dec("50.00"))
	if !account.Balance.Equal(dec("950.00")) {
		t.Fatalf("balance after expense = %s, want 950.00", account.Balance)
	}

	account.ReverseTransaction(CategoryTypeExpense, dec("50.00"))
	if !account.Balance.Equal(dec("1000.00")) {
		t.Fatalf("balance after reversal = %s, want 1000.00", account.Balance)
	}
}

func TestAccountAmountEditReversesThenApplies(t *testing.T) {
	// Editing a 50.00 expense to 80.00 must land on start - 80, not
	// start - 50 - 80.
	account := NewAccount(uuid.New(), "Checking", dec("1000.00"), "")

	account.ApplyTransaction(CategoryTypeExpense, dec("50.00"))
	account.ReverseTransaction(CategoryTypeExpense, dec("50.00"))
	account.ApplyTransaction(CategoryTypeExpense, dec("80.00"))

	if !account.Balance.Equal(dec("920.00")) {
		t.Errorf("balance = %s, want 920.00", account.Balance)
	}
}

func TestAccountDebitCreditRoundTrip(t *testing.T) {
	from := NewAccount(uuid.New(), "Checking", dec("1000.00"), "")
	to := NewAccount(from.UserID, "Savings", dec("500.00"), "")
	amount := dec("200.00")

	from.Debit(amount)
	to.Credit(amount)

	if !from.Balance.Equal(dec("800.00")) {
		t.Errorf("from balance = %s, want 800.00", from.Balance)
	}
	if !to.Balance.Equal(dec("700.00")) {
		t.Errorf("to balance = %s, want 700.00", to.Balance)
	}

	// Total money across both accounts is unchanged
	total := from.Balance.Add(to.Balance)
	if !total.Equal(dec("1500.00")) {
		t.Errorf("total across accounts = %s, want 1500.00", total)
	}
}

func TestAccountCanCover(t *testing.T) {
	account := NewAccount(uuid.New(), "Checking", dec("100.00"), "")

	if !account.CanCover(dec("100.00")) {
		t.Error("expected CanCover to allow a debit equal to the balance")
	}
	if !account.CanCover(dec("99.99")) {
		t.Error("expected CanCover to allow a debit below the balance")
	}
	if account.CanCover(dec("100.01")) {
		t.Error("expected CanCover to reject a debit above the balance")
	}
}

func TestNewAccountDefaultsColor(t *testing.T) {
	account := NewAccount(uuid.New(), "Checking", decimal.Zero, "")
	if account.Color != DefaultAccountColor {
		t.Errorf("color = %s, want %s", account.Color, DefaultAccountColor)
	}

	custom := NewAccount(uuid.New(), "Savings", decimal.Zero, "#00FF00")
	if custom.Color != "#00FF00" {
		t.Errorf("color = %s, want #00FF00", custom.Color)
	}
}
