// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultAccountColor is the default display color for accounts.
const DefaultAccountColor = "#FF6384"

// Account represents a named money container owned by exactly one user.
//
// Balance must always equal the net effect of every transaction referencing
// the account (income adds, expense subtracts) plus every transfer where the
// account is the source (subtract) or destination (add). The balance methods
// below are the only way use cases mutate it.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Balance   decimal.Decimal
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity. An empty color gets the default.
func NewAccount(userID uuid.UUID, name string, balance decimal.Decimal, color string) *Account {
	if color == "" {
		color = DefaultAccountColor
	}

	now := time.Now().UTC()
	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Balance:   balance,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyTransaction adjusts the balance for a newly recorded transaction.
// The amount is unsigned; the sign comes from the category type at the
// moment of application.
func (a *Account) ApplyTransaction(categoryType CategoryType, amount decimal.Decimal) {
	if categoryType == CategoryTypeIncome {
		a.Balance = a.Balance.Add(amount)
	} else {
		a.Balance = a.Balance.Sub(amount)
	}
}

// ReverseTransaction is the exact inverse of ApplyTransaction. It runs before
// a transaction is deleted, and before an updated transaction's new values
// are applied, so that an amount-only edit on the same account never
// double-counts.
func (a *Account) ReverseTransaction(categoryType CategoryType, amount decimal.Decimal) {
	if categoryType == CategoryTypeIncome {
		a.Balance = a.Balance.Sub(amount)
	} else {
		a.Balance = a.Balance.Add(amount)
	}
}

// Debit removes the amount from the balance (source side of a transfer).
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}

// Credit adds the amount to the balance (destination side of a transfer).
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// CanCover reports whether the balance is sufficient for a debit of amount.
func (a *Account) CanCover(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
