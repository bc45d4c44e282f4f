// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID     uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *entity.CategoryType
	StartDate  *time.Time
	EndDate    *time.Time
	// Search matches description, category name and account name,
	// case-insensitive.
	Search string

	// ExcludeTransfers drops transactions tagged with the reserved Transfer
	// category, which reports never count.
	ExcludeTransfers bool
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*entity.TransactionWithRefs
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// TransactionTotals represents aggregated totals for transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations.
//
// The *WithBalance methods persist the transaction change and the adjusted
// account balances in one database transaction. Callers mutate the account
// entities through the balance methods first, then hand both to the
// repository for the atomic write.
type TransactionRepository interface {
	// CreateWithBalance inserts a transaction and saves the adjusted account
	// balance atomically.
	CreateWithBalance(ctx context.Context, transaction *entity.Transaction, account *entity.Account) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithRefs retrieves a transaction with its account and category.
	FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRefs, error)

	// FindByFilter retrieves transactions based on filter criteria with
	// pagination, ordered by date descending then creation time descending.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*TransactionListResult, error)

	// GetTotals calculates income, expense and net totals for the filter.
	GetTotals(ctx context.Context, filter TransactionFilter) (*TransactionTotals, error)

	// UpdateWithBalances updates a transaction and saves every touched
	// account balance atomically. Accounts may be one (same-account edit)
	// or two (the transaction moved between accounts).
	UpdateWithBalances(ctx context.Context, transaction *entity.Transaction, accounts ...*entity.Account) error

	// DeleteWithBalance deletes a transaction and saves the restored account
	// balance atomically.
	DeleteWithBalance(ctx context.Context, id uuid.UUID, account *entity.Account) error

	// DeleteManyWithBalances deletes the given transactions and saves every
	// restored account balance atomically. Fails without deleting anything
	// when any ID no longer exists.
	DeleteManyWithBalances(ctx context.Context, ids []uuid.UUID, accounts ...*entity.Account) error
}
