// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

// TransferPagination defines pagination options for transfer listings.
type TransferPagination struct {
	Page  int
	Limit int
}

// TransferListResult represents the result of listing transfers.
type TransferListResult struct {
	Transfers  []*entity.TransferWithAccounts
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// TransferTotals represents aggregated transfer counts and amounts.
type TransferTotals struct {
	Count  int64
	Amount decimal.Decimal
}

// TransferPairStat aggregates transfers over one directed account pair.
type TransferPairStat struct {
	FromAccountID   uuid.UUID
	FromAccountName string
	ToAccountID     uuid.UUID
	ToAccountName   string
	Count           int64
	Amount          decimal.Decimal
}

// TransferRepository defines the interface for transfer persistence operations.
//
// CreateWithBalances and ReverseWithBalances write the transfer record and
// both adjusted account balances in a single database transaction; either
// everything lands or nothing does.
type TransferRepository interface {
	// CreateWithBalances inserts a transfer and saves both adjusted account
	// balances atomically.
	CreateWithBalances(ctx context.Context, transfer *entity.Transfer, from, to *entity.Account) error

	// FindByIDAndUser retrieves a transfer by ID scoped to its owner.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Transfer, error)

	// FindByUser retrieves the user's transfers with both accounts loaded,
	// newest first, paginated.
	FindByUser(ctx context.Context, userID uuid.UUID, pagination TransferPagination) (*TransferListResult, error)

	// FindRecent retrieves the user's most recent transfers with accounts.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransferWithAccounts, error)

	// ReverseWithBalances deletes a transfer, saves both restored account
	// balances, and removes any legacy shadow transactions linked to the
	// transfer, all atomically.
	ReverseWithBalances(ctx context.Context, transfer *entity.Transfer, from, to *entity.Account) error

	// CountAndSum aggregates transfer count and total amount over the given
	// window. Nil bounds mean unbounded.
	CountAndSum(ctx context.Context, userID uuid.UUID, start, end *time.Time) (*TransferTotals, error)

	// TopPairs retrieves the most frequent directed account pairs with their
	// transfer counts and summed amounts.
	TopPairs(ctx context.Context, userID uuid.UUID, limit int) ([]*TransferPairStat, error)
}
