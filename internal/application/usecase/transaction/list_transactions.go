// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *entity.CategoryType
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	Page       int
	Limit      int
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Account     *AccountOutput
	Category    *CategoryOutput
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AccountOutput represents account information in transaction output.
type AccountOutput struct {
	ID      uuid.UUID
	Name    string
	Balance decimal.Decimal
}

// CategoryOutput represents category information in transaction output.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Type  entity.CategoryType
	Emoji string
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// TotalsOutput represents aggregated totals in the output.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing, ordered by date descending with
// newest-inserted first among same-date rows.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	// Set default pagination values
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	// Build filter. Transfer bookkeeping rows stay out of the listing and
	// its totals; transfers have their own endpoints.
	filter := adapter.TransactionFilter{
		UserID:           input.UserID,
		AccountID:        input.AccountID,
		CategoryID:       input.CategoryID,
		Type:             input.Type,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Search:           input.Search,
		ExcludeTransfers: true,
	}

	pagination := adapter.TransactionPagination{
		Page:  page,
		Limit: limit,
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totals, err := uc.transactionRepo.GetTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction totals: %w", err)
	}

	transactions := make([]*TransactionOutput, 0, len(result.Transactions))
	for _, t := range result.Transactions {
		transactions = append(transactions, newTransactionOutput(t.Transaction, t.Account, t.Category))
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
		Totals: TotalsOutput{
			IncomeTotal:  totals.IncomeTotal,
			ExpenseTotal: totals.ExpenseTotal,
			NetTotal:     totals.NetTotal,
		},
	}, nil
}

// newTransactionOutput builds the shared output shape from entities. Account
// and category may be nil on partially loaded rows.
func newTransactionOutput(t *entity.Transaction, account *entity.Account, category *entity.Category) *TransactionOutput {
	out := &TransactionOutput{
		ID:          t.ID,
		UserID:      t.UserID,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if account != nil {
		out.Account = &AccountOutput{
			ID:      account.ID,
			Name:    account.Name,
			Balance: account.Balance,
		}
	}
	if category != nil {
		out.Category = &CategoryOutput{
			ID:    category.ID,
			Name:  category.Name,
			Type:  category.Type,
			Emoji: category.Emoji,
		}
	}
	return out
}
