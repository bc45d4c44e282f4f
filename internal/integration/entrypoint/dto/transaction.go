// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dumpmycash/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID   string `json:"account_id" binding:"required,uuid"`
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date"`
	Description string `json:"description" binding:"max=255"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	AccountID   *string `json:"account_id"`
	CategoryID  *string `json:"category_id"`
	Amount      *string `json:"amount"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

// TransactionAccountResponse represents account info nested in a transaction.
type TransactionAccountResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

// TransactionCategoryResponse represents category info nested in a transaction.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	Amount      string                       `json:"amount"`
	Date        time.Time                    `json:"date"`
	Description string                       `json:"description"`
	Account     *TransactionAccountResponse  `json:"account,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// PaginationResponse represents pagination metadata in list responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionTotalsResponse represents aggregated totals in list responses.
type TransactionTotalsResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Pagination   PaginationResponse        `json:"pagination"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// DeleteTransactionResponse represents the response for transaction deletion.
type DeleteTransactionResponse struct {
	Message        string `json:"message"`
	AccountBalance string `json:"account_balance"`
}

// BulkDeleteTransactionsRequest represents the request body for bulk
// transaction deletion.
type BulkDeleteTransactionsRequest struct {
	TransactionIDs []string `json:"transaction_ids" binding:"required,min=1"`
}

// BulkDeleteTransactionsResponse represents the response for bulk transaction
// deletion.
type BulkDeleteTransactionsResponse struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}

// ToTransactionResponse converts a transaction use case output to its DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID.String(),
		Amount:      t.Amount.StringFixed(2),
		Date:        t.Date,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.Account != nil {
		resp.Account = &TransactionAccountResponse{
			ID:      t.Account.ID.String(),
			Name:    t.Account.Name,
			Balance: t.Account.Balance.StringFixed(2),
		}
	}

	if t.Category != nil {
		resp.Category = &TransactionCategoryResponse{
			ID:    t.Category.ID.String(),
			Name:  t.Category.Name,
			Type:  string(t.Category.Type),
			Emoji: t.Category.Emoji,
		}
	}

	return resp
}
