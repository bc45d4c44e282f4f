// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

// CreateTransferRequest represents the request body for transfer creation.
type CreateTransferRequest struct {
	FromAccountID string `json:"from_account_id" binding:"required,uuid"`
	ToAccountID   string `json:"to_account_id" binding:"required,uuid"`
	Amount        string `json:"amount" binding:"required"`
	Description   string `json:"description" binding:"max=255"`
}

// TransferResponse represents a transfer in API responses.
type TransferResponse struct {
	ID            string    `json:"id"`
	FromAccountID string    `json:"from_account_id"`
	ToAccountID   string    `json:"to_account_id"`
	Amount        string    `json:"amount"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransferWithAccountsResponse represents a transfer with its account details.
type TransferWithAccountsResponse struct {
	TransferResponse
	FromAccount *TransferAccountResponse `json:"from_account,omitempty"`
	ToAccount   *TransferAccountResponse `json:"to_account,omitempty"`
}

// TransferAccountResponse represents account info nested in a transfer.
type TransferAccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateTransferResponse represents the response for transfer creation.
type CreateTransferResponse struct {
	Transfer           TransferResponse `json:"transfer"`
	FromAccountBalance string           `json:"from_account_balance"`
	ToAccountBalance   string           `json:"to_account_balance"`
}

// ReverseTransferResponse represents the response for transfer reversal.
type ReverseTransferResponse struct {
	Message            string `json:"message"`
	Amount             string `json:"amount"`
	FromAccountBalance string `json:"from_account_balance"`
	ToAccountBalance   string `json:"to_account_balance"`
}

// TransferListResponse represents the response for listing transfers.
type TransferListResponse struct {
	Transfers  []TransferWithAccountsResponse `json:"transfers"`
	Pagination PaginationResponse             `json:"pagination"`
}

// RecentTransfersResponse represents the response for recent transfers.
type RecentTransfersResponse struct {
	Transfers []TransferWithAccountsResponse `json:"transfers"`
}

// TransferPairResponse represents a frequent account pair in the summary.
type TransferPairResponse struct {
	FromAccountID   string `json:"from_account_id"`
	FromAccountName string `json:"from_account_name"`
	ToAccountID     string `json:"to_account_id"`
	ToAccountName   string `json:"to_account_name"`
	Count           int64  `json:"count"`
	Amount          string `json:"amount"`
}

// TransferSummaryResponse represents the response for transfer statistics.
type TransferSummaryResponse struct {
	TotalCount    int64                  `json:"total_count"`
	TotalAmount   string                 `json:"total_amount"`
	MonthCount    int64                  `json:"month_count"`
	MonthAmount   string                 `json:"month_amount"`
	FrequentPairs []TransferPairResponse `json:"frequent_pairs"`
}

// ToTransferResponse converts a domain Transfer entity to a TransferResponse DTO.
func ToTransferResponse(transfer *entity.Transfer) TransferResponse {
	return TransferResponse{
		ID:            transfer.ID.String(),
		FromAccountID: transfer.FromAccountID.String(),
		ToAccountID:   transfer.ToAccountID.String(),
		Amount:        transfer.Amount.StringFixed(2),
		Date:          transfer.Date,
		Description:   transfer.Description,
		CreatedAt:     transfer.CreatedAt,
	}
}

// ToTransferWithAccountsResponse converts a TransferWithAccounts to its DTO.
func ToTransferWithAccountsResponse(tw *entity.TransferWithAccounts) TransferWithAccountsResponse {
	resp := TransferWithAccountsResponse{
		TransferResponse: ToTransferResponse(tw.Transfer),
	}

	if tw.FromAccount != nil {
		resp.FromAccount = &TransferAccountResponse{
			ID:    tw.FromAccount.ID.String(),
			Name:  tw.FromAccount.Name,
			Color: tw.FromAccount.Color,
		}
	}

	if tw.ToAccount != nil {
		resp.ToAccount = &TransferAccountResponse{
			ID:    tw.ToAccount.ID.String(),
			Name:  tw.ToAccount.Name,
			Color: tw.ToAccount.Color,
		}
	}

	return resp
}
