// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Balance string `json:"balance"`
	Color   string `json:"color"`
}

// UpdateAccountRequest represents the request body for account update.
// Omitted fields are left unchanged.
type UpdateAccountRequest struct {
	Name    *string `json:"name"`
	Color   *string `json:"color"`
	Balance *string `json:"balance"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts     []AccountResponse `json:"accounts"`
	TotalBalance string            `json:"total_balance"`
}

// AccountChartItem represents one slice of the balance distribution chart.
type AccountChartItem struct {
	Name    string `json:"name"`
	Balance string `json:"balance"`
	Color   string `json:"color"`
}

// AccountChartDataResponse represents the response for account chart data.
type AccountChartDataResponse struct {
	Accounts []AccountChartItem `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Balance:   account.Balance.StringFixed(2),
		Color:     account.Color,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ToAccountChartItem converts an Account entity to a chart slice DTO.
func ToAccountChartItem(account *entity.Account) AccountChartItem {
	return AccountChartItem{
		Name:    account.Name,
		Balance: account.Balance.StringFixed(2),
		Color:   account.Color,
	}
}
