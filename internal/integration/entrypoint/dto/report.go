// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"time"

	"github.com/dumpmycash/backend/internal/application/usecase/report"
)

// OverviewResponse represents the response for the overview report.
type OverviewResponse struct {
	TotalBalance       string                      `json:"total_balance"`
	MonthIncome        string                      `json:"month_income"`
	MonthExpenses      string                      `json:"month_expenses"`
	MonthNet           string                      `json:"month_net"`
	RecentTransactions []RecentTransactionResponse `json:"recent_transactions"`
}

// RecentTransactionResponse represents one recent transaction in the overview.
type RecentTransactionResponse struct {
	ID            string    `json:"id"`
	Amount        string    `json:"amount"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	AccountName   string    `json:"account_name"`
	CategoryName  string    `json:"category_name"`
	CategoryType  string    `json:"category_type"`
	CategoryEmoji string    `json:"category_emoji"`
}

// CategoryBreakdownItemResponse represents one category in the breakdown.
type CategoryBreakdownItemResponse struct {
	CategoryID       string  `json:"category_id"`
	CategoryName     string  `json:"category_name"`
	CategoryEmoji    string  `json:"category_emoji"`
	Amount           string  `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// CategoryBreakdownResponse represents the response for the category breakdown.
type CategoryBreakdownResponse struct {
	Total      string                          `json:"total"`
	Categories []CategoryBreakdownItemResponse `json:"categories"`
}

// TopExpensesResponse represents the response for the top expense categories.
type TopExpensesResponse struct {
	Categories []CategoryBreakdownItemResponse `json:"categories"`
}

// MonthlyTrendPointResponse represents one month on the trend chart.
type MonthlyTrendPointResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// MonthlyTrendResponse represents the response for the monthly trend report.
type MonthlyTrendResponse struct {
	Points []MonthlyTrendPointResponse `json:"points"`
}

// DailyActivityItemResponse represents one day of transaction activity.
type DailyActivityItemResponse struct {
	Date             string `json:"date"`
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	TransactionCount int    `json:"transaction_count"`
}

// DailyActivityResponse represents the response for the daily activity report.
type DailyActivityResponse struct {
	Days []DailyActivityItemResponse `json:"days"`
}

// PeriodTotalsResponse represents the response for the period totals report.
type PeriodTotalsResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// ToCategoryBreakdownItemResponse converts a breakdown item to its DTO.
func ToCategoryBreakdownItemResponse(item report.CategoryBreakdownItem) CategoryBreakdownItemResponse {
	return CategoryBreakdownItemResponse{
		CategoryID:       item.CategoryID.String(),
		CategoryName:     item.CategoryName,
		CategoryEmoji:    item.CategoryEmoji,
		Amount:           item.Amount.StringFixed(2),
		Percentage:       item.Percentage,
		TransactionCount: item.TransactionCount,
	}
}

// ToMonthlyTrendPointResponse converts a trend point to its DTO. The month is
// rendered as "YYYY-MM".
func ToMonthlyTrendPointResponse(point report.MonthlyTrendPoint) MonthlyTrendPointResponse {
	return MonthlyTrendPointResponse{
		Month:    fmt.Sprintf("%04d-%02d", point.Year, int(point.Month)),
		Income:   point.Income.StringFixed(2),
		Expenses: point.Expenses.StringFixed(2),
		Net:      point.Net.StringFixed(2),
	}
}

// ToDailyActivityItemResponse converts a daily activity row to its DTO.
func ToDailyActivityItemResponse(day report.RawDailyActivity) DailyActivityItemResponse {
	return DailyActivityItemResponse{
		Date:             day.Day.Format("2006-01-02"),
		Income:           day.Income.StringFixed(2),
		Expenses:         day.Expenses.StringFixed(2),
		TransactionCount: day.TransactionCount,
	}
}
