// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Default emojis applied when a category is created without one.
const (
	DefaultEmojiIncome  = "💰"
	DefaultEmojiExpense = "💸"
)

// TransferCategoryName is the reserved category name that older versions used
// to tag the shadow transactions of a transfer. Transfers are standalone
// entities now, but transactions carrying this category are still excluded
// from every report.
const TransferCategoryName = "Transfer"

// System categories created lazily the first time they are needed.
const (
	InitialDepositCategoryName  = "Initial Deposit"
	BalanceIncreaseCategoryName = "Balance Adjustment (Increase)"
	BalanceDecreaseCategoryName = "Balance Adjustment (Decrease)"

	InitialDepositEmoji  = "💰"
	BalanceIncreaseEmoji = "📈"
	BalanceDecreaseEmoji = "📉"
)

// Category represents an income or expense label owned by a user.
// The (UserID, Name, Type) combination is unique.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	Emoji     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity. An empty emoji gets the
// type-specific default.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, emoji string) *Category {
	if emoji == "" {
		if categoryType == CategoryTypeIncome {
			emoji = DefaultEmojiIncome
		} else {
			emoji = DefaultEmojiExpense
		}
	}

	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		Emoji:     emoji,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryWithTotal represents a category with its transaction total for a period.
type CategoryWithTotal struct {
	Category *Category
	Total    decimal.Decimal
}
