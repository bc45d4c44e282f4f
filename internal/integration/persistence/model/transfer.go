// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

// TransferModel represents the transfers table in the database.
// FromTransactionID/ToTransactionID carry the shadow-transaction links of
// transfers created under the legacy scheme; new rows leave them null.
type TransferModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	FromAccountID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ToAccountID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date              time.Time       `gorm:"type:timestamp;not null;index"`
	Description       string          `gorm:"type:varchar(255)"`
	FromTransactionID *uuid.UUID      `gorm:"type:uuid"`
	ToTransactionID   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt         time.Time       `gorm:"not null;index"`

	// Relationships (not loaded by default, use Preload)
	User        *UserModel    `gorm:"foreignKey:UserID;references:ID"`
	FromAccount *AccountModel `gorm:"foreignKey:FromAccountID;references:ID"`
	ToAccount   *AccountModel `gorm:"foreignKey:ToAccountID;references:ID"`
}

// TableName returns the table name for the TransferModel.
func (TransferModel) TableName() string {
	return "transfers"
}

// ToEntity converts a TransferModel to a domain Transfer entity.
func (m *TransferModel) ToEntity() *entity.Transfer {
	return &entity.Transfer{
		ID:                m.ID,
		UserID:            m.UserID,
		FromAccountID:     m.FromAccountID,
		ToAccountID:       m.ToAccountID,
		Amount:            m.Amount,
		Date:              m.Date,
		Description:       m.Description,
		FromTransactionID: m.FromTransactionID,
		ToTransactionID:   m.ToTransactionID,
		CreatedAt:         m.CreatedAt,
	}
}

// ToEntityWithAccounts converts a TransferModel with preloaded accounts to a
// TransferWithAccounts entity.
func (m *TransferModel) ToEntityWithAccounts() *entity.TransferWithAccounts {
	result := &entity.TransferWithAccounts{
		Transfer: m.ToEntity(),
	}
	if m.FromAccount != nil {
		result.FromAccount = m.FromAccount.ToEntity()
	}
	if m.ToAccount != nil {
		result.ToAccount = m.ToAccount.ToEntity()
	}
	return result
}

// TransferFromEntity creates a TransferModel from a domain Transfer entity.
func TransferFromEntity(transfer *entity.Transfer) *TransferModel {
	return &TransferModel{
		ID:                transfer.ID,
		UserID:            transfer.UserID,
		FromAccountID:     transfer.FromAccountID,
		ToAccountID:       transfer.ToAccountID,
		Amount:            transfer.Amount,
		Date:              transfer.Date,
		Description:       transfer.Description,
		FromTransactionID: transfer.FromTransactionID,
		ToTransactionID:   transfer.ToTransactionID,
		CreatedAt:         transfer.CreatedAt,
	}
}
