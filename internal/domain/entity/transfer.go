// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer represents an atomic same-owner movement of a fixed amount from
// one account to another, decoupled from transaction accounting.
//
// FromTransactionID/ToTransactionID are compatibility fields: an earlier
// design recorded every transfer as two shadow transactions tagged with the
// reserved "Transfer" category. Transfers created under that scheme keep the
// links so a reversal can clean the shadow rows up.
//
// A transfer is immutable after creation; the only mutation path is a full
// reversal, which restores both balances and deletes the record.
type Transfer struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	FromAccountID     uuid.UUID
	ToAccountID       uuid.UUID
	Amount            decimal.Decimal
	Date              time.Time
	Description       string
	FromTransactionID *uuid.UUID
	ToTransactionID   *uuid.UUID
	CreatedAt         time.Time
}

// NewTransfer creates a new Transfer entity.
func NewTransfer(
	userID uuid.UUID,
	fromAccountID uuid.UUID,
	toAccountID uuid.UUID,
	amount decimal.Decimal,
	description string,
) *Transfer {
	now := time.Now().UTC()
	return &Transfer{
		ID:            uuid.New(),
		UserID:        userID,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		Date:          now,
		Description:   description,
		CreatedAt:     now,
	}
}

// TransferWithAccounts represents a transfer with both account entities loaded.
type TransferWithAccounts struct {
	Transfer    *Transfer
	FromAccount *Account
	ToAccount   *Account
}
