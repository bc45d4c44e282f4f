// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

// AccountActivity counts the rows that reference an account.
type AccountActivity struct {
	TransactionCount int64
	TransferCount    int64
}

// AccountRepository defines the interface for account persistence operations.
//
// Every method that both writes an account and a transaction runs inside a
// single database transaction so the stored balance never drifts from the
// transaction history.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// CreateWithInitialDeposit creates an account together with its opening
	// income transaction atomically.
	CreateWithInitialDeposit(ctx context.Context, account *entity.Account, deposit *entity.Transaction) error

	// FindByIDAndUser retrieves an account by ID scoped to its owner.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Account, error)

	// FindByUser retrieves all accounts for a user ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error

	// UpdateWithAdjustment updates an account and records the balance
	// adjustment transaction atomically.
	UpdateWithAdjustment(ctx context.Context, account *entity.Account, adjustment *entity.Transaction) error

	// Delete removes an account from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountActivity counts the transactions and transfers referencing an account.
	CountActivity(ctx context.Context, id uuid.UUID) (*AccountActivity, error)
}
