// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create stores a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID loads a user by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail loads a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername reports whether the username is already taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Update saves changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user and every row they own (transfers,
	// transactions, categories, accounts, refresh tokens) atomically.
	Delete(ctx context.Context, id uuid.UUID) error
}
