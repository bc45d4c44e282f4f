// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves a category by ID scoped to its owner.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories for a user, optionally filtered by type.
	FindByUser(ctx context.Context, userID uuid.UUID, categoryType *entity.CategoryType) ([]*entity.Category, error)

	// ExistsByNameAndType checks whether the user already has a category with
	// this name and type. excludeID skips one category, for rename checks.
	ExistsByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error)

	// GetOrCreateSystem returns the user's category with the given name and
	// type, creating it if missing. Safe under concurrent callers.
	GetOrCreateSystem(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, emoji string) (*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountTransactions counts the transactions referencing a category.
	CountTransactions(ctx context.Context, id uuid.UUID) (int64, error)

	// ListWithTotals retrieves the user's categories with their transaction
	// totals over the given window. Nil bounds mean unbounded.
	ListWithTotals(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]*entity.CategoryWithTotal, error)
}
