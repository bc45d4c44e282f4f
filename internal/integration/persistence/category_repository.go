// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
	"github.com/dumpmycash/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCategoryAlreadyExists
		}
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a category by ID scoped to its owner.
func (r *categoryRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUser retrieves all categories for a user, optionally filtered by type.
func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID, categoryType *entity.CategoryType) ([]*entity.Category, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if categoryType != nil {
		query = query.Where("type = ?", string(*categoryType))
	}

	var categoryModels []model.CategoryModel
	result := query.Order("name ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// ExistsByNameAndType checks whether the user already has a category with
// this name and type. excludeID skips one category, for rename checks.
func (r *categoryRepository) ExistsByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ? AND name = ? AND type = ?", userID, name, string(categoryType))
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetOrCreateSystem returns the user's category with the given name and type,
// creating it if missing. A concurrent insert loses the race on the
// (user_id, name, type) unique index and refetches the winner's row, so the
// call is idempotent.
func (r *categoryRepository) GetOrCreateSystem(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, emoji string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ? AND type = ?", userID, name, string(categoryType)).
		First(&categoryModel)
	if result.Error == nil {
		return categoryModel.ToEntity(), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	category := entity.NewCategory(userID, name, categoryType, emoji)
	if err := r.db.WithContext(ctx).Create(model.CategoryFromEntity(category)).Error; err != nil {
		if isUniqueViolation(err) {
			refetch := r.db.WithContext(ctx).
				Where("user_id = ? AND name = ? AND type = ?", userID, name, string(categoryType)).
				First(&categoryModel)
			if refetch.Error != nil {
				return nil, refetch.Error
			}
			return categoryModel.ToEntity(), nil
		}
		return nil, err
	}
	return category, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCategoryAlreadyExists
		}
		return result.Error
	}
	return nil
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// CountTransactions counts the transactions referencing a category.
func (r *categoryRepository) CountTransactions(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("category_id = ?", id).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ListWithTotals retrieves the user's categories with their transaction
// totals over the given window.
func (r *categoryRepository) ListWithTotals(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]*entity.CategoryWithTotal, error) {
	categories, err := r.FindByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category_id, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var rows []struct {
		CategoryID uuid.UUID       `gorm:"column:category_id"`
		Total      decimal.Decimal `gorm:"column:total"`
	}
	if err := query.Group("category_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.CategoryID] = row.Total
	}

	result := make([]*entity.CategoryWithTotal, len(categories))
	for i, category := range categories {
		result[i] = &entity.CategoryWithTotal{
			Category: category,
			Total:    totals[category.ID],
		}
	}
	return result, nil
}

// isUniqueViolation reports whether the error is a unique-constraint failure
// from either the postgres or the sqlite driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
