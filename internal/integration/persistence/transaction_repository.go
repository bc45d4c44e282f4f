// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
	"github.com/dumpmycash/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateWithBalance inserts a transaction and saves the adjusted account
// balance atomically.
func (r *transactionRepository) CreateWithBalance(ctx context.Context, transaction *entity.Transaction, account *entity.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		if err := tx.Save(model.AccountFromEntity(account)).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByIDWithRefs retrieves a transaction with its account and category.
func (r *transactionRepository) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRefs, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Category").
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntityWithRefs(), nil
}

// applyFilter translates the adapter filter onto a transactions query. Type
// and Transfer-exclusion conditions live on the joined categories table
// because a transaction's sign comes from its category; search also joins
// accounts so it can match account names.
func applyFilter(query *gorm.DB, filter adapter.TransactionFilter) *gorm.DB {
	if filter.Type != nil || filter.ExcludeTransfers || filter.Search != "" {
		query = query.Joins("JOIN categories ON categories.id = transactions.category_id")
	}
	if filter.Search != "" {
		query = query.Joins("JOIN accounts ON accounts.id = transactions.account_id")
	}

	query = query.Where("transactions.user_id = ?", filter.UserID)

	if filter.AccountID != nil {
		query = query.Where("transactions.account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		query = query.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("transactions.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transactions.date <= ?", *filter.EndDate)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"(LOWER(transactions.description) LIKE ? OR LOWER(categories.name) LIKE ? OR LOWER(accounts.name) LIKE ?)",
			searchPattern, searchPattern, searchPattern,
		)
	}
	if filter.Type != nil {
		query = query.Where("categories.type = ?", string(*filter.Type))
	}
	if filter.ExcludeTransfers {
		query = query.Where("categories.name != ?", entity.TransferCategoryName)
	}

	return query
}

// FindByFilter retrieves transactions based on filter criteria with
// pagination, ordered by date descending then creation time descending.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter)

	// Get total count
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	// Calculate pagination
	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	// Fetch transactions with account and category preloaded
	var transactionModels []model.TransactionModel
	result := query.
		Preload("Account").
		Preload("Category").
		Order("transactions.date DESC, transactions.created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithRefs, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithRefs()
	}

	return &adapter.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   totalPages,
	}, nil
}

// GetTotals calculates income, expense and net totals for the filter.
func (r *transactionRepository) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	// Each sum forces its own type condition regardless of the caller's
	// type filter, so the totals always show both sides.
	sumByType := func(categoryType entity.CategoryType) (decimal.Decimal, error) {
		typedFilter := filter
		typedFilter.Type = &categoryType
		query := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), typedFilter)

		var row struct {
			Total decimal.Decimal
		}
		if err := query.Select("COALESCE(SUM(transactions.amount), 0) as total").Scan(&row).Error; err != nil {
			return decimal.Zero, err
		}
		return row.Total, nil
	}

	incomeTotal, err := sumByType(entity.CategoryTypeIncome)
	if err != nil {
		return nil, err
	}
	expenseTotal, err := sumByType(entity.CategoryTypeExpense)
	if err != nil {
		return nil, err
	}

	return &adapter.TransactionTotals{
		IncomeTotal:  incomeTotal,
		ExpenseTotal: expenseTotal,
		NetTotal:     incomeTotal.Sub(expenseTotal),
	}, nil
}

// UpdateWithBalances updates a transaction and saves every touched account
// balance atomically.
func (r *transactionRepository) UpdateWithBalances(ctx context.Context, transaction *entity.Transaction, accounts ...*entity.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		for _, account := range accounts {
			if err := tx.Save(model.AccountFromEntity(account)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteWithBalance deletes a transaction and saves the restored account
// balance atomically.
func (r *transactionRepository) DeleteWithBalance(ctx context.Context, id uuid.UUID, account *entity.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.TransactionModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		if err := tx.Save(model.AccountFromEntity(account)).Error; err != nil {
			return err
		}
		return nil
	})
}

// DeleteManyWithBalances deletes the given transactions and saves every
// restored account balance atomically. A missing ID rolls the whole batch
// back.
func (r *transactionRepository) DeleteManyWithBalances(ctx context.Context, ids []uuid.UUID, accounts ...*entity.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.TransactionModel{}, "id IN ?", ids)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(ids)) {
			return domainerror.ErrTransactionNotFound
		}
		for _, account := range accounts {
			if err := tx.Save(model.AccountFromEntity(account)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
