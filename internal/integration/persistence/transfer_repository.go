// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
	"github.com/dumpmycash/backend/internal/integration/persistence/model"
)

// transferRepository implements the adapter.TransferRepository interface.
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository instance.
func NewTransferRepository(db *gorm.DB) adapter.TransferRepository {
	return &transferRepository{
		db: db,
	}
}

// CreateWithBalances inserts a transfer and saves both adjusted account
// balances atomically.
func (r *transferRepository) CreateWithBalances(ctx context.Context, transfer *entity.Transfer, from, to *entity.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransferFromEntity(transfer)).Error; err != nil {
			return err
		}
		if err := tx.Save(model.AccountFromEntity(from)).Error; err != nil {
			return err
		}
		if err := tx.Save(model.AccountFromEntity(to)).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByIDAndUser retrieves a transfer by ID scoped to its owner.
func (r *transferRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Transfer, error) {
	var transferModel model.TransferModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transferModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransferNotFound
		}
		return nil, result.Error
	}
	return transferModel.ToEntity(), nil
}

// FindByUser retrieves the user's transfers with both accounts loaded,
// newest first, paginated.
func (r *transferRepository) FindByUser(ctx context.Context, userID uuid.UUID, pagination adapter.TransferPagination) (*adapter.TransferListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransferModel{}).
		Where("user_id = ?", userID)

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var transferModels []model.TransferModel
	result := query.
		Preload("FromAccount").
		Preload("ToAccount").
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&transferModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transfers := make([]*entity.TransferWithAccounts, len(transferModels))
	for i, tm := range transferModels {
		transfers[i] = tm.ToEntityWithAccounts()
	}

	return &adapter.TransferListResult{
		Transfers:  transfers,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// FindRecent retrieves the user's most recent transfers with accounts.
func (r *transferRepository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransferWithAccounts, error) {
	var transferModels []model.TransferModel
	result := r.db.WithContext(ctx).
		Preload("FromAccount").
		Preload("ToAccount").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transferModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transfers := make([]*entity.TransferWithAccounts, len(transferModels))
	for i, tm := range transferModels {
		transfers[i] = tm.ToEntityWithAccounts()
	}
	return transfers, nil
}

// ReverseWithBalances deletes a transfer, saves both restored account
// balances, and removes any legacy shadow transactions linked to the
// transfer, all atomically.
func (r *transferRepository) ReverseWithBalances(ctx context.Context, transfer *entity.Transfer, from, to *entity.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Transfers created under the legacy scheme carry shadow
		// transaction rows that must go with them.
		shadowIDs := make([]uuid.UUID, 0, 2)
		if transfer.FromTransactionID != nil {
			shadowIDs = append(shadowIDs, *transfer.FromTransactionID)
		}
		if transfer.ToTransactionID != nil {
			shadowIDs = append(shadowIDs, *transfer.ToTransactionID)
		}
		if len(shadowIDs) > 0 {
			if err := tx.Delete(&model.TransactionModel{}, "id IN ?", shadowIDs).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.TransferModel{}, "id = ?", transfer.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransferNotFound
		}

		if err := tx.Save(model.AccountFromEntity(from)).Error; err != nil {
			return err
		}
		if err := tx.Save(model.AccountFromEntity(to)).Error; err != nil {
			return err
		}
		return nil
	})
}

// CountAndSum aggregates transfer count and total amount over the given
// window.
func (r *transferRepository) CountAndSum(ctx context.Context, userID uuid.UUID, start, end *time.Time) (*adapter.TransferTotals, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransferModel{}).
		Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var row struct {
		Count  int64
		Amount decimal.Decimal
	}
	if err := query.Select("COUNT(*) as count, COALESCE(SUM(amount), 0) as amount").Scan(&row).Error; err != nil {
		return nil, err
	}

	return &adapter.TransferTotals{
		Count:  row.Count,
		Amount: row.Amount,
	}, nil
}

// TopPairs retrieves the most frequent directed account pairs with their
// transfer counts and summed amounts.
func (r *transferRepository) TopPairs(ctx context.Context, userID uuid.UUID, limit int) ([]*adapter.TransferPairStat, error) {
	var rows []struct {
		FromAccountID   uuid.UUID       `gorm:"column:from_account_id"`
		FromAccountName string          `gorm:"column:from_account_name"`
		ToAccountID     uuid.UUID       `gorm:"column:to_account_id"`
		ToAccountName   string          `gorm:"column:to_account_name"`
		Count           int64           `gorm:"column:count"`
		Amount          decimal.Decimal `gorm:"column:amount"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransferModel{}).
		Select(`transfers.from_account_id,
			from_accounts.name as from_account_name,
			transfers.to_account_id,
			to_accounts.name as to_account_name,
			COUNT(*) as count,
			COALESCE(SUM(transfers.amount), 0) as amount`).
		Joins("JOIN accounts from_accounts ON from_accounts.id = transfers.from_account_id").
		Joins("JOIN accounts to_accounts ON to_accounts.id = transfers.to_account_id").
		Where("transfers.user_id = ?", userID).
		Group("transfers.from_account_id, from_accounts.name, transfers.to_account_id, to_accounts.name").
		Order("count DESC, amount DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	pairs := make([]*adapter.TransferPairStat, len(rows))
	for i, row := range rows {
		pairs[i] = &adapter.TransferPairStat{
			FromAccountID:   row.FromAccountID,
			FromAccountName: row.FromAccountName,
			ToAccountID:     row.ToAccountID,
			ToAccountName:   row.ToAccountName,
			Count:           row.Count,
			Amount:          row.Amount,
		}
	}
	return pairs, nil
}
