// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
	"github.com/dumpmycash/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateWithInitialDeposit creates an account together with its opening
// income transaction atomically.
func (r *accountRepository) CreateWithInitialDeposit(ctx context.Context, account *entity.Account, deposit *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.AccountFromEntity(account)).Error; err != nil {
			return err
		}
		if err := tx.Create(model.TransactionFromEntity(deposit)).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByIDAndUser retrieves an account by ID scoped to its owner.
func (r *accountRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByUser retrieves all accounts for a user ordered by name.
func (r *accountRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// Update updates an existing account in the database.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Save(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateWithAdjustment updates an account and records the balance adjustment
// transaction atomically.
func (r *accountRepository) UpdateWithAdjustment(ctx context.Context, account *entity.Account, adjustment *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.AccountFromEntity(account)).Error; err != nil {
			return err
		}
		if err := tx.Create(model.TransactionFromEntity(adjustment)).Error; err != nil {
			return err
		}
		return nil
	})
}

// Delete removes an account from the database.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// CountActivity counts the transactions and transfers referencing an account.
func (r *accountRepository) CountActivity(ctx context.Context, id uuid.UUID) (*adapter.AccountActivity, error) {
	var activity adapter.AccountActivity

	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("account_id = ?", id).
		Count(&activity.TransactionCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&model.TransferModel{}).
		Where("from_account_id = ? OR to_account_id = ?", id, id).
		Count(&activity.TransferCount).Error; err != nil {
		return nil, err
	}

	return &activity, nil
}
