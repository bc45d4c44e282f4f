// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dumpmycash/backend/internal/domain/entity"
	"github.com/dumpmycash/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory sqlite database migrated with the full
// schema. Each test gets its own named database so tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dbSQL, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.TransferModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() { _ = dbSQL.Close() })
	return db
}

// seedUser inserts a user row and returns its ID.
func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           id,
		Email:        fmt.Sprintf("%s@example.com", id),
		Username:     id.String()[:8],
		Name:         "Test User",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return id
}

// seedAccount inserts an account for the user and returns the entity.
func seedAccount(t *testing.T, db *gorm.DB, userID uuid.UUID, name, balance string) *entity.Account {
	t.Helper()

	account := entity.NewAccount(userID, name, mustDec(t, balance), "")
	if err := db.Create(model.AccountFromEntity(account)).Error; err != nil {
		t.Fatalf("failed to seed account %s: %v", name, err)
	}
	return account
}

// seedCategory inserts a category for the user and returns the entity.
func seedCategory(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()

	category := entity.NewCategory(userID, name, categoryType, "")
	if err := db.Create(model.CategoryFromEntity(category)).Error; err != nil {
		t.Fatalf("failed to seed category %s: %v", name, err)
	}
	return category
}

// seedTransaction inserts a transaction row and returns the entity.
func seedTransaction(t *testing.T, db *gorm.DB, userID uuid.UUID, account *entity.Account, category *entity.Category, amount string, date time.Time, description string) *entity.Transaction {
	t.Helper()

	txn := entity.NewTransaction(userID, account.ID, category.ID, mustDec(t, amount), date, description)
	if err := db.Create(model.TransactionFromEntity(txn)).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return txn
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func ctx() context.Context {
	return context.Background()
}
