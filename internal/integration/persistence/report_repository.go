// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dumpmycash/backend/internal/application/usecase/report"
	"github.com/dumpmycash/backend/internal/domain/entity"
	"github.com/dumpmycash/backend/internal/integration/persistence/model"
)

// reportRepository implements the report.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// reportBase scopes a transactions query to the user and window, joins the
// category for type information, and drops legacy Transfer-tagged rows.
func (r *reportRepository) reportBase(ctx context.Context, userID uuid.UUID, start, end *time.Time) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Where("categories.name != ?", entity.TransferCategoryName)
	if start != nil {
		query = query.Where("transactions.date >= ?", *start)
	}
	if end != nil {
		query = query.Where("transactions.date <= ?", *end)
	}
	return query
}

// GetTotalsByType returns the summed transaction amounts per category type
// within the window.
func (r *reportRepository) GetTotalsByType(ctx context.Context, userID uuid.UUID, start, end *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var rows []struct {
		Type  string          `gorm:"column:type"`
		Total decimal.Decimal `gorm:"column:total"`
	}
	err := r.reportBase(ctx, userID, start, end).
		Select("categories.type as type, COALESCE(SUM(transactions.amount), 0) as total").
		Group("categories.type").
		Find(&rows).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	income, expenses := decimal.Zero, decimal.Zero
	for _, row := range rows {
		switch entity.CategoryType(row.Type) {
		case entity.CategoryTypeIncome:
			income = row.Total
		case entity.CategoryTypeExpense:
			expenses = row.Total
		}
	}
	return income, expenses, nil
}

// GetCategoryBreakdown returns per-category sums for one category type within
// the window, sorted by sum descending, plus the type's total.
func (r *reportRepository) GetCategoryBreakdown(
	ctx context.Context,
	userID uuid.UUID,
	categoryType entity.CategoryType,
	start, end *time.Time,
) ([]report.RawCategoryTotal, decimal.Decimal, error) {
	var rows []struct {
		CategoryID    uuid.UUID       `gorm:"column:category_id"`
		CategoryName  string          `gorm:"column:category_name"`
		CategoryEmoji string          `gorm:"column:category_emoji"`
		Amount        decimal.Decimal `gorm:"column:amount"`
		Count         int             `gorm:"column:count"`
	}

	err := r.reportBase(ctx, userID, start, end).
		Where("categories.type = ?", string(categoryType)).
		Select(`transactions.category_id,
			categories.name as category_name,
			categories.emoji as category_emoji,
			COALESCE(SUM(transactions.amount), 0) as amount,
			COUNT(*) as count`).
		Group("transactions.category_id, categories.name, categories.emoji").
		Order("amount DESC").
		Find(&rows).Error
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	breakdown := make([]report.RawCategoryTotal, len(rows))
	for i, row := range rows {
		breakdown[i] = report.RawCategoryTotal{
			CategoryID:       row.CategoryID,
			CategoryName:     row.CategoryName,
			CategoryEmoji:    row.CategoryEmoji,
			Amount:           row.Amount,
			TransactionCount: row.Count,
		}
		total = total.Add(row.Amount)
	}
	return breakdown, total, nil
}

// signedRow is the minimal projection the in-process aggregations work on.
type signedRow struct {
	Date   time.Time       `gorm:"column:date"`
	Type   string          `gorm:"column:type"`
	Amount decimal.Decimal `gorm:"column:amount"`
}

// fetchSigned loads (date, type, amount) rows for the window. Calendar
// bucketing happens in Go; SQL date-truncation syntax differs between the
// postgres and sqlite drivers this repository runs on.
func (r *reportRepository) fetchSigned(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]signedRow, error) {
	var rows []signedRow
	err := r.reportBase(ctx, userID, &start, &end).
		Select("transactions.date as date, categories.type as type, transactions.amount as amount").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetMonthlyTotals returns income/expense sums grouped by calendar month over
// the window.
func (r *reportRepository) GetMonthlyTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]report.RawMonthlyTotal, error) {
	rows, err := r.fetchSigned(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	buckets := make(map[monthKey]*report.RawMonthlyTotal)
	for _, row := range rows {
		key := monthKey{row.Date.Year(), row.Date.Month()}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &report.RawMonthlyTotal{
				Year:     key.year,
				Month:    key.month,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[key] = bucket
		}
		if entity.CategoryType(row.Type) == entity.CategoryTypeIncome {
			bucket.Income = bucket.Income.Add(row.Amount)
		} else {
			bucket.Expenses = bucket.Expenses.Add(row.Amount)
		}
	}

	totals := make([]report.RawMonthlyTotal, 0, len(buckets))
	for _, bucket := range buckets {
		totals = append(totals, *bucket)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Month < totals[j].Month
	})
	return totals, nil
}

// GetDailyActivity returns per-day income/expense sums over the window.
func (r *reportRepository) GetDailyActivity(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]report.RawDailyActivity, error) {
	rows, err := r.fetchSigned(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]*report.RawDailyActivity)
	for _, row := range rows {
		day := time.Date(row.Date.Year(), row.Date.Month(), row.Date.Day(), 0, 0, 0, 0, time.UTC)
		bucket, ok := buckets[day]
		if !ok {
			bucket = &report.RawDailyActivity{
				Day:      day,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[day] = bucket
		}
		if entity.CategoryType(row.Type) == entity.CategoryTypeIncome {
			bucket.Income = bucket.Income.Add(row.Amount)
		} else {
			bucket.Expenses = bucket.Expenses.Add(row.Amount)
		}
		bucket.TransactionCount++
	}

	days := make([]report.RawDailyActivity, 0, len(buckets))
	for _, bucket := range buckets {
		days = append(days, *bucket)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Before(days[j].Day)
	})
	return days, nil
}

// GetRecentTransactions returns the user's newest transactions with account
// and category loaded.
func (r *reportRepository) GetRecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithRefs, error) {
	subquery := r.db.
		Model(&model.CategoryModel{}).
		Select("id").
		Where("name = ?", entity.TransferCategoryName)

	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Category").
		Where("user_id = ?", userID).
		Where("category_id NOT IN (?)", subquery).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithRefs, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithRefs()
	}
	return transactions, nil
}
