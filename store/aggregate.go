package store

import (
	"context"
	"time"

	"fintrack/models"

	"github.com/shopspring/decimal"
)

// monthWindow is the number of calendar months covered by the monthly
// comparison, ending with the current month.
const monthWindow = 6

// MonthKey identifies a calendar month bucket. Records are bucketed by the
// year+month of their occurrence date, never by rolling 30-day windows.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthlyBucket is one month of the comparison window with summed amounts.
type MonthlyBucket struct {
	MonthKey
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Balance is the bucket's income minus its expense.
func (b MonthlyBucket) Balance() decimal.Decimal {
	return b.Income.Sub(b.Expense)
}

// BreakdownEntry is a per-label total over all of a user's records of one kind.
type BreakdownEntry struct {
	Label string
	Total decimal.Decimal
	Count int64
}

// MonthlyComparison sums a user's income and expense per calendar month for
// the monthWindow months ending with the month of now. Buckets come back in
// chronological order and months without records report zero sums. The window
// spans from the first instant of the oldest month through now, so future-dated
// records fall outside every bucket.
func (s *Store) MonthlyComparison(ctx context.Context, userID uint, now time.Time) ([]MonthlyBucket, error) {
	start := time.Date(now.Year(), now.Month()-(monthWindow-1), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]MonthlyBucket, 0, monthWindow)
	for i := 0; i < monthWindow; i++ {
		t := start.AddDate(0, i, 0)
		buckets = append(buckets, MonthlyBucket{
			MonthKey: MonthKey{Year: t.Year(), Month: t.Month()},
			Income:   decimal.Zero,
			Expense:  decimal.Zero,
		})
	}

	incomeSums, err := s.monthlyIncomeSums(ctx, userID, start, now)
	if err != nil {
		return nil, err
	}
	expenseSums, err := s.monthlyExpenseSums(ctx, userID, start, now)
	if err != nil {
		return nil, err
	}

	for i := range buckets {
		if total, ok := incomeSums[buckets[i].MonthKey]; ok {
			buckets[i].Income = total
		}
		if total, ok := expenseSums[buckets[i].MonthKey]; ok {
			buckets[i].Expense = total
		}
	}
	return buckets, nil
}

// monthlyIncomeSums fetches (date, amount) pairs inside the window and folds
// them into per-month totals. Bucketing happens here rather than in SQL so the
// grouping key stays a typed MonthKey and the query is identical across the
// postgres and sqlite dialects.
func (s *Store) monthlyIncomeSums(ctx context.Context, userID uint, start, end time.Time) (map[MonthKey]decimal.Decimal, error) {
	var rows []models.Income
	if err := s.db.WithContext(ctx).
		Select("date", "amount").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	sums := make(map[MonthKey]decimal.Decimal, monthWindow)
	for _, r := range rows {
		key := MonthKey{Year: r.Date.Year(), Month: r.Date.Month()}
		sums[key] = sums[key].Add(r.Amount)
	}
	return sums, nil
}

func (s *Store) monthlyExpenseSums(ctx context.Context, userID uint, start, end time.Time) (map[MonthKey]decimal.Decimal, error) {
	var rows []models.Expense
	if err := s.db.WithContext(ctx).
		Select("date", "amount").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	sums := make(map[MonthKey]decimal.Decimal, monthWindow)
	for _, r := range rows {
		key := MonthKey{Year: r.Date.Year(), Month: r.Date.Month()}
		sums[key] = sums[key].Add(r.Amount)
	}
	return sums, nil
}

// ExpenseBreakdown groups all of a user's expenses by category with summed
// totals and record counts, largest total first.
func (s *Store) ExpenseBreakdown(ctx context.Context, userID uint) ([]BreakdownEntry, error) {
	return s.breakdown(ctx, &models.Expense{}, "category", userID)
}

// IncomeBreakdown groups all of a user's incomes by source with summed totals
// and record counts, largest total first.
func (s *Store) IncomeBreakdown(ctx context.Context, userID uint) ([]BreakdownEntry, error) {
	return s.breakdown(ctx, &models.Income{}, "source", userID)
}

// breakdown runs the grouped sum in SQL. Equal totals order by label ascending
// so the result is deterministic.
func (s *Store) breakdown(ctx context.Context, model any, labelColumn string, userID uint) ([]BreakdownEntry, error) {
	entries := make([]BreakdownEntry, 0)
	err := s.db.WithContext(ctx).Model(model).
		Select(labelColumn + " AS label, SUM(amount) AS total, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group(labelColumn).
		Order("total DESC, label ASC").
		Scan(&entries).Error
	return entries, err
}

// TotalIncome sums every income the user ever recorded; zero when none exist.
func (s *Store) TotalIncome(ctx context.Context, userID uint) (decimal.Decimal, error) {
	return s.sumAll(ctx, &models.Income{}, userID)
}

// TotalExpense sums every expense the user ever recorded; zero when none exist.
func (s *Store) TotalExpense(ctx context.Context, userID uint) (decimal.Decimal, error) {
	return s.sumAll(ctx, &models.Expense{}, userID)
}

func (s *Store) sumAll(ctx context.Context, model any, userID uint) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := s.db.WithContext(ctx).Model(model).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&row).Error
	return row.Total, err
}

// RecentIncomes returns the user's newest incomes by occurrence date, capped
// at limit. Equal dates break by insertion order, newest first.
func (s *Store) RecentIncomes(ctx context.Context, userID uint, limit int) ([]models.Income, error) {
	items := make([]models.Income, 0, limit)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// RecentExpenses returns the user's newest expenses by occurrence date, capped
// at limit. Equal dates break by insertion order, newest first.
func (s *Store) RecentExpenses(ctx context.Context, userID uint, limit int) ([]models.Expense, error) {
	items := make([]models.Expense, 0, limit)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
