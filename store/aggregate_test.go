package store

import (
	"context"
	"testing"
	"time"

	"fintrack/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, st *Store, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test", Email: email, PasswordHash: []byte("x")}
	require.NoError(t, st.CreateUser(context.Background(), user))
	return user
}

func seedIncome(t *testing.T, st *Store, userID uint, source string, amount int64, date time.Time) {
	t.Helper()
	require.NoError(t, st.CreateIncome(context.Background(), &models.Income{
		UserID: userID, Source: source, Amount: decimal.NewFromInt(amount), Date: date,
	}))
}

func seedExpense(t *testing.T, st *Store, userID uint, category string, amount int64, date time.Time) {
	t.Helper()
	require.NoError(t, st.CreateExpense(context.Background(), &models.Expense{
		UserID: userID, Category: category, Amount: decimal.NewFromInt(amount), Date: date,
	}))
}

func TestMonthlyComparison(t *testing.T) {
	st := New(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, st, "monthly@example.com")

	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	windowStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	seedIncome(t, st, user.ID, "salary", 500, now.AddDate(0, 0, -2))            // Aug
	seedIncome(t, st, user.ID, "gig", 300, windowStart.AddDate(0, 0, 9))       // Mar 10
	seedIncome(t, st, user.ID, "old", 100, windowStart.AddDate(0, 0, -1))      // Feb 28, before window
	seedIncome(t, st, user.ID, "future", 999, now.Add(time.Hour))              // after now, excluded
	seedExpense(t, st, user.ID, "food", 200, now.AddDate(0, 0, -1))            // Aug
	seedExpense(t, st, user.ID, "travel", 50, time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC))

	buckets, err := st.MonthlyComparison(ctx, user.ID, now)
	require.NoError(t, err)
	require.Len(t, buckets, 6)

	wantMonths := []time.Month{time.March, time.April, time.May, time.June, time.July, time.August}
	for i, b := range buckets {
		assert.Equal(t, 2026, b.Year)
		assert.Equal(t, wantMonths[i], b.Month, "buckets must be chronological")
		assert.True(t, b.Balance().Equal(b.Income.Sub(b.Expense)), "balance invariant per bucket")
	}

	assert.True(t, buckets[0].Income.Equal(decimal.NewFromInt(300)), "March income, got %s", buckets[0].Income)
	assert.True(t, buckets[0].Expense.IsZero())
	assert.True(t, buckets[3].Expense.Equal(decimal.NewFromInt(50)), "June expense")
	assert.True(t, buckets[5].Income.Equal(decimal.NewFromInt(500)), "August income excludes the future entry")
	assert.True(t, buckets[5].Expense.Equal(decimal.NewFromInt(200)))
	assert.True(t, buckets[5].Balance().Equal(decimal.NewFromInt(300)))

	// months with no records report zero on both sides
	for _, i := range []int{1, 2, 4} {
		assert.True(t, buckets[i].Income.IsZero())
		assert.True(t, buckets[i].Expense.IsZero())
	}
}

func TestMonthlyComparisonEmptyUser(t *testing.T) {
	st := New(newTestDB(t))
	user := seedUser(t, st, "empty@example.com")

	buckets, err := st.MonthlyComparison(context.Background(), user.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, buckets, 6)
	for _, b := range buckets {
		assert.True(t, b.Income.IsZero())
		assert.True(t, b.Expense.IsZero())
		assert.True(t, b.Balance().IsZero())
	}
}

func TestExpenseBreakdown(t *testing.T) {
	st := New(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, st, "breakdown@example.com")
	other := seedUser(t, st, "other@example.com")

	now := time.Now()
	seedExpense(t, st, user.ID, "food", 100, now.AddDate(0, -3, 0))
	seedExpense(t, st, user.ID, "food", 200, now)
	seedExpense(t, st, user.ID, "rent", 500, now)
	seedExpense(t, st, user.ID, "coffee", 300, now.AddDate(-1, 0, 0)) // all-time, not windowed
	seedExpense(t, st, other.ID, "food", 9999, now)

	entries, err := st.ExpenseBreakdown(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// rent 500, then the 300-tie broken by label ascending: coffee before food
	assert.Equal(t, "rent", entries[0].Label)
	assert.True(t, entries[0].Total.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, int64(1), entries[0].Count)
	assert.Equal(t, "coffee", entries[1].Label)
	assert.Equal(t, "food", entries[2].Label)
	assert.True(t, entries[2].Total.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, int64(2), entries[2].Count)

	// sum of per-category totals equals the all-time expense total
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Total)
	}
	total, err := st.TotalExpense(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(total), "breakdown totals must sum to the all-time total")
}

func TestIncomeBreakdown(t *testing.T) {
	st := New(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, st, "sources@example.com")

	now := time.Now()
	seedIncome(t, st, user.ID, "salary", 1000, now)
	seedIncome(t, st, user.ID, "gig", 150, now)
	seedIncome(t, st, user.ID, "gig", 50, now.AddDate(0, -1, 0))

	entries, err := st.IncomeBreakdown(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "salary", entries[0].Label)
	assert.True(t, entries[0].Total.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "gig", entries[1].Label)
	assert.True(t, entries[1].Total.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, int64(2), entries[1].Count)
}

func TestTotalsEmptyUser(t *testing.T) {
	st := New(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, st, "nototals@example.com")

	income, err := st.TotalIncome(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, income.IsZero())

	expense, err := st.TotalExpense(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, expense.IsZero())
}

func TestRecentLimitAndOrder(t *testing.T) {
	st := New(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, st, "recent@example.com")

	base := time.Now().AddDate(0, 0, -10)
	for i := 0; i < 7; i++ {
		seedIncome(t, st, user.ID, "s", int64(i+1), base.AddDate(0, 0, i))
	}

	items, err := st.RecentIncomes(ctx, user.ID, 5)
	require.NoError(t, err)
	require.Len(t, items, 5)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Date.After(items[i-1].Date), "dates must be non-increasing")
	}
	assert.True(t, items[0].Amount.Equal(decimal.NewFromInt(7)), "newest entry first")
}
