package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type monthlyBucketResponse struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

func TestMonthlyComparisonEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "Alice", "alice@example.com")

	now := time.Now()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonth := thisMonth.AddDate(0, -1, 0)

	addIncomeAPI(t, env, token, "salary", 500, thisMonth)
	addExpenseAPI(t, env, token, "food", 200, thisMonth)
	addIncomeAPI(t, env, token, "gig", 300, prevMonth)

	rec := env.do(t, http.MethodGet, "/analytics/monthly-comparison", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var buckets []monthlyBucketResponse
	decodeJSON(t, rec, &buckets)
	require.Len(t, buckets, 6)

	// oldest of the six first; short month names follow the calendar
	for i, b := range buckets {
		wantMonth := thisMonth.AddDate(0, i-5, 0).Month().String()[:3]
		assert.Equal(t, wantMonth, b.Month)
		assert.Equal(t, b.Income-b.Expense, b.Balance, "balance invariant")
	}

	last := buckets[5]
	assert.Equal(t, 500.0, last.Income)
	assert.Equal(t, 200.0, last.Expense)
	assert.Equal(t, 300.0, last.Balance)

	assert.Equal(t, 300.0, buckets[4].Income)
	assert.Equal(t, 0.0, buckets[4].Expense)

	for _, b := range buckets[:4] {
		assert.Equal(t, 0.0, b.Income)
		assert.Equal(t, 0.0, b.Expense)
		assert.Equal(t, 0.0, b.Balance)
	}
}

func TestCategoryBreakdownEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "Alice", "alice@example.com")

	now := time.Now()
	addExpenseAPI(t, env, token, "food", 100, now.AddDate(0, -8, 0)) // all-time, not windowed
	addExpenseAPI(t, env, token, "food", 100, now)
	addExpenseAPI(t, env, token, "rent", 300, now)

	rec := env.do(t, http.MethodGet, "/analytics/category-breakdown", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var entries []struct {
		Category string  `json:"category"`
		Total    float64 `json:"total"`
		Count    int64   `json:"count"`
	}
	decodeJSON(t, rec, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, "rent", entries[0].Category)
	assert.Equal(t, 300.0, entries[0].Total)
	assert.Equal(t, int64(1), entries[0].Count)
	assert.Equal(t, "food", entries[1].Category)
	assert.Equal(t, 200.0, entries[1].Total)
	assert.Equal(t, int64(2), entries[1].Count)
}

func TestIncomeBreakdownEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "Alice", "alice@example.com")

	now := time.Now()
	addIncomeAPI(t, env, token, "salary", 1000, now)
	addIncomeAPI(t, env, token, "gig", 150, now)
	addIncomeAPI(t, env, token, "gig", 50, now.AddDate(0, -2, 0))

	rec := env.do(t, http.MethodGet, "/analytics/income-breakdown", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var entries []struct {
		Source string  `json:"source"`
		Total  float64 `json:"total"`
		Count  int64   `json:"count"`
	}
	decodeJSON(t, rec, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, "salary", entries[0].Source)
	assert.Equal(t, 1000.0, entries[0].Total)
	assert.Equal(t, "gig", entries[1].Source)
	assert.Equal(t, 200.0, entries[1].Total)
	assert.Equal(t, int64(2), entries[1].Count)
}

func TestAnalyticsIsolatedPerUser(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.registerUser(t, "Alice", "alice@example.com")
	bobToken := env.registerUser(t, "Bob", "bob@example.com")

	addExpenseAPI(t, env, aliceToken, "food", 100, time.Now())

	rec := env.do(t, http.MethodGet, "/analytics/category-breakdown", nil, bobToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []any
	decodeJSON(t, rec, &entries)
	assert.Len(t, entries, 0)
}
