package main

import (
	"net/http"
	"sort"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// recentLimit caps the recent-transaction list on the dashboard.
const recentLimit = 5

// transaction is an income or expense entry tagged with its kind so the
// consumer can render polarity and label.
type transaction struct {
	Type     string          `json:"type"`
	ID       uint            `json:"id"`
	Source   string          `json:"source,omitempty"`
	Category string          `json:"category,omitempty"`
	Icon     string          `json:"icon,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
}

// dashboard composes all-time totals with the merged recent transactions.
// The four queries are independent, so they run under one errgroup.
func (s *server) dashboard(c *gin.Context) {
	userID := currentUser(c).ID

	var (
		totalIncome  decimal.Decimal
		totalExpense decimal.Decimal
		incomes      []models.Income
		expenses     []models.Expense
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		totalIncome, err = s.store.TotalIncome(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		totalExpense, err = s.store.TotalExpense(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		incomes, err = s.store.RecentIncomes(ctx, userID, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.store.RecentExpenses(ctx, userID, recentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.serverError(c, "dashboard query", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBalance":       totalIncome.Sub(totalExpense),
		"totalIncome":        totalIncome,
		"totalExpense":       totalExpense,
		"recentTransactions": mergeRecent(incomes, expenses),
	})
}

// mergeRecent merges the newest recentLimit entries of each kind and keeps the
// newest recentLimit overall. Each kind contributes its own top slice, so with
// exactly two kinds the candidate pool always contains the true overall top
// recentLimit. A third transaction kind must grow the pool instead of reusing
// this merge as-is.
func mergeRecent(incomes []models.Income, expenses []models.Expense) []transaction {
	merged := make([]transaction, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		merged = append(merged, transaction{
			Type:   "income",
			ID:     in.ID,
			Source: in.Source,
			Icon:   in.Icon,
			Amount: in.Amount,
			Date:   in.Date,
		})
	}
	for _, ex := range expenses {
		merged = append(merged, transaction{
			Type:     "expense",
			ID:       ex.ID,
			Category: ex.Category,
			Icon:     ex.Icon,
			Amount:   ex.Amount,
			Date:     ex.Date,
		})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	if len(merged) > recentLimit {
		merged = merged[:recentLimit]
	}
	return merged
}
