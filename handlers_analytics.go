package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// monthlyComparison reports summed income, expense and balance per calendar
// month for the six months ending now, oldest first.
func (s *server) monthlyComparison(c *gin.Context) {
	buckets, err := s.store.MonthlyComparison(c.Request.Context(), currentUser(c).ID, time.Now())
	if err != nil {
		s.serverError(c, "monthly comparison", err)
		return
	}
	out := make([]gin.H, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, gin.H{
			"month":   b.Month.String()[:3],
			"income":  b.Income,
			"expense": b.Expense,
			"balance": b.Balance(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// categoryBreakdown groups the user's expenses by category, largest total first.
func (s *server) categoryBreakdown(c *gin.Context) {
	entries, err := s.store.ExpenseBreakdown(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.serverError(c, "category breakdown", err)
		return
	}
	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{"category": e.Label, "total": e.Total, "count": e.Count})
	}
	c.JSON(http.StatusOK, out)
}

// incomeBreakdown groups the user's incomes by source, largest total first.
func (s *server) incomeBreakdown(c *gin.Context) {
	entries, err := s.store.IncomeBreakdown(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.serverError(c, "income breakdown", err)
		return
	}
	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{"source": e.Label, "total": e.Total, "count": e.Count})
	}
	c.JSON(http.StatusOK, out)
}
