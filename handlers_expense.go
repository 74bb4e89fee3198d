package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/models"
	"fintrack/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type expenseRequest struct {
	Category string           `json:"category"`
	Amount   *decimal.Decimal `json:"amount"`
	Icon     string           `json:"icon"`
	Date     string           `json:"date"`
}

// addExpense records an expense entry for the authenticated user. The
// occurrence date defaults to now when omitted.
func (s *server) addExpense(c *gin.Context) {
	user := currentUser(c)
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter all required fields"})
		return
	}
	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" || req.Amount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter all required fields"})
		return
	}
	if req.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Amount must not be negative"})
		return
	}

	expense := &models.Expense{
		UserID:   user.ID,
		Category: req.Category,
		Amount:   *req.Amount,
		Icon:     req.Icon,
		Date:     time.Now(),
	}
	if req.Date != "" {
		t, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
			return
		}
		expense.Date = t
	}

	if err := s.store.CreateExpense(c.Request.Context(), expense); err != nil {
		s.serverError(c, "create expense", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense added successfully",
		"expense": expense,
	})
}

func (s *server) listExpenses(c *gin.Context) {
	expenses, err := s.store.ListExpenses(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.serverError(c, "list expenses", err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (s *server) deleteExpense(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
		return
	}
	expense, err := s.store.DeleteExpense(c.Request.Context(), currentUser(c).ID, uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
			return
		}
		s.serverError(c, "delete expense", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Expense deleted successfully",
		"expense": expense,
	})
}
