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

type incomeRequest struct {
	Source string           `json:"source"`
	Amount *decimal.Decimal `json:"amount"`
	Icon   string           `json:"icon"`
	Date   string           `json:"date"`
}

// addIncome records an income entry for the authenticated user. The occurrence
// date defaults to now when omitted.
func (s *server) addIncome(c *gin.Context) {
	user := currentUser(c)
	var req incomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter all fields"})
		return
	}
	req.Source = strings.TrimSpace(req.Source)
	if req.Source == "" || req.Amount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter all fields"})
		return
	}
	if req.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Amount must not be negative"})
		return
	}

	income := &models.Income{
		UserID: user.ID,
		Source: req.Source,
		Amount: *req.Amount,
		Icon:   req.Icon,
		Date:   time.Now(),
	}
	if req.Date != "" {
		t, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
			return
		}
		income.Date = t
	}

	if err := s.store.CreateIncome(c.Request.Context(), income); err != nil {
		s.serverError(c, "create income", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Income added successfully",
		"income":  income,
	})
}

func (s *server) listIncomes(c *gin.Context) {
	incomes, err := s.store.ListIncomes(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.serverError(c, "list incomes", err)
		return
	}
	c.JSON(http.StatusOK, incomes)
}

func (s *server) deleteIncome(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Income not found"})
		return
	}
	income, err := s.store.DeleteIncome(c.Request.Context(), currentUser(c).ID, uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Income not found"})
			return
		}
		s.serverError(c, "delete income", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Income deleted successfully",
		"income":  income,
	})
}
