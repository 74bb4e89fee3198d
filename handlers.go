package main

import (
	"log/slog"
	"net/http"
	"time"

	"fintrack/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// server carries the pieces every handler needs. It is constructed once in
// main (or a test) and never reaches into globals.
type server struct {
	cfg   Config
	store *store.Store
	log   *slog.Logger
}

func newServer(cfg Config, st *store.Store, log *slog.Logger) *server {
	return &server{cfg: cfg, store: st, log: log}
}

// routes builds the gin engine with the full API surface.
func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), s.recovery(), s.corsMiddleware())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	auth := r.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)
	auth.GET("/user", s.requireAuth(), s.getUser)

	income := r.Group("/income", s.requireAuth())
	income.POST("/add", s.addIncome)
	income.GET("/get", s.listIncomes)
	income.DELETE("/:id", s.deleteIncome)

	expense := r.Group("/expense", s.requireAuth())
	expense.POST("/add", s.addExpense)
	expense.GET("/get", s.listExpenses)
	expense.DELETE("/:id", s.deleteExpense)

	r.GET("/dashboard", s.requireAuth(), s.dashboard)

	analytics := r.Group("/analytics", s.requireAuth())
	analytics.GET("/monthly-comparison", s.monthlyComparison)
	analytics.GET("/category-breakdown", s.categoryBreakdown)
	analytics.GET("/income-breakdown", s.incomeBreakdown)

	return r
}

func (s *server) corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if s.cfg.ClientOrigin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{s.cfg.ClientOrigin}
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}

// serverError logs the detail server-side and answers with a generic 500.
// Internal detail never reaches the caller through this path.
func (s *server) serverError(c *gin.Context, msg string, err error) {
	s.log.Error(msg, "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error. Please try again later."})
}

// parseDate accepts RFC3339 timestamps and bare YYYY-MM-DD dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
