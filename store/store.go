package store

import (
	"context"
	"errors"
	"strings"

	"fintrack/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist under the caller's
// ownership scope. A record owned by someone else and a record that was never
// created are indistinguishable through this error.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint rejects a write.
var ErrDuplicate = errors.New("record already exists")

// Store wraps the database handle with owner-scoped queries. Every read and
// write on income/expense rows filters on the owning user id, so cross-user
// access is impossible below this layer.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateUser inserts a new user. A taken email yields ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateIncome(ctx context.Context, income *models.Income) error {
	return s.db.WithContext(ctx).Create(income).Error
}

// ListIncomes returns all of a user's incomes, most recent occurrence first.
func (s *Store) ListIncomes(ctx context.Context, userID uint) ([]models.Income, error) {
	items := make([]models.Income, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&items).Error
	return items, err
}

// DeleteIncome removes one income matched by id and owner and returns the
// removed record. No match yields ErrNotFound.
func (s *Store) DeleteIncome(ctx context.Context, userID, id uint) (*models.Income, error) {
	var item models.Income
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Income{}).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return s.db.WithContext(ctx).Create(expense).Error
}

// ListExpenses returns all of a user's expenses, most recent occurrence first.
func (s *Store) ListExpenses(ctx context.Context, userID uint) ([]models.Expense, error) {
	items := make([]models.Expense, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&items).Error
	return items, err
}

// DeleteExpense removes one expense matched by id and owner and returns the
// removed record. No match yields ErrNotFound.
func (s *Store) DeleteExpense(ctx context.Context, userID, id uint) (*models.Expense, error) {
	var item models.Expense
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Expense{}).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
