package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors Income with a category label instead of a source.
type Expense struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	UserID    uint            `gorm:"index;not null" json:"userId"`
	Category  string          `gorm:"size:255;not null" json:"category"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	Icon      string          `gorm:"size:64" json:"icon,omitempty"`
	Date      time.Time       `gorm:"index;not null" json:"date"`
}
