package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a single income entry belonging to a user. Entries are immutable
// once created; changes happen by delete and re-create.
type Income struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	UserID    uint            `gorm:"index;not null" json:"userId"`
	Source    string          `gorm:"size:255;not null" json:"source"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	Icon      string          `gorm:"size:64" json:"icon,omitempty"`
	Date      time.Time       `gorm:"index;not null" json:"date"`
}
