package models

import (
	"time"

	"gorm.io/gorm"
)

// Bonus is a promotional offer attached to a casino.
type Bonus struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CasinoID    uint           `gorm:"not null;index" json:"casino_id"`
	Type        string         `gorm:"type:varchar(32);not null;index" json:"type"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Amount      *Money         `gorm:"type:decimal(12,2)" json:"amount"`
	Percentage  int            `json:"percentage"`
	FreeSpins   int            `json:"free_spins"`
	Wagering    int            `json:"wagering"` // wagering requirement multiplier
	Code        string         `gorm:"type:varchar(64)" json:"code"`
	ValidUntil  *time.Time     `json:"valid_until"`
	Exclusive   bool           `gorm:"not null;default:false" json:"exclusive"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Casino *Casino `gorm:"foreignKey:CasinoID" json:"casino,omitempty"`
}

// TableName sets the table name.
func (Bonus) TableName() string {
	return "bonuses"
}
