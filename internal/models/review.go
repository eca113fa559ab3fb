package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a reader review of a casino.
type Review struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CasinoID  uint           `gorm:"not null;index" json:"casino_id"`
	Author    string         `gorm:"type:varchar(100);not null" json:"author"`
	Rating    int            `gorm:"not null" json:"rating"` // 1..5
	Title     string         `gorm:"type:varchar(200)" json:"title"`
	Body      string         `gorm:"type:text" json:"body"`
	Status    string         `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Casino *Casino `gorm:"foreignKey:CasinoID" json:"casino,omitempty"`
}

// TableName sets the table name.
func (Review) TableName() string {
	return "reviews"
}
