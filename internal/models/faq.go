package models

import (
	"time"

	"gorm.io/gorm"
)

// FAQ is a question/answer entry shown on content pages.
type FAQ struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Question  string         `gorm:"type:varchar(500);not null" json:"question"`
	Answer    string         `gorm:"type:text;not null" json:"answer"`
	Topic     string         `gorm:"type:varchar(100);index" json:"topic"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (FAQ) TableName() string {
	return "faqs"
}
