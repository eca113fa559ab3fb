package models

import (
	"time"

	"gorm.io/gorm"
)

// Game is a catalog entry for a casino game.
type Game struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Provider    string         `gorm:"type:varchar(100);index" json:"provider"`
	Type        string         `gorm:"type:varchar(32);index" json:"type"`
	RTP         float64        `json:"rtp"` // return to player, percent
	Volatility  string         `gorm:"type:varchar(16)" json:"volatility"`
	ThumbURL    string         `gorm:"type:varchar(500)" json:"thumb_url"`
	Description string         `gorm:"type:text" json:"description"`
	CategoryID  *uint          `gorm:"index" json:"category_id"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Game) TableName() string {
	return "games"
}
