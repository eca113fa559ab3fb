package models

import (
	"time"

	"gorm.io/gorm"
)

// Casino is a reviewed operator in the catalog. CampaignID links the
// catalog entry to its outbound tracker campaign.
type Casino struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Slug           string         `gorm:"uniqueIndex;not null" json:"slug"`
	Name           string         `gorm:"type:varchar(200);not null" json:"name"`
	LogoURL        string         `gorm:"type:varchar(500)" json:"logo_url"`
	Description    string         `gorm:"type:text" json:"description"`
	Rating         float64        `gorm:"not null;default:0;index" json:"rating"` // 0..10 editorial score
	CampaignID     string         `gorm:"type:varchar(64);index" json:"campaign_id"`
	Licenses       StringArray    `gorm:"type:json" json:"licenses"`
	PaymentMethods StringArray    `gorm:"type:json" json:"payment_methods"`
	Pros           StringArray    `gorm:"type:json" json:"pros"`
	Cons           StringArray    `gorm:"type:json" json:"cons"`
	MinDeposit     *Money         `gorm:"type:decimal(12,2)" json:"min_deposit"`
	WithdrawalTime string         `gorm:"type:varchar(100)" json:"withdrawal_time"`
	Established    int            `json:"established"`
	Status         string         `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	SortOrder      int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Bonuses []Bonus `gorm:"foreignKey:CasinoID" json:"bonuses,omitempty"`
}

// TableName sets the table name.
func (Casino) TableName() string {
	return "casinos"
}
