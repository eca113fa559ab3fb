package models

import "time"

// AffiliateClickEvent is one recorded interaction with an affiliate
// campaign. Rows are append-only: a postback confirmation inserts a new
// event rather than mutating the original click.
type AffiliateClickEvent struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	CampaignID   string     `gorm:"type:varchar(64);not null;index" json:"campaign_id"`
	ClickID      string     `gorm:"type:varchar(128);index" json:"click_id"`
	Source       string     `gorm:"type:varchar(32);index" json:"source"` // redirect / postback
	UserAgent    string     `gorm:"type:varchar(1024)" json:"user_agent"`
	Referer      string     `gorm:"type:varchar(1024)" json:"referer"`
	IPAddress    string     `gorm:"type:varchar(64)" json:"ip_address"`
	Country      string     `gorm:"type:varchar(8);index" json:"country"`
	Converted    bool       `gorm:"not null;default:false;index" json:"converted"`
	ConversionAt *time.Time `json:"conversion_at"`
	Revenue      *Money     `gorm:"type:decimal(12,2)" json:"revenue"`
	CreatedAt    time.Time  `gorm:"index;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName sets the table name.
func (AffiliateClickEvent) TableName() string {
	return "affiliate_click_events"
}
