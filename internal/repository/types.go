package repository

import "time"

// ClickEventListFilter filters affiliate click event queries.
type ClickEventListFilter struct {
	Page        int
	PageSize    int
	CampaignID  string
	ClickID     string
	Source      string
	Country     string
	Converted   *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CasinoListFilter filters casino catalog queries.
type CasinoListFilter struct {
	Page       int
	PageSize   int
	Search     string
	MinRating  float64
	OnlyActive bool
	WithBonus  bool
}

// BonusListFilter filters bonus catalog queries.
type BonusListFilter struct {
	Page          int
	PageSize      int
	CasinoID      uint
	Type          string
	OnlyExclusive bool
	OnlyValid     bool
}

// GameListFilter filters game catalog queries.
type GameListFilter struct {
	Page       int
	PageSize   int
	Search     string
	Provider   string
	Type       string
	CategoryID uint
}

// ReviewListFilter filters reader review queries.
type ReviewListFilter struct {
	Page          int
	PageSize      int
	CasinoID      uint
	OnlyPublished bool
}

// FAQListFilter filters FAQ queries.
type FAQListFilter struct {
	Page     int
	PageSize int
	Topic    string
}
