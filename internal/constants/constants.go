package constants

// Click source constants
const (
	ClickSourceRedirect = "redirect"
	ClickSourcePostback = "postback"
)

// Geo header constants
const (
	GeoHeaderCloudflare = "cf-ipcountry"
	GeoHeaderGeneric    = "x-country"
	GeoHeaderResponse   = "X-Geo-Country"
	GeoCountryUnknown   = "unknown"
)

// Casino status constants
const (
	CasinoStatusActive   = "active"
	CasinoStatusInactive = "inactive"
)

// Bonus type constants
const (
	BonusTypeWelcome    = "welcome"
	BonusTypeNoDeposit  = "no_deposit"
	BonusTypeFreeSpins  = "free_spins"
	BonusTypeReload     = "reload"
	BonusTypeCashback   = "cashback"
	BonusTypeHighRoller = "high_roller"
)

// Game type constants
const (
	GameTypeSlot    = "slot"
	GameTypeTable   = "table"
	GameTypeLive    = "live"
	GameTypeJackpot = "jackpot"
	GameTypeScratch = "scratch"
	GameTypeCrash   = "crash"
)

// Game volatility constants
const (
	GameVolatilityLow    = "low"
	GameVolatilityMedium = "medium"
	GameVolatilityHigh   = "high"
)

// Review status constants
const (
	ReviewStatusPublished = "published"
	ReviewStatusDraft     = "draft"
)

// Queue constants
const (
	QueueDefault      = "default"
	TaskClickRecorded = "affiliate:click_recorded"
	TaskStatsRollup   = "affiliate:stats_rollup"
)

// Cache constants
const (
	RedisPrefixDefault = "cdx"
)

// Health component names
const (
	HealthComponentDatabase = "database"
	HealthComponentRedis    = "redis"
	HealthComponentTracker  = "tracker"
)
