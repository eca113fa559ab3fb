package main

import (
	"fmt"
	"time"

	"github.com/casinodex-next/internal/config"
	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/logger"
	"github.com/casinodex-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{Slug: "slots", Name: "Slots", SortOrder: 300},
		{Slug: "table-games", Name: "Table Games", SortOrder: 200},
		{Slug: "live-casino", Name: "Live Casino", SortOrder: 100},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"slots", "table-games", "live-casino"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}
	slotsID := categoryIDs["slots"]
	tableID := categoryIDs["table-games"]
	liveID := categoryIDs["live-casino"]

	minDeposit10 := money(decimal.NewFromInt(10))
	minDeposit20 := money(decimal.NewFromInt(20))
	minDeposit25 := money(decimal.NewFromInt(25))

	casinos := []models.Casino{
		{
			Slug:           "lucky-spin",
			Name:           "Lucky Spin Casino",
			LogoURL:        "https://cdn.casinodex.example/logos/lucky-spin.png",
			Description:    "Large slot catalog with fast crypto withdrawals and a generous welcome package.",
			Rating:         8.7,
			CampaignID:     "1001",
			Licenses:       models.StringArray([]string{"Curacao"}),
			PaymentMethods: models.StringArray([]string{"Visa", "Mastercard", "Bitcoin", "Skrill"}),
			Pros:           models.StringArray([]string{"4000+ slots", "Instant crypto payouts", "24/7 live chat"}),
			Cons:           models.StringArray([]string{"No phone support"}),
			MinDeposit:     minDeposit10,
			WithdrawalTime: "0-24 hours",
			Established:    2019,
			Status:         constants.CasinoStatusActive,
			SortOrder:      300,
		},
		{
			Slug:           "royal-ace",
			Name:           "Royal Ace",
			LogoURL:        "https://cdn.casinodex.example/logos/royal-ace.png",
			Description:    "Classic table game destination with high-limit rooms and weekly cashback.",
			Rating:         8.2,
			CampaignID:     "1002",
			Licenses:       models.StringArray([]string{"Malta", "Curacao"}),
			PaymentMethods: models.StringArray([]string{"Visa", "Neteller", "Bank transfer"}),
			Pros:           models.StringArray([]string{"High table limits", "10% weekly cashback"}),
			Cons:           models.StringArray([]string{"Slower bank withdrawals", "Smaller slot selection"}),
			MinDeposit:     minDeposit25,
			WithdrawalTime: "1-3 days",
			Established:    2015,
			Status:         constants.CasinoStatusActive,
			SortOrder:      200,
		},
		{
			Slug:           "neon-city",
			Name:           "Neon City",
			LogoURL:        "https://cdn.casinodex.example/logos/neon-city.png",
			Description:    "Live-dealer focused site with exclusive game show tables.",
			Rating:         7.9,
			CampaignID:     "1003",
			Licenses:       models.StringArray([]string{"Curacao"}),
			PaymentMethods: models.StringArray([]string{"Visa", "Bitcoin", "Ethereum"}),
			Pros:           models.StringArray([]string{"Exclusive live tables", "Low minimum deposit"}),
			Cons:           models.StringArray([]string{"No sportsbook"}),
			MinDeposit:     minDeposit20,
			WithdrawalTime: "0-48 hours",
			Established:    2021,
			Status:         constants.CasinoStatusActive,
			SortOrder:      100,
		},
		{
			Slug:        "retired-palace",
			Name:        "Retired Palace",
			Description: "Kept for historical reviews, no longer recommended.",
			Rating:      5.1,
			Status:      constants.CasinoStatusInactive,
		},
	}

	for _, casino := range casinos {
		var existing models.Casino
		if err := models.DB.Where("slug = ?", casino.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&casino).Error; err != nil {
				stdLog.Printf("Failed to create casino %s: %v", casino.Slug, err)
			} else {
				stdLog.Printf("Created casino: %s", casino.Slug)
			}
		} else {
			existing.Name = casino.Name
			existing.LogoURL = casino.LogoURL
			existing.Description = casino.Description
			existing.Rating = casino.Rating
			existing.CampaignID = casino.CampaignID
			existing.Licenses = casino.Licenses
			existing.PaymentMethods = casino.PaymentMethods
			existing.Pros = casino.Pros
			existing.Cons = casino.Cons
			existing.MinDeposit = casino.MinDeposit
			existing.WithdrawalTime = casino.WithdrawalTime
			existing.Established = casino.Established
			existing.Status = casino.Status
			existing.SortOrder = casino.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update casino %s: %v", casino.Slug, err)
			} else {
				stdLog.Printf("Updated casino: %s", casino.Slug)
			}
		}
	}

	casinoIDs := map[string]uint{}
	var casinoList []models.Casino
	if err := models.DB.Where("slug IN ?", []string{"lucky-spin", "royal-ace", "neon-city"}).Find(&casinoList).Error; err != nil {
		stdLog.Printf("Failed to load casinos: %v", err)
	}
	for _, casino := range casinoList {
		casinoIDs[casino.Slug] = casino.ID
	}

	now := time.Now()
	welcomeValidUntil := now.AddDate(0, 3, 0)
	spinsValidUntil := now.AddDate(0, 1, 0)

	bonus200 := money(decimal.NewFromInt(200))
	bonus500 := money(decimal.NewFromInt(500))

	bonuses := []models.Bonus{
		{
			CasinoID:    casinoIDs["lucky-spin"],
			Type:        constants.BonusTypeWelcome,
			Title:       "100% up to $200 + 50 Free Spins",
			Description: "First deposit match plus free spins on the featured slot of the month.",
			Amount:      bonus200,
			Percentage:  100,
			FreeSpins:   50,
			Wagering:    35,
			Code:        "LUCKY100",
			ValidUntil:  &welcomeValidUntil,
			Exclusive:   true,
			SortOrder:   300,
		},
		{
			CasinoID:    casinoIDs["lucky-spin"],
			Type:        constants.BonusTypeFreeSpins,
			Title:       "50 No-Wager Free Spins",
			Description: "Weekend reload spins with no wagering requirement.",
			FreeSpins:   50,
			ValidUntil:  &spinsValidUntil,
			SortOrder:   200,
		},
		{
			CasinoID:    casinoIDs["royal-ace"],
			Type:        constants.BonusTypeHighRoller,
			Title:       "High Roller: 50% up to $500",
			Description: "For deposits of $200 or more, table games included.",
			Amount:      bonus500,
			Percentage:  50,
			Wagering:    25,
			Code:        "ROYAL500",
			SortOrder:   300,
		},
		{
			CasinoID:    casinoIDs["neon-city"],
			Type:        constants.BonusTypeCashback,
			Title:       "15% Live Casino Cashback",
			Description: "Weekly cashback on live-dealer losses, credited every Monday.",
			Percentage:  15,
			Wagering:    1,
			SortOrder:   300,
		},
	}

	for _, bonus := range bonuses {
		if bonus.CasinoID == 0 {
			stdLog.Printf("Skip bonus %q: casino missing", bonus.Title)
			continue
		}
		var existing models.Bonus
		if err := models.DB.Where("casino_id = ? AND title = ?", bonus.CasinoID, bonus.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&bonus).Error; err != nil {
				stdLog.Printf("Failed to create bonus %q: %v", bonus.Title, err)
			} else {
				stdLog.Printf("Created bonus: %s", bonus.Title)
			}
		} else {
			stdLog.Printf("Bonus already exists: %s", bonus.Title)
		}
	}

	games := []models.Game{
		{
			Slug:        "gates-of-fortune",
			Title:       "Gates of Fortune",
			Provider:    "Pragmatic Play",
			Type:        constants.GameTypeSlot,
			RTP:         96.5,
			Volatility:  constants.GameVolatilityHigh,
			ThumbURL:    "https://cdn.casinodex.example/games/gates-of-fortune.jpg",
			Description: "Tumbling reels with multipliers up to 500x.",
			CategoryID:  optionalUint(slotsID),
			SortOrder:   300,
		},
		{
			Slug:        "mega-jackpot-wheel",
			Title:       "Mega Jackpot Wheel",
			Provider:    "NetEnt",
			Type:        constants.GameTypeJackpot,
			RTP:         94.2,
			Volatility:  constants.GameVolatilityHigh,
			ThumbURL:    "https://cdn.casinodex.example/games/mega-jackpot-wheel.jpg",
			Description: "Progressive jackpot slot with three pooled prize tiers.",
			CategoryID:  optionalUint(slotsID),
			SortOrder:   250,
		},
		{
			Slug:        "european-blackjack",
			Title:       "European Blackjack",
			Provider:    "Evolution",
			Type:        constants.GameTypeTable,
			RTP:         99.4,
			Volatility:  constants.GameVolatilityLow,
			ThumbURL:    "https://cdn.casinodex.example/games/european-blackjack.jpg",
			Description: "Classic two-deck blackjack with late surrender.",
			CategoryID:  optionalUint(tableID),
			SortOrder:   200,
		},
		{
			Slug:        "crazy-time-live",
			Title:       "Crazy Time Live",
			Provider:    "Evolution",
			Type:        constants.GameTypeLive,
			RTP:         96.1,
			Volatility:  constants.GameVolatilityMedium,
			ThumbURL:    "https://cdn.casinodex.example/games/crazy-time-live.jpg",
			Description: "Live game show wheel with four bonus rounds.",
			CategoryID:  optionalUint(liveID),
			SortOrder:   150,
		},
	}

	for _, game := range games {
		var existing models.Game
		if err := models.DB.Where("slug = ?", game.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&game).Error; err != nil {
				stdLog.Printf("Failed to create game %s: %v", game.Slug, err)
			} else {
				stdLog.Printf("Created game: %s", game.Slug)
			}
		} else {
			stdLog.Printf("Game already exists: %s", game.Slug)
		}
	}

	reviews := []models.Review{
		{
			CasinoID: casinoIDs["lucky-spin"],
			Author:   "SlotsFan88",
			Rating:   5,
			Title:    "Fast payouts, great selection",
			Body:     "Withdrew via Bitcoin twice, both times under an hour. Slot selection is huge.",
			Status:   constants.ReviewStatusPublished,
		},
		{
			CasinoID: casinoIDs["lucky-spin"],
			Author:   "CardCounter",
			Rating:   3,
			Title:    "Fine for slots, weak on tables",
			Body:     "Blackjack limits are low and there is no surrender rule.",
			Status:   constants.ReviewStatusPublished,
		},
		{
			CasinoID: casinoIDs["royal-ace"],
			Author:   "HighRollerHank",
			Rating:   4,
			Title:    "Cashback actually pays",
			Body:     "The weekly cashback arrives on time and has no sticky terms.",
			Status:   constants.ReviewStatusPublished,
		},
		{
			CasinoID: casinoIDs["neon-city"],
			Author:   "PendingReviewer",
			Rating:   4,
			Title:    "Awaiting moderation",
			Body:     "Draft entry used to verify the moderation flow.",
			Status:   constants.ReviewStatusDraft,
		},
	}

	for _, review := range reviews {
		if review.CasinoID == 0 {
			stdLog.Printf("Skip review %q: casino missing", review.Title)
			continue
		}
		var existing models.Review
		if err := models.DB.Where("casino_id = ? AND author = ? AND title = ?", review.CasinoID, review.Author, review.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&review).Error; err != nil {
				stdLog.Printf("Failed to create review %q: %v", review.Title, err)
			} else {
				stdLog.Printf("Created review: %s", review.Title)
			}
		} else {
			stdLog.Printf("Review already exists: %s", review.Title)
		}
	}

	faqs := []models.FAQ{
		{
			Question:  "Are online casinos legal in my country?",
			Answer:    "Legality depends on where you live. We block access from restricted regions and list the licenses each operator holds.",
			Topic:     "legal",
			SortOrder: 300,
		},
		{
			Question:  "How do wagering requirements work?",
			Answer:    "A 35x wagering requirement on a $100 bonus means you must place $3500 in bets before the bonus converts to withdrawable cash.",
			Topic:     "bonuses",
			SortOrder: 200,
		},
		{
			Question:  "How long do withdrawals take?",
			Answer:    "Crypto payouts usually clear within hours. Card and bank withdrawals take one to three business days depending on the operator.",
			Topic:     "payments",
			SortOrder: 100,
		},
	}

	for _, faq := range faqs {
		var existing models.FAQ
		if err := models.DB.Where("question = ?", faq.Question).First(&existing).Error; err != nil {
			if err := models.DB.Create(&faq).Error; err != nil {
				stdLog.Printf("Failed to create FAQ %q: %v", faq.Question, err)
			} else {
				stdLog.Printf("Created FAQ: %s", faq.Question)
			}
		} else {
			stdLog.Printf("FAQ already exists: %s", faq.Question)
		}
	}

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Categories")
	fmt.Println("- 4 Casinos (3 active, 1 inactive)")
	fmt.Println("- 4 Bonuses")
	fmt.Println("- 4 Games")
	fmt.Println("- 4 Reviews (3 published, 1 draft)")
	fmt.Println("- 3 FAQs")
}

func optionalUint(v uint) *uint {
	if v == 0 {
		return nil
	}
	return &v
}

func money(amount decimal.Decimal) *models.Money {
	m := models.NewMoneyFromDecimal(amount)
	return &m
}
