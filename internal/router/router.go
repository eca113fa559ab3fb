package router

import (
	"fmt"
	"strings"

	"github.com/casinodex-next/internal/cache"
	"github.com/casinodex-next/internal/config"
	adminhandlers "github.com/casinodex-next/internal/http/handlers/admin"
	publichandlers "github.com/casinodex-next/internal/http/handlers/public"
	"github.com/casinodex-next/internal/logger"
	"github.com/casinodex-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP engine: global middleware, the edge
// interceptor, then the public and admin route groups.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "cdx"
	}
	redisClient := cache.Client()
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many login attempts, try again later",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(RequestInterceptor(c.GeoEvaluator, c.TrackerClient))

	// Uploaded assets bypass the interceptor via the /uploads/ prefix.
	r.Static("/uploads", "./uploads")

	// SEO surface; the file-extension exclusion keeps these untracked.
	r.GET("/sitemap.xml", publicHandler.Sitemap)
	r.GET("/robots.txt", publicHandler.RobotsTxt)

	api := r.Group("/api")
	{
		api.GET("/health", publicHandler.Health)
		api.GET("/meta", publicHandler.GetMeta)

		api.GET("/keitaro/redirect", publicHandler.KeitaroRedirect)

		affiliate := api.Group("/affiliate")
		{
			affiliate.POST("/postback", publicHandler.CreatePostback)
			affiliate.GET("/postback", publicHandler.GetPostback)
			affiliate.GET("/stats", publicHandler.GetCampaignStats)
		}

		api.GET("/compliance/geo-check", publicHandler.GeoCheck)

		api.GET("/casinos", publicHandler.GetCasinos)
		api.GET("/casinos/:slug", publicHandler.GetCasinoBySlug)
		api.GET("/casinos/:slug/bonuses", publicHandler.GetCasinoBonuses)
		api.GET("/casinos/:slug/reviews", publicHandler.GetCasinoReviews)
		api.GET("/bonuses", publicHandler.GetBonuses)
		api.GET("/games", publicHandler.GetGames)
		api.GET("/games/:slug", publicHandler.GetGameBySlug)
		api.GET("/categories", publicHandler.GetCategories)
		api.GET("/faqs", publicHandler.GetFAQs)

		admin := api.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("username")), adminHandler.AdminLogin)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.PUT("/password", adminHandler.UpdateAdminPassword)

				authorized.GET("/casinos", adminHandler.GetAdminCasinos)
				authorized.POST("/casinos", adminHandler.CreateCasino)
				authorized.PUT("/casinos/:id", adminHandler.UpdateCasino)
				authorized.DELETE("/casinos/:id", adminHandler.DeleteCasino)

				authorized.GET("/bonuses", adminHandler.GetAdminBonuses)
				authorized.POST("/bonuses", adminHandler.CreateBonus)
				authorized.PUT("/bonuses/:id", adminHandler.UpdateBonus)
				authorized.DELETE("/bonuses/:id", adminHandler.DeleteBonus)

				authorized.GET("/games", adminHandler.GetAdminGames)
				authorized.POST("/games", adminHandler.CreateGame)
				authorized.PUT("/games/:id", adminHandler.UpdateGame)
				authorized.DELETE("/games/:id", adminHandler.DeleteGame)

				authorized.GET("/categories", adminHandler.GetAdminCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/reviews", adminHandler.GetAdminReviews)
				authorized.POST("/reviews", adminHandler.CreateReview)
				authorized.PATCH("/reviews/:id/status", adminHandler.UpdateReviewStatus)
				authorized.DELETE("/reviews/:id", adminHandler.DeleteReview)

				authorized.GET("/faqs", adminHandler.GetAdminFAQs)
				authorized.POST("/faqs", adminHandler.CreateFAQ)
				authorized.PUT("/faqs/:id", adminHandler.UpdateFAQ)
				authorized.DELETE("/faqs/:id", adminHandler.DeleteFAQ)

				authorized.GET("/clicks", adminHandler.GetAdminClicks)
				authorized.GET("/clicks/stats", adminHandler.GetAdminCampaignStats)
				authorized.POST("/clicks/stats/rollup", adminHandler.EnqueueStatsRollup)
			}
		}
	}

	return r
}
