package provider

import (
	"github.com/casinodex-next/internal/cache"
	"github.com/casinodex-next/internal/config"
	"github.com/casinodex-next/internal/geo"
	"github.com/casinodex-next/internal/logger"
	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/queue"
	"github.com/casinodex-next/internal/repository"
	"github.com/casinodex-next/internal/seo"
	"github.com/casinodex-next/internal/service"
	"github.com/casinodex-next/internal/tracker"
)

// Container is the dependency injection container.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo      repository.AdminRepository
	ClickEventRepo repository.ClickEventRepository
	CasinoRepo     repository.CasinoRepository
	BonusRepo      repository.BonusRepository
	GameRepo       repository.GameRepository
	CategoryRepo   repository.CategoryRepository
	ReviewRepo     repository.ReviewRepository
	FAQRepo        repository.FAQRepository

	// Domain components
	GeoEvaluator   *geo.Evaluator
	TrackerClient  *tracker.Client
	MetaBuilder    *seo.MetaBuilder
	SitemapBuilder *seo.SitemapBuilder

	// Services
	AuthService    *service.AuthService
	ClickService   *service.ClickService
	CasinoService  *service.CasinoService
	GameService    *service.GameService
	ContentService *service.ContentService
	HealthService  *service.HealthService
}

// NewContainer wires the whole dependency graph. A malformed tracker
// base URL is fatal here: better to refuse startup than to emit broken
// redirect targets.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initDomain()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ClickEventRepo = repository.NewClickEventRepository(db)
	c.CasinoRepo = repository.NewCasinoRepository(db)
	c.BonusRepo = repository.NewBonusRepository(db)
	c.GameRepo = repository.NewGameRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.FAQRepo = repository.NewFAQRepository(db)
}

func (c *Container) initDomain() {
	c.GeoEvaluator = geo.NewEvaluator(c.Config.Geo.BlockedCountries, c.Config.Geo.OverrideHeader)

	trackerClient, err := tracker.NewClient(c.Config.Tracker.BaseURL, c.Config.Tracker.APIKey, c.Config.Tracker.FallbackURL)
	if err != nil {
		logger.Errorw("provider_init_tracker_failed", "error", err)
		panic(err)
	}
	c.TrackerClient = trackerClient

	c.MetaBuilder = seo.NewMetaBuilder(c.Config.Site)
	c.SitemapBuilder = seo.NewSitemapBuilder(c.Config.Site.BaseURL, c.CasinoRepo, c.GameRepo)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.ClickService = service.NewClickService(c.ClickEventRepo, c.QueueClient)
	c.CasinoService = service.NewCasinoService(c.CasinoRepo, c.BonusRepo)
	c.GameService = service.NewGameService(c.GameRepo, c.CategoryRepo)
	c.ContentService = service.NewContentService(c.ReviewRepo, c.FAQRepo, c.CasinoRepo)
	c.HealthService = service.NewHealthService(c.TrackerClient, c.Config.Health.TimeoutSeconds)
}
