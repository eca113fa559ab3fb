package worker

import (
	"context"
	"errors"
	"time"

	"github.com/casinodex-next/internal/config"
	"github.com/casinodex-next/internal/logger"
	"github.com/casinodex-next/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	statsRollupInterval = 5 * time.Minute
)

// Service runs the asynq worker.
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService creates the worker service.
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start runs the worker until the server stops.
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.ClickEventRepo != nil {
		go s.runStatsRollupLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop shuts down the worker.
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runStatsRollupLoop periodically rebuilds campaign counters from the
// click event table so drifted redis counters self-heal.
func (s *Service) runStatsRollupLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.ClickEventRepo == nil {
		return
	}
	runOnce := func() {
		if err := s.rollupAllCampaigns(ctx); err != nil {
			logger.Warnw("worker_stats_rollup_loop_failed", "error", err)
		}
	}
	runOnce()

	ticker := time.NewTicker(statsRollupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}

func (s *Service) rollupAllCampaigns(ctx context.Context) error {
	campaigns, err := s.consumer.ClickEventRepo.ListCampaignIDs()
	if err != nil {
		return err
	}
	for _, campaignID := range campaigns {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.consumer.rollupCampaign(ctx, campaignID); err != nil {
			logger.Warnw("worker_stats_rollup_campaign_failed", "campaign_id", campaignID, "error", err)
		}
	}
	return nil
}
