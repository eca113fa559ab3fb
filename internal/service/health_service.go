package service

import (
	"context"
	"sync"
	"time"

	"github.com/casinodex-next/internal/cache"
	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/tracker"
)

const defaultProbeTimeout = 5 * time.Second

// ComponentStatus is the probe outcome for one dependency.
type ComponentStatus struct {
	Name      string `json:"name"`
	Healthy   bool   `json:"healthy"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthReport aggregates all component probes.
type HealthReport struct {
	Healthy    bool              `json:"healthy"`
	Components []ComponentStatus `json:"components"`
	Timestamp  time.Time         `json:"timestamp"`
}

type probe struct {
	name string
	run  func(ctx context.Context) error
}

// HealthService probes service dependencies concurrently, each under
// its own timeout, so one slow dependency cannot starve the report.
type HealthService struct {
	trackerClient *tracker.Client
	timeout       time.Duration
}

// NewHealthService creates a health service. timeoutSeconds bounds each
// individual probe.
func NewHealthService(trackerClient *tracker.Client, timeoutSeconds int) *HealthService {
	timeout := defaultProbeTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return &HealthService{
		trackerClient: trackerClient,
		timeout:       timeout,
	}
}

// Check runs all dependency probes and aggregates the report. The
// report is always returned; degradation shows up per component.
func (s *HealthService) Check(ctx context.Context) HealthReport {
	probes := []probe{
		{name: constants.HealthComponentDatabase, run: probeDatabase},
		{name: constants.HealthComponentRedis, run: probeRedis},
	}
	if s.trackerClient != nil {
		probes = append(probes, probe{name: constants.HealthComponentTracker, run: s.trackerClient.Probe})
	}

	results := make([]ComponentStatus, len(probes))
	var wg sync.WaitGroup
	for i, p := range probes {
		wg.Add(1)
		go func(i int, p probe) {
			defer wg.Done()
			results[i] = s.runProbe(ctx, p)
		}(i, p)
	}
	wg.Wait()

	report := HealthReport{
		Healthy:    true,
		Components: results,
		Timestamp:  time.Now().UTC(),
	}
	for _, component := range results {
		if !component.Healthy {
			report.Healthy = false
		}
	}
	return report
}

func (s *HealthService) runProbe(ctx context.Context, p probe) ComponentStatus {
	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := p.run(probeCtx)
	status := ComponentStatus{
		Name:      p.name,
		Healthy:   err == nil,
		LatencyMS: time.Since(start).Milliseconds(),
	}
	if err != nil {
		status.Error = err.Error()
	}
	return status
}

func probeDatabase(ctx context.Context) error {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func probeRedis(ctx context.Context) error {
	client := cache.Client()
	if client == nil {
		// cache disabled by configuration is not a failure
		return nil
	}
	return client.Ping(ctx).Err()
}
