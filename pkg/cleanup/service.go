// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/tendersuite/tenderd/pkg/config"
	"github.com/tendersuite/tenderd/pkg/registry"
	"github.com/tendersuite/tenderd/pkg/services"
)

// Service periodically enforces retention policies:
//   - Sweeps completed, watcher-less agent tasks out of the registry
//   - Removes event-log rows past their TTL (TTL zero disables this)
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	registry     *registry.Registry
	eventService *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	reg *registry.Registry,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:       cfg,
		registry:     reg,
		eventService: eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"task_max_age", s.config.TaskMaxAge,
		"interval", s.config.SweepInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.sweepRegistry()
	s.purgeExpiredEvents(ctx)
}

func (s *Service) sweepRegistry() {
	count := s.registry.CleanupOldTasks(s.config.TaskMaxAge)
	if count > 0 {
		slog.Info("Retention: swept old agent tasks", "count", count)
	}
}

func (s *Service) purgeExpiredEvents(_ context.Context) {
	count, err := s.eventService.PurgeExpiredEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged expired events", "count", count)
	}
}
