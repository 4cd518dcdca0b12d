package scheduler

import (
	"context"
	"time"

	"github.com/pehchaan/storefront-backend/internal/app/repository"
	"github.com/pehchaan/storefront-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CartCleanupScheduler purges cart snapshots that nobody has touched for
// the configured retention period.
type CartCleanupScheduler struct {
	cron      *cron.Cron
	cartStore repository.CartStore
	schedule  string
	retention time.Duration
}

func NewCartCleanupScheduler(cartStore repository.CartStore, schedule string, retention time.Duration) *CartCleanupScheduler {
	return &CartCleanupScheduler{
		cron:      cron.New(),
		cartStore: cartStore,
		schedule:  schedule,
		retention: retention,
	}
}

func (s *CartCleanupScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		logger.Info("Starting scheduled cart cleanup", map[string]interface{}{
			"retention": s.retention.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		purged, err := s.cartStore.PurgeStale(ctx, s.retention)
		if err != nil {
			logger.Error("Failed to purge stale carts", err)
			return
		}

		logger.Info("Scheduled cart cleanup finished", map[string]interface{}{
			"purged": purged,
		})
	})
	if err != nil {
		logger.Error("Failed to add cron job for cart cleanup", err)
		return err
	}

	s.cron.Start()
	logger.Info("Cart cleanup scheduler started", map[string]interface{}{
		"schedule": s.schedule,
	})
	return nil
}

func (s *CartCleanupScheduler) Stop() {
	logger.Info("Stopping cart cleanup scheduler...")
	s.cron.Stop()
}
