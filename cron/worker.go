package cron

import (
	"context"

	"careindex/config"
	"careindex/models"
	"careindex/services/directory"
	"careindex/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartStatsRefresher schedules periodic recomputation of the directory
// gauges and, when caching is enabled, re-warms the default search entry.
// The refresh also runs once immediately so gauges are populated at startup.
func StartStatsRefresher(svc directory.DirectoryService, logger *zap.Logger) (*cron.Cron, error) {
	refresh := func() {
		ctx := context.Background()

		stats, err := svc.CollectStats(ctx)
		if err != nil {
			logger.Warn("Failed to collect directory stats", zap.Error(err))
			return
		}
		for specialty, count := range stats {
			utils.ProvidersBySpecialty.WithLabelValues(specialty).Set(float64(count))
		}

		if config.AppConfig.CacheEnabled {
			if _, err := svc.SearchProviders(ctx, models.ProviderFilter{}); err != nil {
				logger.Warn("Failed to warm default search cache", zap.Error(err))
			}
		}

		logger.Info("Directory stats refreshed", zap.Int("specialties", len(stats)))
	}

	refresh()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(config.AppConfig.StatsRefreshSchedule, refresh); err != nil {
		return nil, err
	}
	scheduler.Start()
	return scheduler, nil
}
