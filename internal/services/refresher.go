package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/liamwears/drcinema/internal/metrics"
)

const refreshTimeout = time.Minute

// Refresher reloads the catalogue on a cron schedule
type Refresher struct {
	cron     *cron.Cron
	schedule string
	catalog  *CatalogService
	logger   *zap.Logger
}

// NewRefresher schedules catalog refreshes. schedule is a standard cron spec
// or a descriptor such as "@every 30m".
func NewRefresher(catalog *CatalogService, schedule string, logger *zap.Logger) (*Refresher, error) {
	r := &Refresher{
		cron:     cron.New(),
		schedule: schedule,
		catalog:  catalog,
		logger:   logger,
	}
	if _, err := r.cron.AddFunc(schedule, r.Run); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Start begins running scheduled refreshes in the background
func (r *Refresher) Start() {
	r.cron.Start()
	r.logger.Info("catalog refresh scheduled", zap.String("schedule", r.schedule))
}

// Stop halts the schedule and waits for a running refresh to finish
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}

// Run performs one refresh
func (r *Refresher) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	start := time.Now()
	if err := r.catalog.Refresh(ctx); err != nil {
		metrics.CatalogRefreshes.WithLabelValues("failure").Inc()
		r.logger.Error("catalog refresh failed", zap.Error(err))
		return
	}
	metrics.CatalogRefreshes.WithLabelValues("success").Inc()
	r.logger.Info("catalog refreshed", zap.Duration("took", time.Since(start)))
}
