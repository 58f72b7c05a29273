package services

import (
	"context"
	"sync"
	"time"

	"ordering-server/api/catalog"
	"ordering-server/dao/redis"

	"github.com/robfig/cron/v3"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// CatalogRefresherService periodically replaces the stored catalog with the
// upstream one.
type CatalogRefresherService struct {
	venueDao   *redis.RedisVenueDAO
	catalogAPI catalog.CatalogAPI
	cron       *cron.Cron
	timeout    time.Duration

	mu sync.Mutex
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(venueDao *redis.RedisVenueDAO, catalogAPI catalog.CatalogAPI, timeout time.Duration) *CatalogRefresherService {
	return &CatalogRefresherService{
		venueDao:   venueDao,
		catalogAPI: catalogAPI,
		cron:       cron.New(),
		timeout:    timeout,
	}
}

// RefreshCatalog fetches the full catalog and stores it wholesale. A failed
// fetch leaves the stored catalog untouched. Calls made while another refresh
// is running return ErrRefreshInProgress.
func (cr *CatalogRefresherService) RefreshCatalog(ctx context.Context) error {
	if !cr.mu.TryLock() {
		zap.L().Warn("[CatalogRefresherService] Refresh already running, skipping")
		return ErrRefreshInProgress
	}
	defer cr.mu.Unlock()

	start := time.Now()
	venues, err := cr.catalogAPI.GetCatalog(ctx)
	if err != nil {
		return eris.Wrap(err, "failed to fetch catalog")
	}

	if err := cr.venueDao.ReplaceCatalog(ctx, venues); err != nil {
		return eris.Wrap(err, "failed to store catalog")
	}

	zap.L().Info("[CatalogRefresherService] Catalog refreshed",
		zap.Int("venues", len(venues)),
		zap.Duration("took", time.Since(start)))
	return nil
}

// Start registers the refresh on schedule and starts the scheduler.
func (cr *CatalogRefresherService) Start(schedule string) error {
	_, err := cr.cron.AddFunc(schedule, cr.runScheduledRefresh)
	if err != nil {
		return eris.Wrapf(err, "invalid refresh schedule %q", schedule)
	}

	cr.cron.Start()
	zap.L().Info("[CatalogRefresherService] Scheduler started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (cr *CatalogRefresherService) Stop() {
	<-cr.cron.Stop().Done()
	zap.L().Info("[CatalogRefresherService] Scheduler stopped")
}

func (cr *CatalogRefresherService) runScheduledRefresh() {
	ctx := context.Background()
	if cr.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cr.timeout)
		defer cancel()
	}

	if err := cr.RefreshCatalog(ctx); err != nil && !eris.Is(err, ErrRefreshInProgress) {
		zap.L().Error("[CatalogRefresherService] Scheduled refresh failed", zap.Error(err))
	}
}
