package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pc-store/internal/storage"
)

// StatsScheduler keeps per-category product counts current in the
// background.
type StatsScheduler struct {
	cron       *cron.Cron
	categories *storage.CategoryRepository
	interval   time.Duration
	logger     *slog.Logger
	mu         sync.Mutex
	running    bool
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewStatsScheduler(categories *storage.CategoryRepository, interval time.Duration, logger *slog.Logger) *StatsScheduler {
	return &StatsScheduler{
		cron:       cron.New(),
		categories: categories,
		interval:   interval,
		logger:     logger,
	}
}

// Start refreshes the counts once immediately, then on every tick.
func (s *StatsScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	s.ctx, s.cancel = context.WithCancel(ctx)

	if _, err := s.cron.AddFunc("@every "+s.interval.String(), s.refresh); err != nil {
		return err
	}

	go s.refresh()
	s.cron.Start()
	s.running = true

	s.logger.Info("stats scheduler started", "interval", s.interval)
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (s *StatsScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.running = false
	s.logger.Info("stats scheduler stopped")
}

func (s *StatsScheduler) refresh() {
	ctx, cancel := context.WithTimeout(s.ctx, time.Minute)
	defer cancel()

	if err := s.categories.RefreshProductCounts(ctx); err != nil {
		s.logger.Error("category stats refresh failed", "error", err)
		return
	}
	s.logger.Debug("category stats refreshed")
}
