package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aaprotein/farmdesk/internal/config"
	"github.com/aaprotein/farmdesk/internal/domain/models"
	"github.com/aaprotein/farmdesk/internal/repository/mongodb"
	"github.com/aaprotein/farmdesk/internal/service/metrics"
	"github.com/aaprotein/farmdesk/pkg/clients/notify"
)

// Scheduler runs the end-of-day summary job: compute today's totals, archive
// the snapshot and push a notification with any low-stock alerts. Archiver
// and notifier are optional; a nil sink is skipped.
type Scheduler struct {
	cron     *cron.Cron
	engine   *metrics.Engine
	archiver mongodb.Archiver
	notifier notify.Client
	cfg      config.Config
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, engine *metrics.Engine, archiver mongodb.Archiver, notifier notify.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour, dom, month, dow).
	return &Scheduler{
		cron:     cron.New(),
		engine:   engine,
		archiver: archiver,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the daily summary job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.runDailySummary); err != nil {
		s.logger.Error("failed to schedule daily summary", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailySummary() {
	s.logger.Info("generating daily summary")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary := s.engine.TodaysSummary()
	lowStock := s.engine.LowStockItems()

	if s.archiver != nil {
		if err := s.archiver.ArchiveDailySummary(ctx, summary); err != nil {
			s.logger.Error("failed to archive daily summary", zap.Error(err))
		}
	}

	if s.notifier == nil {
		return
	}

	note := notify.Notification{
		Title:   fmt.Sprintf("Daily Summary %s", summary.Date),
		Message: formatSummary(summary, lowStock),
		Level:   "info",
	}
	if len(lowStock) > 0 {
		note.Level = "warning"
	}

	if err := s.notifier.Send(ctx, note); err != nil {
		s.logger.Error("failed to send daily summary notification", zap.Error(err))
		return
	}
	s.logger.Info("daily summary notification sent", zap.Int("low_stock_items", len(lowStock)))
}

func formatSummary(summary metrics.DailySummary, lowStock []models.InventoryItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Birds: %d | Eggs: %d | Feed: %.1f kg | Mortality: %d\n", summary.TotalBirds, summary.EggsCollected, summary.FeedUsedKg, summary.Mortality)
	fmt.Fprintf(&b, "Cash in: %s | Cash out: %s | Net: %s", summary.CashInward.StringFixed(2), summary.CashOutward.StringFixed(2), summary.NetCashFlow.StringFixed(2))
	for _, item := range lowStock {
		fmt.Fprintf(&b, "\nLow stock: %s at %v / %v %s", item.Name, item.Stock, item.LowStockThreshold, item.Unit)
	}
	return b.String()
}
