// Package metrics derives dashboard and report values from the store. The
// engine holds no state of its own; every call reads a fresh snapshot.
package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aaprotein/farmdesk/internal/domain/models"
	"github.com/aaprotein/farmdesk/internal/store"
)

const (
	dateLayout = "2006-01-02"
	trendDays  = 7
)

// Engine computes derived metrics over the store.
type Engine struct {
	store   *store.Store
	opening decimal.Decimal
	logger  *zap.Logger
	now     func() time.Time
}

// Option tweaks an Engine at construction time.
type Option func(*Engine)

// WithClock injects the time source used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine wires a metrics engine. openingBalance is the fixed cash position
// the ledger starts from.
func NewEngine(st *store.Store, openingBalance decimal.Decimal, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		store:   st,
		opening: openingBalance,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DailySummary aggregates one calendar day's activity for the dashboard cards
// and the daily report preview.
type DailySummary struct {
	Date          string          `json:"date"`
	TotalBirds    int             `json:"totalBirds"`
	EggsCollected int             `json:"eggsCollected"`
	FeedUsedKg    float64         `json:"feedUsedKg"`
	Mortality     int             `json:"mortality"`
	CashInward    decimal.Decimal `json:"cashInward"`
	CashOutward   decimal.Decimal `json:"cashOutward"`
	NetCashFlow   decimal.Decimal `json:"netCashFlow"`
}

// TodaysSummary filters every report list down to the current calendar date
// and totals it. Feed kilograms come from the snapshot stored at submission
// time, never recomputed from live headcounts.
func (e *Engine) TodaysSummary() DailySummary {
	today := e.now()

	var totalBirds int
	for _, flock := range e.store.Flocks() {
		totalBirds += flock.CurrentBirdCount
	}

	var eggs int
	for _, r := range e.store.EggReports(nil) {
		if sameDay(r.Date, today) {
			eggs += r.TodayTotal()
		}
	}

	var feedKg float64
	for _, r := range e.store.FeedReports(nil) {
		if sameDay(r.Date, today) {
			feedKg += r.TotalFeedUsed
		}
	}

	var mortality int
	for _, r := range e.store.MortalityReports(nil) {
		if sameDay(r.Date, today) {
			mortality += r.Total
		}
	}

	inward, outward := decimal.Zero, decimal.Zero
	for _, tx := range e.store.FinanceTransactions(nil) {
		if !sameDay(tx.Date, today) {
			continue
		}
		switch tx.Type {
		case models.TransactionInward:
			inward = inward.Add(tx.Amount)
		case models.TransactionOutward:
			outward = outward.Add(tx.Amount)
		}
	}

	return DailySummary{
		Date:          today.Format(dateLayout),
		TotalBirds:    totalBirds,
		EggsCollected: eggs,
		FeedUsedKg:    feedKg,
		Mortality:     mortality,
		CashInward:    inward,
		CashOutward:   outward,
		NetCashFlow:   inward.Sub(outward),
	}
}

// EggTrendPoint is one day of the production trend with a value per flock.
type EggTrendPoint struct {
	Date    string         `json:"date"`
	Label   string         `json:"label"`
	ByFlock map[string]int `json:"byFlock"`
}

// EggTrend returns the last seven calendar days of production, oldest first
// and ending today, zero-filled where a flock has no report.
func (e *Engine) EggTrend() []EggTrendPoint {
	flocks := e.store.Flocks()
	reports := e.store.EggReports(nil)

	points := make([]EggTrendPoint, 0, trendDays)
	for _, d := range e.lastDays(trendDays) {
		point := EggTrendPoint{
			Date:    d.Format(dateLayout),
			Label:   d.Format("Mon"),
			ByFlock: make(map[string]int, len(flocks)),
		}
		for _, flock := range flocks {
			point.ByFlock[flock.Name] = 0
		}
		for _, r := range reports {
			if !sameDay(r.Date, d) {
				continue
			}
			for _, flock := range flocks {
				if flock.ID == r.FlockID {
					point.ByFlock[flock.Name] = r.TodayTotal()
				}
			}
		}
		points = append(points, point)
	}
	return points
}

// FeedTrendPoint is one day of the aggregate feed trend, rounded to whole kg.
type FeedTrendPoint struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	FeedKg int    `json:"feedKg"`
}

// FeedTrend returns the last seven calendar days of farm-wide feed usage,
// oldest first and ending today, zero-filled for quiet days.
func (e *Engine) FeedTrend() []FeedTrendPoint {
	reports := e.store.FeedReports(nil)

	points := make([]FeedTrendPoint, 0, trendDays)
	for _, d := range e.lastDays(trendDays) {
		var kg float64
		for _, r := range reports {
			if sameDay(r.Date, d) {
				kg += r.TotalFeedUsed
			}
		}
		points = append(points, FeedTrendPoint{
			Date:   d.Format(dateLayout),
			Label:  d.Format("Mon"),
			FeedKg: int(math.Round(kg)),
		})
	}
	return points
}

// LowStockItems returns every inventory line at or below its threshold.
// Recomputed on every call.
func (e *Engine) LowStockItems() []models.InventoryItem {
	var low []models.InventoryItem
	for _, item := range e.store.Inventory() {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low
}

// ProductionPercentage renders eggs produced against the flock's current
// headcount as a two-decimal percentage. "N/A" when the flock cannot be
// resolved or holds no birds.
func (e *Engine) ProductionPercentage(flockID string, eggs int) string {
	flock, ok := e.store.FlockByID(flockID)
	if !ok || flock.CurrentBirdCount == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", float64(eggs)/float64(flock.CurrentBirdCount)*100)
}

// CashBalances is the all-time ledger position.
type CashBalances struct {
	Opening decimal.Decimal `json:"opening"`
	Inward  decimal.Decimal `json:"inward"`
	Outward decimal.Decimal `json:"outward"`
	Closing decimal.Decimal `json:"closing"`
}

// Balances totals the full transaction history, not a date window: the
// running balance is all-time even though the dashboard cards show same-day
// flow only.
func (e *Engine) Balances() CashBalances {
	inward, outward := decimal.Zero, decimal.Zero
	for _, tx := range e.store.FinanceTransactions(nil) {
		switch tx.Type {
		case models.TransactionInward:
			inward = inward.Add(tx.Amount)
		case models.TransactionOutward:
			outward = outward.Add(tx.Amount)
		}
	}
	return CashBalances{
		Opening: e.opening,
		Inward:  inward,
		Outward: outward,
		Closing: e.opening.Add(inward).Sub(outward),
	}
}

// lastDays lists n calendar days ending today, oldest first.
func (e *Engine) lastDays(n int) []time.Time {
	now := e.now()
	days := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, now.AddDate(0, 0, -i))
	}
	return days
}

// sameDay compares calendar dates by their own components, so a UTC-parsed
// report date and a zoned clock agree on what day a record belongs to.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
