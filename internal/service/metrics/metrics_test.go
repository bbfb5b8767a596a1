package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aaprotein/farmdesk/internal/domain/models"
	"github.com/aaprotein/farmdesk/internal/store"
)

// seedDay is the calendar date the seed dataset's reports carry.
var seedDay = time.Date(2024, 7, 27, 18, 30, 0, 0, time.UTC)

func newSeededEngine(t *testing.T, now time.Time) (*Engine, *store.Store) {
	t.Helper()
	clock := func() time.Time { return now }
	st := store.New(nil, store.WithClock(clock))
	st.Seed()
	return NewEngine(st, decimal.NewFromInt(50000), nil, WithClock(clock)), st
}

func TestTodaysSummary(t *testing.T) {
	engine, _ := newSeededEngine(t, seedDay)

	summary := engine.TodaysSummary()

	if summary.TotalBirds != 14710 {
		t.Errorf("TotalBirds = %d, want 14710", summary.TotalBirds)
	}
	if summary.EggsCollected != 5868 {
		t.Errorf("EggsCollected = %d, want 5868", summary.EggsCollected)
	}
	if math.Abs(summary.FeedUsedKg-1083.5) > 1e-9 {
		t.Errorf("FeedUsedKg = %v, want 1083.5", summary.FeedUsedKg)
	}
	if summary.Mortality != 3 {
		t.Errorf("Mortality = %d, want 3", summary.Mortality)
	}
	if !summary.CashInward.Equal(decimal.NewFromInt(55000)) {
		t.Errorf("CashInward = %s, want 55000", summary.CashInward)
	}
	if !summary.CashOutward.Equal(decimal.NewFromInt(125000)) {
		t.Errorf("CashOutward = %s, want 125000", summary.CashOutward)
	}
	if !summary.NetCashFlow.Equal(decimal.NewFromInt(-70000)) {
		t.Errorf("NetCashFlow = %s, want -70000", summary.NetCashFlow)
	}
}

func TestTodaysSummaryIgnoresOtherDays(t *testing.T) {
	// A clock two days past the seed data sees zero activity but the same
	// headcount.
	engine, _ := newSeededEngine(t, seedDay.AddDate(0, 0, 2))

	summary := engine.TodaysSummary()
	if summary.EggsCollected != 0 || summary.FeedUsedKg != 0 || summary.Mortality != 0 {
		t.Errorf("expected zero activity, got %+v", summary)
	}
	if summary.TotalBirds != 14710 {
		t.Errorf("TotalBirds = %d, want 14710", summary.TotalBirds)
	}
}

func TestEggTrendShape(t *testing.T) {
	engine, _ := newSeededEngine(t, seedDay)

	points := engine.EggTrend()
	if len(points) != 7 {
		t.Fatalf("points = %d, want 7", len(points))
	}
	if points[6].Date != "2024-07-27" {
		t.Errorf("last point = %s, want today 2024-07-27", points[6].Date)
	}
	if points[0].Date != "2024-07-21" {
		t.Errorf("first point = %s, want oldest 2024-07-21", points[0].Date)
	}

	// Today carries h1's production; every other flock/day is zero-filled.
	last := points[6]
	if last.ByFlock["H1"] != 5868 {
		t.Errorf("H1 today = %d, want 5868", last.ByFlock["H1"])
	}
	if last.ByFlock["H2"] != 0 || last.ByFlock["H3"] != 0 {
		t.Errorf("expected zero fill for H2/H3, got %+v", last.ByFlock)
	}
	for _, p := range points[:6] {
		for name, v := range p.ByFlock {
			if v != 0 {
				t.Errorf("day %s flock %s = %d, want 0", p.Date, name, v)
			}
		}
	}
}

func TestTrendsOnEmptyStore(t *testing.T) {
	clock := func() time.Time { return seedDay }
	st := store.New(nil, store.WithClock(clock))
	engine := NewEngine(st, decimal.Zero, nil, WithClock(clock))

	eggs := engine.EggTrend()
	feed := engine.FeedTrend()
	if len(eggs) != 7 || len(feed) != 7 {
		t.Fatalf("trend lengths = %d/%d, want 7/7", len(eggs), len(feed))
	}
	for i := range feed {
		if feed[i].FeedKg != 0 {
			t.Errorf("feed[%d] = %d, want 0", i, feed[i].FeedKg)
		}
		if i > 0 && feed[i].Date <= feed[i-1].Date {
			t.Errorf("feed trend not oldest-first at %d: %s then %s", i, feed[i-1].Date, feed[i].Date)
		}
	}
	if feed[6].Date != "2024-07-27" {
		t.Errorf("trend must end at today, got %s", feed[6].Date)
	}
}

func TestFeedTrendRoundsAggregate(t *testing.T) {
	engine, _ := newSeededEngine(t, seedDay)

	points := engine.FeedTrend()
	// 533.5 + 550 rounds to 1084.
	if points[6].FeedKg != 1084 {
		t.Errorf("today's feed = %d, want 1084", points[6].FeedKg)
	}
}

func TestLowStockBoundary(t *testing.T) {
	clock := func() time.Time { return seedDay }
	st := store.New(nil, store.WithClock(clock))
	st.AddInventoryItem(models.InventoryItem{Name: "Comfortable", Stock: 50, LowStockThreshold: 10})
	st.AddInventoryItem(models.InventoryItem{Name: "At threshold", Stock: 10, LowStockThreshold: 10})
	st.AddInventoryItem(models.InventoryItem{Name: "Below", Stock: 3, LowStockThreshold: 10})
	engine := NewEngine(st, decimal.Zero, nil, WithClock(clock))

	low := engine.LowStockItems()
	if len(low) != 2 {
		t.Fatalf("low stock items = %d, want 2 (boundary inclusive)", len(low))
	}
	for _, item := range low {
		if item.Name == "Comfortable" {
			t.Error("item above threshold listed as low")
		}
	}
}

func TestProductionPercentage(t *testing.T) {
	engine, _ := newSeededEngine(t, seedDay)

	if got := engine.ProductionPercentage("h1", 4000); got != "82.47" {
		t.Errorf("ProductionPercentage = %q, want 82.47", got)
	}
	if got := engine.ProductionPercentage("missing", 4000); got != "N/A" {
		t.Errorf("unresolvable flock: got %q, want N/A", got)
	}
}

func TestBalancesAreAllTime(t *testing.T) {
	// Clock far past the seed transactions: the running balance still counts
	// them, unlike the same-day dashboard cards.
	engine, _ := newSeededEngine(t, seedDay.AddDate(0, 1, 0))

	balances := engine.Balances()
	if !balances.Opening.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Opening = %s, want 50000", balances.Opening)
	}
	if !balances.Inward.Equal(decimal.NewFromInt(55000)) {
		t.Errorf("Inward = %s, want 55000", balances.Inward)
	}
	if !balances.Outward.Equal(decimal.NewFromInt(125000)) {
		t.Errorf("Outward = %s, want 125000", balances.Outward)
	}
	if !balances.Closing.Equal(decimal.NewFromInt(-20000)) {
		t.Errorf("Closing = %s, want -20000", balances.Closing)
	}
}
