package store

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aaprotein/farmdesk/internal/domain/models"
)

// Seed loads the fixed startup dataset: three flocks plus a handful of
// historical reports per category. The store keeps no durable state, so this
// runs on every process start.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flocks = []models.Flock{
		{ID: "h1", Name: "H1", Breed: "Lohmann Brown", ArrivalDate: day(2023, 1, 15), InitialBirdCount: 5000, CurrentBirdCount: 4850, CostPerChick: 120, TotalMortality: 150, TotalFeed: 55000, TotalEggs: 950000},
		{ID: "h2", Name: "H2", Breed: "Hy-Line Brown", ArrivalDate: day(2023, 3, 20), InitialBirdCount: 5000, CurrentBirdCount: 4910, CostPerChick: 125, TotalMortality: 90, TotalFeed: 52000, TotalEggs: 925000},
		{ID: "h3", Name: "H3", Breed: "ISA Brown", ArrivalDate: day(2023, 6, 10), InitialBirdCount: 5000, CurrentBirdCount: 4950, CostPerChick: 122, TotalMortality: 50, TotalFeed: 48000, TotalEggs: 890000},
	}

	s.feedReports = []models.DailyFeedReport{
		{ID: "fr1", Date: day(2024, 7, 27), FlockID: "h1", FeedConsumedPerBird: 110, WaterConsumedNormal: 800, OpeningStockFeed: 1500, FeedReceived: 500, TotalFeedUsed: 533.5, BirdCount: 4850, Remarks: "Normal consumption"},
		{ID: "fr2", Date: day(2024, 7, 27), FlockID: "h2", FeedConsumedPerBird: 112, WaterConsumedNormal: 810, OpeningStockFeed: 1800, TotalFeedUsed: 550, BirdCount: 4910, Remarks: "Slightly increased water intake"},
	}

	s.mortality = []models.MortalityReport{
		{ID: "mr1", Date: day(2024, 7, 27), FlockID: "h1", NightMortality: 2, HospitalMortality: 1, Total: 3, Remarks: "Normal mortality rate"},
	}

	s.medicine = []models.MedicineReport{
		{ID: "medr1", Date: day(2024, 7, 27), FlockID: "h1", MedicineName: "Kanamycin", Dose: "1ml/L", MedicineUsed: "4 Bottles", TotalHours: "2 hrs", Remarks: "For respiratory issues"},
	}

	s.eggReports = []models.EggProductionReport{
		{
			ID: "er1", Date: day(2024, 7, 27), FlockID: "h1",
			Starter:  models.EggCategoryProduction{Today: models.EggStock{Tray: 3, Eggs: 10}},
			Medium:   models.EggCategoryProduction{Today: models.EggStock{Petti: 2, Tray: 20}},
			Standard: models.EggCategoryProduction{Today: models.EggStock{Petti: 9, Tray: 23, Eggs: 4}},
			Jumbo:    models.EggCategoryProduction{Today: models.EggStock{Petti: 1, Tray: 3, Eggs: 4}},
			Broken:   models.EggCategoryProduction{Today: models.EggStock{Tray: 1, Eggs: 20}},
			Liquid:   models.EggCategoryProduction{Today: models.EggStock{Eggs: 10}},
		},
	}

	s.transactions = []models.FinanceTransaction{
		{ID: "ft1", Date: day(2024, 7, 27), VoucherNo: "IN-001", Type: models.TransactionInward, SourceOrExpenseType: "Egg Sales - Local Market", Amount: decimal.NewFromInt(55000), Remarks: "Payment from Tariq Traders"},
		{ID: "ft2", Date: day(2024, 7, 27), VoucherNo: "OUT-001", Type: models.TransactionOutward, SourceOrExpenseType: "Feed Purchase", Amount: decimal.NewFromInt(120000), Remarks: "Paid to Punjab Feeds"},
		{ID: "ft3", Date: day(2024, 7, 27), VoucherNo: "OUT-002", Type: models.TransactionOutward, SourceOrExpenseType: "Diesel", Amount: decimal.NewFromInt(5000), Remarks: "For generator"},
	}

	s.inventory = []models.InventoryItem{
		{ID: "inv1", Name: "Layer Feed A", Category: "Feed", Unit: "kg", Stock: 15000, LowStockThreshold: 5000, Supplier: "Punjab Feeds"},
		{ID: "inv2", Name: "Calcium Vita", Category: "Medicine", Unit: "bottles", Stock: 50, LowStockThreshold: 10, Supplier: "Pharma Solutions"},
		{ID: "inv3", Name: "Egg Trays", Category: "Trays", Unit: "units", Stock: 20000, LowStockThreshold: 5000, Supplier: "Packaging Co."},
	}

	s.securityLogs = []models.SecurityLog{
		{ID: "sl1", Timestamp: time.Date(2024, 7, 28, 9, 15, 23, 0, time.UTC), Type: models.GateInward, VehicleNumber: "MNC-1234", DriverName: "Ali Khan", MaterialType: "Feed", Quantity: "200 bags", PhotoOrDocURL: "https://picsum.photos/200"},
		{ID: "sl2", Timestamp: time.Date(2024, 7, 28, 11, 45, 5, 0, time.UTC), Type: models.GateOutward, VehicleNumber: "LET-5678", DriverName: "Bilal Ahmed", MaterialType: "Eggs", Quantity: "500 trays", PhotoOrDocURL: "https://picsum.photos/201"},
	}

	s.logger.Info("seed dataset loaded",
		zap.Int("flocks", len(s.flocks)),
		zap.Int("feed_reports", len(s.feedReports)),
		zap.Int("inventory_items", len(s.inventory)))
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
