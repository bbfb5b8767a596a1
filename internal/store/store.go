// Package store holds the farm's live operational state: the flock ledger and
// the append-only daily report lists. State is volatile and rebuilt from the
// seed dataset at process start; every submission runs under one lock so the
// read-modify-write on flock counters stays serialized across HTTP clients.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aaprotein/farmdesk/internal/domain/models"
)

// ErrUnknownFlock is returned by flock-scoped submissions naming a flock the
// ledger does not know.
var ErrUnknownFlock = errors.New("unknown flock")

// Store owns the flock ledger and all report collections.
type Store struct {
	mu sync.RWMutex

	flocks       []models.Flock
	feedReports  []models.DailyFeedReport
	mortality    []models.MortalityReport
	medicine     []models.MedicineReport
	eggReports   []models.EggProductionReport
	transactions []models.FinanceTransaction
	inventory    []models.InventoryItem
	securityLogs []models.SecurityLog

	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// Option tweaks a Store at construction time.
type Option func(*Store)

// WithClock injects the time source used for generated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator injects the identifier generator used for new records.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New constructs an empty store. Callers typically follow up with Seed.
func New(logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterFlock creates a flock with a fresh identifier, the current count set
// to the initial count and all cumulative counters at zero.
func (s *Store) RegisterFlock(input models.FlockInput) models.Flock {
	s.mu.Lock()
	defer s.mu.Unlock()

	flock := models.Flock{
		ID:               s.newID(),
		Name:             input.Name,
		Breed:            input.Breed,
		ArrivalDate:      input.ArrivalDate,
		InitialBirdCount: input.InitialBirdCount,
		CurrentBirdCount: input.InitialBirdCount,
		CostPerChick:     input.CostPerChick,
	}
	s.flocks = append(s.flocks, flock)

	s.logger.Info("flock registered",
		zap.String("flock_id", flock.ID),
		zap.String("name", flock.Name),
		zap.Int("initial_bird_count", flock.InitialBirdCount))
	return flock
}

// AddFeedReport stores a feed report and accumulates the consumed kilograms
// onto the flock. The kilograms and the headcount used are snapshotted into
// the report so replaying history later cannot diverge.
func (s *Store) AddFeedReport(report models.DailyFeedReport) (models.DailyFeedReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flock := s.findFlock(report.FlockID)
	if flock == nil {
		return models.DailyFeedReport{}, ErrUnknownFlock
	}

	report.ID = s.newID()
	report.BirdCount = flock.CurrentBirdCount
	report.TotalFeedUsed = report.FeedConsumedPerBird * float64(flock.CurrentBirdCount) / 1000
	flock.TotalFeed += report.TotalFeedUsed

	s.feedReports = append([]models.DailyFeedReport{report}, s.feedReports...)
	return report, nil
}

// AddMortalityReport stores a mortality report, computing the combined total,
// and applies it to the flock counters. The current bird count is not floored
// at zero; a negative count signals a data-entry error upstream.
func (s *Store) AddMortalityReport(report models.MortalityReport) (models.MortalityReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flock := s.findFlock(report.FlockID)
	if flock == nil {
		return models.MortalityReport{}, ErrUnknownFlock
	}

	report.ID = s.newID()
	report.Total = report.NightMortality + report.HospitalMortality
	flock.CurrentBirdCount -= report.Total
	flock.TotalMortality += report.Total

	if flock.CurrentBirdCount < 0 {
		s.logger.Warn("flock bird count went negative",
			zap.String("flock_id", flock.ID),
			zap.Int("current_bird_count", flock.CurrentBirdCount))
	}

	s.mortality = append([]models.MortalityReport{report}, s.mortality...)
	return report, nil
}

// AddMedicineReport stores a medicine report. Medicine entries do not touch
// the flock counters.
func (s *Store) AddMedicineReport(report models.MedicineReport) (models.MedicineReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findFlock(report.FlockID) == nil {
		return models.MedicineReport{}, ErrUnknownFlock
	}

	report.ID = s.newID()
	s.medicine = append([]models.MedicineReport{report}, s.medicine...)
	return report, nil
}

// AddEggProductionReport stores an egg production report and accumulates
// today's total across all size categories onto the flock.
func (s *Store) AddEggProductionReport(report models.EggProductionReport) (models.EggProductionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flock := s.findFlock(report.FlockID)
	if flock == nil {
		return models.EggProductionReport{}, ErrUnknownFlock
	}

	report.ID = s.newID()
	flock.TotalEggs += report.TodayTotal()

	s.eggReports = append([]models.EggProductionReport{report}, s.eggReports...)
	return report, nil
}

// AddFinanceTransaction stores a farm-wide cash ledger entry.
func (s *Store) AddFinanceTransaction(tx models.FinanceTransaction) models.FinanceTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = s.newID()
	s.transactions = append([]models.FinanceTransaction{tx}, s.transactions...)
	return tx
}

// AddInventoryItem stores a farm-wide inventory line.
func (s *Store) AddInventoryItem(item models.InventoryItem) models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.newID()
	s.inventory = append([]models.InventoryItem{item}, s.inventory...)
	return item
}

// AddSecurityLog stores a gate movement entry. A zero timestamp is stamped
// with the store clock.
func (s *Store) AddSecurityLog(log models.SecurityLog) models.SecurityLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.ID = s.newID()
	if log.Timestamp.IsZero() {
		log.Timestamp = s.now()
	}
	s.securityLogs = append([]models.SecurityLog{log}, s.securityLogs...)
	return log
}

// Flocks returns a copy of the flock ledger in registration order.
func (s *Store) Flocks() []models.Flock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Flock(nil), s.flocks...)
}

// FlockByID resolves one flock by identifier.
func (s *Store) FlockByID(id string) (models.Flock, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f := s.findFlock(id); f != nil {
		return *f, true
	}
	return models.Flock{}, false
}

// FeedReports returns feed reports, most recent first, optionally bounded by
// an inclusive calendar date range.
func (s *Store) FeedReports(bounds *DateRange) []models.DailyFeedReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRange(s.feedReports, func(r models.DailyFeedReport) time.Time { return r.Date }, bounds)
}

// MortalityReports returns mortality reports, most recent first.
func (s *Store) MortalityReports(bounds *DateRange) []models.MortalityReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRange(s.mortality, func(r models.MortalityReport) time.Time { return r.Date }, bounds)
}

// MedicineReports returns medicine reports, most recent first.
func (s *Store) MedicineReports(bounds *DateRange) []models.MedicineReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRange(s.medicine, func(r models.MedicineReport) time.Time { return r.Date }, bounds)
}

// EggReports returns egg production reports, most recent first.
func (s *Store) EggReports(bounds *DateRange) []models.EggProductionReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRange(s.eggReports, func(r models.EggProductionReport) time.Time { return r.Date }, bounds)
}

// FinanceTransactions returns the full cash ledger, most recent first.
func (s *Store) FinanceTransactions(bounds *DateRange) []models.FinanceTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRange(s.transactions, func(t models.FinanceTransaction) time.Time { return t.Date }, bounds)
}

// Inventory returns all inventory lines.
func (s *Store) Inventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.InventoryItem(nil), s.inventory...)
}

// SecurityLogs returns gate movement entries, most recent first.
func (s *Store) SecurityLogs(bounds *DateRange) []models.SecurityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRange(s.securityLogs, func(l models.SecurityLog) time.Time { return l.Timestamp }, bounds)
}

// findFlock returns a pointer into the ledger; callers must hold the lock.
func (s *Store) findFlock(id string) *models.Flock {
	for i := range s.flocks {
		if s.flocks[i].ID == id {
			return &s.flocks[i]
		}
	}
	return nil
}
