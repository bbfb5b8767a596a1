package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aaprotein/farmdesk/internal/domain/models"
	"github.com/aaprotein/farmdesk/internal/service/metrics"
	"github.com/aaprotein/farmdesk/internal/service/policy"
	"github.com/aaprotein/farmdesk/internal/store"
)

const dateLayout = "2006-01-02"

// Handler adapts the store and metrics engine to HTTP.
type Handler struct {
	store  *store.Store
	engine *metrics.Engine
	logger *zap.Logger
}

// New constructs the HTTP handler adapter.
func New(st *store.Store, engine *metrics.Engine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: st, engine: engine, logger: logger}
}

type flockRequest struct {
	Name             string  `json:"name" binding:"required"`
	Breed            string  `json:"breed"`
	ArrivalDate      string  `json:"arrivalDate" binding:"required"`
	InitialBirdCount int     `json:"initialBirdCount" binding:"required,gt=0"`
	CostPerChick     float64 `json:"costPerChick"`
}

// RegisterFlock creates a new flock in the ledger.
func (h *Handler) RegisterFlock(c *gin.Context) {
	var req flockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	arrival, err := time.Parse(dateLayout, req.ArrivalDate)
	if err != nil {
		h.badRequest(c, fmt.Errorf("arrivalDate: %w", err))
		return
	}

	flock := h.store.RegisterFlock(models.FlockInput{
		Name:             req.Name,
		Breed:            req.Breed,
		ArrivalDate:      arrival,
		InitialBirdCount: req.InitialBirdCount,
		CostPerChick:     req.CostPerChick,
	})
	c.JSON(http.StatusCreated, flock)
}

// ListFlocks returns the flock ledger.
func (h *Handler) ListFlocks(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Flocks())
}

type feedReportRequest struct {
	Date                   string  `json:"date" binding:"required"`
	FlockID                string  `json:"flockId" binding:"required"`
	FeedConsumedPerBird    float64 `json:"feedConsumedPerBird"`
	WaterConsumedNormal    float64 `json:"waterConsumedNormal"`
	WaterConsumedMedicated float64 `json:"waterConsumedMedicated"`
	OpeningStockFeed       float64 `json:"openingStockFeed"`
	FeedReceived           float64 `json:"feedReceived"`
	Remarks                string  `json:"remarks"`
}

// AddFeedReport records a daily feed and water report.
func (h *Handler) AddFeedReport(c *gin.Context) {
	var req feedReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.badRequest(c, fmt.Errorf("date: %w", err))
		return
	}

	report, err := h.store.AddFeedReport(models.DailyFeedReport{
		Date:                   date,
		FlockID:                req.FlockID,
		FeedConsumedPerBird:    req.FeedConsumedPerBird,
		WaterConsumedNormal:    req.WaterConsumedNormal,
		WaterConsumedMedicated: req.WaterConsumedMedicated,
		OpeningStockFeed:       req.OpeningStockFeed,
		FeedReceived:           req.FeedReceived,
		Remarks:                req.Remarks,
	})
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListFeedReports returns feed reports, optionally bounded by ?start and ?end.
func (h *Handler) ListFeedReports(c *gin.Context) {
	bounds, err := parseRange(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.FeedReports(bounds))
}

type mortalityReportRequest struct {
	Date              string `json:"date" binding:"required"`
	FlockID           string `json:"flockId" binding:"required"`
	NightMortality    int    `json:"nightMortality"`
	HospitalMortality int    `json:"hospitalMortality"`
	Remarks           string `json:"remarks"`
}

// AddMortalityReport records night and hospital deaths for a flock.
func (h *Handler) AddMortalityReport(c *gin.Context) {
	var req mortalityReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.badRequest(c, fmt.Errorf("date: %w", err))
		return
	}

	report, err := h.store.AddMortalityReport(models.MortalityReport{
		Date:              date,
		FlockID:           req.FlockID,
		NightMortality:    req.NightMortality,
		HospitalMortality: req.HospitalMortality,
		Remarks:           req.Remarks,
	})
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListMortalityReports returns mortality reports, optionally date-bounded.
func (h *Handler) ListMortalityReports(c *gin.Context) {
	bounds, err := parseRange(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.MortalityReports(bounds))
}

type medicineReportRequest struct {
	Date         string `json:"date" binding:"required"`
	FlockID      string `json:"flockId" binding:"required"`
	MedicineName string `json:"medicineName" binding:"required"`
	Dose         string `json:"dose"`
	MedicineUsed string `json:"medicineUsed"`
	TotalHours   string `json:"totalHours"`
	Remarks      string `json:"remarks"`
}

// AddMedicineReport records a medicine administration.
func (h *Handler) AddMedicineReport(c *gin.Context) {
	var req medicineReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.badRequest(c, fmt.Errorf("date: %w", err))
		return
	}

	report, err := h.store.AddMedicineReport(models.MedicineReport{
		Date:         date,
		FlockID:      req.FlockID,
		MedicineName: req.MedicineName,
		Dose:         req.Dose,
		MedicineUsed: req.MedicineUsed,
		TotalHours:   req.TotalHours,
		Remarks:      req.Remarks,
	})
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListMedicineReports returns medicine reports, optionally date-bounded.
func (h *Handler) ListMedicineReports(c *gin.Context) {
	bounds, err := parseRange(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.MedicineReports(bounds))
}

type eggProductionRequest struct {
	Date     string                       `json:"date" binding:"required"`
	FlockID  string                       `json:"flockId" binding:"required"`
	Starter  models.EggCategoryProduction `json:"starter"`
	Medium   models.EggCategoryProduction `json:"medium"`
	Standard models.EggCategoryProduction `json:"standard"`
	Jumbo    models.EggCategoryProduction `json:"jumbo"`
	Dirty    models.EggCategoryProduction `json:"dirty"`
	Broken   models.EggCategoryProduction `json:"broken"`
	Liquid   models.EggCategoryProduction `json:"liquid"`
}

// AddEggProductionReport records a day's production across all size categories.
func (h *Handler) AddEggProductionReport(c *gin.Context) {
	var req eggProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.badRequest(c, fmt.Errorf("date: %w", err))
		return
	}

	report, err := h.store.AddEggProductionReport(models.EggProductionReport{
		Date:     date,
		FlockID:  req.FlockID,
		Starter:  req.Starter,
		Medium:   req.Medium,
		Standard: req.Standard,
		Jumbo:    req.Jumbo,
		Dirty:    req.Dirty,
		Broken:   req.Broken,
		Liquid:   req.Liquid,
	})
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// eggReportRow pairs a report with its derived totals for the production log.
type eggReportRow struct {
	models.EggProductionReport
	TotalEggs            int    `json:"totalEggs"`
	ProductionPercentage string `json:"productionPercentage"`
}

// ListEggReports returns egg production reports with derived totals and
// production percentage, optionally date-bounded.
func (h *Handler) ListEggReports(c *gin.Context) {
	bounds, err := parseRange(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	reports := h.store.EggReports(bounds)
	rows := make([]eggReportRow, 0, len(reports))
	for _, r := range reports {
		total := r.TodayTotal()
		rows = append(rows, eggReportRow{
			EggProductionReport:  r,
			TotalEggs:            total,
			ProductionPercentage: h.engine.ProductionPercentage(r.FlockID, total),
		})
	}
	c.JSON(http.StatusOK, rows)
}

type financeTransactionRequest struct {
	Date                string          `json:"date" binding:"required"`
	VoucherNo           string          `json:"voucherNo" binding:"required"`
	Type                string          `json:"type" binding:"required,oneof=Inward Outward"`
	SourceOrExpenseType string          `json:"sourceOrExpenseType" binding:"required"`
	Amount              decimal.Decimal `json:"amount"`
	Remarks             string          `json:"remarks"`
}

// AddFinanceTransaction records one cash ledger entry.
func (h *Handler) AddFinanceTransaction(c *gin.Context) {
	var req financeTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.badRequest(c, fmt.Errorf("date: %w", err))
		return
	}

	tx := h.store.AddFinanceTransaction(models.FinanceTransaction{
		Date:                date,
		VoucherNo:           req.VoucherNo,
		Type:                models.TransactionType(req.Type),
		SourceOrExpenseType: req.SourceOrExpenseType,
		Amount:              req.Amount,
		Remarks:             req.Remarks,
	})
	c.JSON(http.StatusCreated, tx)
}

// ListFinanceTransactions returns the cash ledger, optionally date-bounded.
func (h *Handler) ListFinanceTransactions(c *gin.Context) {
	bounds, err := parseRange(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.FinanceTransactions(bounds))
}

// GetBalances returns the all-time cash position.
func (h *Handler) GetBalances(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Balances())
}

type inventoryItemRequest struct {
	Name              string  `json:"name" binding:"required"`
	Category          string  `json:"category" binding:"required,oneof=Feed Medicine Trays Packaging Diesel Other"`
	Unit              string  `json:"unit" binding:"required,oneof=kg liters units bottles"`
	Stock             float64 `json:"stock"`
	LowStockThreshold float64 `json:"lowStockThreshold"`
	Supplier          string  `json:"supplier"`
}

// AddInventoryItem registers a new inventory line.
func (h *Handler) AddInventoryItem(c *gin.Context) {
	var req inventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	item := h.store.AddInventoryItem(models.InventoryItem{
		Name:              req.Name,
		Category:          req.Category,
		Unit:              req.Unit,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		Supplier:          req.Supplier,
	})
	c.JSON(http.StatusCreated, item)
}

// ListInventory returns all inventory lines.
func (h *Handler) ListInventory(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Inventory())
}

// ListLowStock returns inventory lines at or below their threshold.
func (h *Handler) ListLowStock(c *gin.Context) {
	items := h.engine.LowStockItems()
	if items == nil {
		items = []models.InventoryItem{}
	}
	c.JSON(http.StatusOK, items)
}

type securityLogRequest struct {
	Timestamp     time.Time `json:"timestamp"`
	Type          string    `json:"type" binding:"required,oneof=Inward Outward"`
	VehicleNumber string    `json:"vehicleNumber" binding:"required"`
	DriverName    string    `json:"driverName"`
	MaterialType  string    `json:"materialType"`
	Quantity      string    `json:"quantity"`
	PhotoOrDocURL string    `json:"photoOrDocUrl"`
}

// AddSecurityLog records a gate movement. An omitted timestamp defaults to
// the current time.
func (h *Handler) AddSecurityLog(c *gin.Context) {
	var req securityLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	log := h.store.AddSecurityLog(models.SecurityLog{
		Timestamp:     req.Timestamp,
		Type:          models.GateMovementType(req.Type),
		VehicleNumber: req.VehicleNumber,
		DriverName:    req.DriverName,
		MaterialType:  req.MaterialType,
		Quantity:      req.Quantity,
		PhotoOrDocURL: req.PhotoOrDocURL,
	})
	c.JSON(http.StatusCreated, log)
}

// ListSecurityLogs returns gate movements, optionally date-bounded.
func (h *Handler) ListSecurityLogs(c *gin.Context) {
	bounds, err := parseRange(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.SecurityLogs(bounds))
}

// GetDashboardSummary returns today's aggregated totals.
func (h *Handler) GetDashboardSummary(c *gin.Context) {
	summary := h.engine.TodaysSummary()
	resp := gin.H{
		"summary":       summary,
		"lowStockItems": h.engine.LowStockItems(),
	}
	c.JSON(http.StatusOK, resp)
}

// GetDashboardTrends returns the 7-day egg and feed trend series.
func (h *Handler) GetDashboardTrends(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"eggProduction": h.engine.EggTrend(),
		"feedUsage":     h.engine.FeedTrend(),
	})
}

// GetRolePages returns the page set and default landing page for a role.
func (h *Handler) GetRolePages(c *gin.Context) {
	role, err := models.ParseRole(c.Param("role"))
	if err != nil {
		h.badRequest(c, err)
		return
	}

	landing, _ := policy.DefaultPage(role)
	c.JSON(http.StatusOK, gin.H{
		"role":        role,
		"pages":       policy.AllowedPages(role),
		"defaultPage": landing,
	})
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	h.logger.Warn("invalid request", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *Handler) storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrUnknownFlock) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown flock"})
		return
	}
	h.logger.Error("store operation failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// parseRange builds an inclusive date window from ?start and ?end. Both must
// be present to bound the query; otherwise the full list is returned.
func parseRange(c *gin.Context) (*store.DateRange, error) {
	startParam, endParam := c.Query("start"), c.Query("end")
	if startParam == "" && endParam == "" {
		return nil, nil
	}
	if startParam == "" || endParam == "" {
		return nil, errors.New("start and end must be provided together")
	}

	start, err := time.Parse(dateLayout, startParam)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := time.Parse(dateLayout, endParam)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	return &store.DateRange{Start: start, End: end}, nil
}
