package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aaprotein/farmdesk/internal/domain/models"
	"github.com/aaprotein/farmdesk/internal/server/handlers"
	"github.com/aaprotein/farmdesk/internal/service/policy"
)

// New wires the Gin engine with required routes and middlewares. Every
// mutating route passes through the role gate for its action.
func New(handler *handlers.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/flocks", handler.ListFlocks)
	api.POST("/flocks", requireAction(policy.ActionRegisterFlock), handler.RegisterFlock)

	reports := api.Group("/reports")
	reports.GET("/feed", handler.ListFeedReports)
	reports.POST("/feed", requireAction(policy.ActionAddFeedReport), handler.AddFeedReport)
	reports.GET("/mortality", handler.ListMortalityReports)
	reports.POST("/mortality", requireAction(policy.ActionAddMortality), handler.AddMortalityReport)
	reports.GET("/medicine", handler.ListMedicineReports)
	reports.POST("/medicine", requireAction(policy.ActionAddMedicine), handler.AddMedicineReport)
	reports.GET("/eggs", handler.ListEggReports)
	reports.POST("/eggs", requireAction(policy.ActionAddEggProduction), handler.AddEggProductionReport)

	finance := api.Group("/finance")
	finance.GET("/transactions", handler.ListFinanceTransactions)
	finance.POST("/transactions", requireAction(policy.ActionAddFinance), handler.AddFinanceTransaction)
	finance.GET("/balances", handler.GetBalances)

	api.GET("/inventory", handler.ListInventory)
	api.POST("/inventory", requireAction(policy.ActionAddInventory), handler.AddInventoryItem)
	api.GET("/inventory/low-stock", handler.ListLowStock)

	security := api.Group("/security")
	security.GET("/logs", handler.ListSecurityLogs)
	security.POST("/logs", requireAction(policy.ActionAddSecurityLog), handler.AddSecurityLog)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", handler.GetDashboardSummary)
	dashboard.GET("/trends", handler.GetDashboardTrends)

	api.GET("/roles/:role/pages", handler.GetRolePages)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// requireAction reads the caller's role from the X-Role header and rejects
// callers the policy table does not allow to perform the action.
func requireAction(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := models.ParseRole(c.GetHeader("X-Role"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !policy.Can(role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role not permitted"})
			return
		}
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
