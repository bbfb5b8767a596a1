// Package policy is the single source of truth for what each role may see and
// do. The source UI scattered per-page checks (and left inventory ungated);
// here every mutating action goes through one table.
package policy

import (
	"github.com/aaprotein/farmdesk/internal/domain/models"
)

// Action names one mutating operation subject to role gating.
type Action string

const (
	ActionRegisterFlock    Action = "register_flock"
	ActionAddFeedReport    Action = "add_feed_report"
	ActionAddMortality     Action = "add_mortality_report"
	ActionAddMedicine      Action = "add_medicine_report"
	ActionAddEggProduction Action = "add_egg_production_report"
	ActionAddFinance       Action = "add_finance_transaction"
	ActionAddInventory     Action = "add_inventory_item"
	ActionAddSecurityLog   Action = "add_security_log"
)

var rolePages = map[models.Role][]models.Page{
	models.RoleAdmin: {
		models.PageDashboard, models.PageDailyEntryForm, models.PageFlockManagement,
		models.PageDailyFeedWater, models.PageMortalityHealth, models.PageEggProduction,
		models.PageFinanceLedger, models.PageInventory, models.PageSecurityGateLog,
		models.PageReports,
	},
	models.RoleManager: {
		models.PageDashboard, models.PageDailyEntryForm, models.PageFlockManagement,
		models.PageDailyFeedWater, models.PageMortalityHealth, models.PageEggProduction,
		models.PageReports,
	},
	models.RoleWorker: {
		models.PageDailyFeedWater, models.PageMortalityHealth, models.PageEggProduction,
	},
	models.RoleAccountant: {
		models.PageDashboard, models.PageDailyEntryForm, models.PageFinanceLedger,
		models.PageInventory, models.PageReports,
	},
	models.RoleSecurityGuard: {
		models.PageSecurityGateLog,
	},
}

var roleActions = map[Action][]models.Role{
	ActionRegisterFlock:    {models.RoleAdmin, models.RoleManager},
	ActionAddFeedReport:    {models.RoleAdmin, models.RoleManager, models.RoleWorker},
	ActionAddMortality:     {models.RoleAdmin, models.RoleManager, models.RoleWorker},
	ActionAddMedicine:      {models.RoleAdmin, models.RoleManager, models.RoleWorker},
	ActionAddEggProduction: {models.RoleAdmin, models.RoleManager, models.RoleWorker},
	ActionAddFinance:       {models.RoleAdmin, models.RoleAccountant},
	ActionAddInventory:     {models.RoleAdmin, models.RoleManager},
	ActionAddSecurityLog:   {models.RoleAdmin, models.RoleSecurityGuard},
}

// AllowedPages returns the ordered page list the role may navigate to.
func AllowedPages(role models.Role) []models.Page {
	return append([]models.Page(nil), rolePages[role]...)
}

// DefaultPage is the landing page for a role: the first entry of its allowed
// list. The source always landed on Dashboard, even for roles that cannot
// see it.
func DefaultPage(role models.Role) (models.Page, bool) {
	pages := rolePages[role]
	if len(pages) == 0 {
		return "", false
	}
	return pages[0], true
}

// CanView reports whether the role may open the page.
func CanView(role models.Role, page models.Page) bool {
	for _, p := range rolePages[role] {
		if p == page {
			return true
		}
	}
	return false
}

// Can reports whether the role may perform the mutating action.
func Can(role models.Role, action Action) bool {
	for _, r := range roleActions[action] {
		if r == role {
			return true
		}
	}
	return false
}
