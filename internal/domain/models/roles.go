package models

import (
	"fmt"
	"strings"
)

// Role identifies one of the five operator profiles.
type Role string

const (
	RoleAdmin         Role = "Admin"
	RoleManager       Role = "Manager"
	RoleWorker        Role = "Worker"
	RoleAccountant    Role = "Accountant"
	RoleSecurityGuard Role = "Security Guard"
)

// Page names one navigable dashboard page.
type Page string

const (
	PageDashboard       Page = "Dashboard"
	PageDailyEntryForm  Page = "Daily Entry Form"
	PageFlockManagement Page = "Flock Management"
	PageDailyFeedWater  Page = "Daily Feed & Water"
	PageMortalityHealth Page = "Mortality & Health"
	PageEggProduction   Page = "Egg Production"
	PageFinanceLedger   Page = "Finance Ledger"
	PageInventory       Page = "Inventory"
	PageSecurityGateLog Page = "Security Gate Log"
	PageReports         Page = "Reports"
)

// ParseRole maps a role name to its Role value, ignoring case and surrounding
// whitespace. "security guard" and "securityguard" both resolve.
func ParseRole(value string) (Role, error) {
	switch strings.ToLower(strings.Join(strings.Fields(value), " ")) {
	case "admin":
		return RoleAdmin, nil
	case "manager":
		return RoleManager, nil
	case "worker":
		return RoleWorker, nil
	case "accountant":
		return RoleAccountant, nil
	case "security guard", "securityguard":
		return RoleSecurityGuard, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}
