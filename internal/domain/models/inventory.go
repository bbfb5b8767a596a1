package models

// InventoryItem is one farm-wide stocked supply line.
type InventoryItem struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"` // Feed, Medicine, Trays, Packaging, Diesel, Other
	Unit              string  `json:"unit"`     // kg, liters, units, bottles
	Stock             float64 `json:"stock"`
	LowStockThreshold float64 `json:"lowStockThreshold"`
	Supplier          string  `json:"supplier"`
}

// LowStock reports whether the item sits at or below its reorder threshold.
// The boundary is inclusive.
func (i InventoryItem) LowStock() bool {
	return i.Stock <= i.LowStockThreshold
}
