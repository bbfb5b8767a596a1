package models

import "time"

// Egg counting denominations used across the farm: one petti (large case)
// holds 360 eggs, one tray holds 30.
const (
	EggsPerPetti = 360
	EggsPerTray  = 30
)

// EggStock expresses an egg quantity in petti/tray/loose denominations.
type EggStock struct {
	Petti int `json:"petti"`
	Tray  int `json:"tray"`
	Eggs  int `json:"eggs"`
}

// Total converts the stock to a single egg count. Negative components
// propagate into the result.
func (s EggStock) Total() int {
	return s.Petti*EggsPerPetti + s.Tray*EggsPerTray + s.Eggs
}

// Denominate normalizes a total egg count back into petti/tray/loose using
// greedy decomposition. Negative totals decompose by magnitude with the sign
// carried on every denomination, so Denominate(t).Total() == t for all t.
func Denominate(total int) EggStock {
	sign := 1
	if total < 0 {
		sign = -1
		total = -total
	}
	return EggStock{
		Petti: sign * (total / EggsPerPetti),
		Tray:  sign * ((total % EggsPerPetti) / EggsPerTray),
		Eggs:  sign * (total % EggsPerTray),
	}
}

// EggCategoryProduction holds one size category's stock movement for a day.
type EggCategoryProduction struct {
	Opening EggStock `json:"opening"`
	Today   EggStock `json:"today"`
	Sale    EggStock `json:"sale"`
}

// Closing derives the end-of-day stock: opening + today's production minus
// sales, renormalized. Never stored; may be negative when sales outrun supply.
func (c EggCategoryProduction) Closing() EggStock {
	return Denominate(c.Opening.Total() + c.Today.Total() - c.Sale.Total())
}

// EggProductionReport records one flock's daily production across the seven
// size categories.
type EggProductionReport struct {
	ID       string                `json:"id"`
	Date     time.Time             `json:"date"`
	FlockID  string                `json:"flockId"`
	Starter  EggCategoryProduction `json:"starter"`
	Medium   EggCategoryProduction `json:"medium"`
	Standard EggCategoryProduction `json:"standard"`
	Jumbo    EggCategoryProduction `json:"jumbo"`
	Dirty    EggCategoryProduction `json:"dirty"`
	Broken   EggCategoryProduction `json:"broken"`
	Liquid   EggCategoryProduction `json:"liquid"`
}

// Categories returns the seven size categories in display order.
func (r EggProductionReport) Categories() []EggCategoryProduction {
	return []EggCategoryProduction{r.Starter, r.Medium, r.Standard, r.Jumbo, r.Dirty, r.Broken, r.Liquid}
}

// TodayTotal sums today's production over every size category.
func (r EggProductionReport) TodayTotal() int {
	var total int
	for _, cat := range r.Categories() {
		total += cat.Today.Total()
	}
	return total
}
