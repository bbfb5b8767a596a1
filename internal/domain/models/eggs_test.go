package models

import "testing"

func TestEggStockTotal(t *testing.T) {
	tests := []struct {
		name  string
		stock EggStock
		want  int
	}{
		{"empty", EggStock{}, 0},
		{"loose only", EggStock{Eggs: 10}, 10},
		{"trays and loose", EggStock{Tray: 3, Eggs: 10}, 100},
		{"all denominations", EggStock{Petti: 9, Tray: 23, Eggs: 4}, 3934},
		{"negative propagates", EggStock{Petti: -1, Tray: 2, Eggs: 5}, -295},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stock.Total(); got != tt.want {
				t.Errorf("Total() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDenominate(t *testing.T) {
	tests := []struct {
		total int
		want  EggStock
	}{
		{0, EggStock{}},
		{29, EggStock{Eggs: 29}},
		{30, EggStock{Tray: 1}},
		{359, EggStock{Tray: 11, Eggs: 29}},
		{360, EggStock{Petti: 1}},
		{3934, EggStock{Petti: 10, Tray: 11, Eggs: 4}},
		{-395, EggStock{Petti: -1, Tray: -1, Eggs: -5}},
	}
	for _, tt := range tests {
		if got := Denominate(tt.total); got != tt.want {
			t.Errorf("Denominate(%d) = %+v, want %+v", tt.total, got, tt.want)
		}
	}
}

func TestDenominateRoundTrip(t *testing.T) {
	// Round-trip holds on the count for every total, negatives included.
	for _, total := range []int{0, 1, 29, 30, 31, 359, 360, 361, 5868, 100000, -1, -30, -5868} {
		if got := Denominate(total).Total(); got != total {
			t.Errorf("Denominate(%d).Total() = %d", total, got)
		}
	}
}

func TestClosingStock(t *testing.T) {
	cat := EggCategoryProduction{
		Opening: EggStock{Petti: 1},          // 360
		Today:   EggStock{Tray: 2, Eggs: 5},  // 65
		Sale:    EggStock{Petti: 1, Tray: 1}, // 390
	}
	// 360 + 65 - 390 = 35
	if got, want := cat.Closing(), (EggStock{Tray: 1, Eggs: 5}); got != want {
		t.Errorf("Closing() = %+v, want %+v", got, want)
	}
}

func TestClosingStockNegative(t *testing.T) {
	// Sales outrunning supply are not clamped; the sign survives.
	cat := EggCategoryProduction{
		Today: EggStock{Tray: 1},
		Sale:  EggStock{Petti: 1},
	}
	got := cat.Closing()
	if got.Total() != -330 {
		t.Errorf("Closing().Total() = %d, want -330", got.Total())
	}
}

func TestReportTodayTotal(t *testing.T) {
	report := EggProductionReport{
		Starter:  EggCategoryProduction{Today: EggStock{Tray: 3, Eggs: 10}},
		Medium:   EggCategoryProduction{Today: EggStock{Petti: 2, Tray: 20}},
		Standard: EggCategoryProduction{Today: EggStock{Petti: 9, Tray: 23, Eggs: 4}},
		Jumbo:    EggCategoryProduction{Today: EggStock{Petti: 1, Tray: 3, Eggs: 4}},
		Broken:   EggCategoryProduction{Today: EggStock{Tray: 1, Eggs: 20}},
		Liquid:   EggCategoryProduction{Today: EggStock{Eggs: 10}},
	}
	if got := report.TodayTotal(); got != 5868 {
		t.Errorf("TodayTotal() = %d, want 5868", got)
	}
}
