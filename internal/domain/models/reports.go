package models

import "time"

// DailyFeedReport captures one flock's daily feed and water usage.
// TotalFeedUsed and BirdCount are snapshotted at submission time so that
// later mortality never changes what a historical report claims was consumed.
type DailyFeedReport struct {
	ID                     string    `json:"id"`
	Date                   time.Time `json:"date"`
	FlockID                string    `json:"flockId"`
	FeedConsumedPerBird    float64   `json:"feedConsumedPerBird"` // grams per bird
	WaterConsumedNormal    float64   `json:"waterConsumedNormal"` // liters
	WaterConsumedMedicated float64   `json:"waterConsumedMedicated"`
	OpeningStockFeed       float64   `json:"openingStockFeed"` // kg
	FeedReceived           float64   `json:"feedReceived"`     // kg
	TotalFeedUsed          float64   `json:"totalFeedUsed"`    // kg, derived at submission
	BirdCount              int       `json:"birdCount"`        // headcount used for the derivation
	Remarks                string    `json:"remarks"`
}

// MortalityReport captures night and hospital deaths for one flock and day.
type MortalityReport struct {
	ID                string    `json:"id"`
	Date              time.Time `json:"date"`
	FlockID           string    `json:"flockId"`
	NightMortality    int       `json:"nightMortality"`
	HospitalMortality int       `json:"hospitalMortality"`
	Total             int       `json:"total"` // night + hospital, derived at submission
	Remarks           string    `json:"remarks"`
}

// MedicineReport captures a medicine administration for one flock and day.
type MedicineReport struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	FlockID      string    `json:"flockId"`
	MedicineName string    `json:"medicineName"`
	Dose         string    `json:"dose"`
	MedicineUsed string    `json:"medicineUsed"`
	TotalHours   string    `json:"totalHours"`
	Remarks      string    `json:"remarks"`
}
