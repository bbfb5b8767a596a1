package models

import "time"

// Flock represents one managed group of birds tracked as a single unit,
// usually one shed.
type Flock struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Breed            string    `json:"breed"`
	ArrivalDate      time.Time `json:"arrivalDate"`
	InitialBirdCount int       `json:"initialBirdCount"`
	CurrentBirdCount int       `json:"currentBirdCount"`
	CostPerChick     float64   `json:"costPerChick"`
	TotalMortality   int       `json:"totalMortality"`
	TotalFeed        float64   `json:"totalFeed"` // kg, cumulative
	TotalEggs        int       `json:"totalEggs"` // count, cumulative
}

// FlockInput carries the caller-supplied fields of a flock registration.
// Identifier, current count and cumulative counters are assigned by the store.
type FlockInput struct {
	Name             string    `json:"name"`
	Breed            string    `json:"breed"`
	ArrivalDate      time.Time `json:"arrivalDate"`
	InitialBirdCount int       `json:"initialBirdCount"`
	CostPerChick     float64   `json:"costPerChick"`
}
