package models

import "time"

// GateMovementType marks the direction of a vehicle through the farm gate.
type GateMovementType string

const (
	GateInward  GateMovementType = "Inward"
	GateOutward GateMovementType = "Outward"
)

// SecurityLog is one gate movement entry. Unlike the daily reports it carries
// a full timestamp, not just a calendar date.
type SecurityLog struct {
	ID            string           `json:"id"`
	Timestamp     time.Time        `json:"timestamp"`
	Type          GateMovementType `json:"type"`
	VehicleNumber string           `json:"vehicleNumber"`
	DriverName    string           `json:"driverName"`
	MaterialType  string           `json:"materialType"`
	Quantity      string           `json:"quantity"`
	PhotoOrDocURL string           `json:"photoOrDocUrl,omitempty"`
}
