package model

// VehicleRecord accumulates the violations and fines of a single vehicle.
// A record exists only for vehicles with at least one violation.
type VehicleRecord struct {
	VehicleID  string      `json:"vehicle_id"`
	Violations []Violation `json:"violations"`
	TotalFine  int         `json:"total_fine"`
}

// TypeCount is one per-type tally entry, kept in first-occurrence order.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// GlobalTally holds system-wide counts. TotalFine always equals the sum of
// the TotalFine of every VehicleRecord in the report.
type GlobalTally struct {
	VehicleCount int         `json:"vehicle_count"`
	TotalFine    int         `json:"total_fine"`
	TypeCounts   []TypeCount `json:"type_counts"`
}

// Report is the full output of processing a batch: vehicles in order of
// their first violation, plus the global tally.
type Report struct {
	Vehicles []*VehicleRecord `json:"vehicles"`
	Tally    GlobalTally      `json:"tally"`
}
