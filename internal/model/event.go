package model

// Event is one parsed sensor observation of a vehicle at a location.
// SignalState and Action are normalized to upper case at parse time.
type Event struct {
	Timestamp   string  `json:"timestamp"`
	VehicleID   string  `json:"vehicle_id"`
	Location    string  `json:"location"`
	Speed       float64 `json:"speed"`
	SignalState string  `json:"signal_state"`
	Action      string  `json:"action"`
}

const (
	SignalGreen = "GREEN"
	SignalRed   = "RED"
)

const ActionPass = "PASS"
