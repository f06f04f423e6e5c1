package model

// Violation is a detected rule breach with its fine. Over is the km/h over
// the limit rounded up; it is nil for red-light violations.
type Violation struct {
	Type        string `json:"type"`
	Over        *int   `json:"over,omitempty"`
	Fine        int    `json:"fine"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Location    string `json:"location"`
}

const (
	ViolationSpeeding = "SPEEDING"
	ViolationRedLight = "RED_LIGHT"
)
