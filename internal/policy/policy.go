package policy

// Compiled-in fine schedule. Fines are whole currency units.
const (
	DefaultSpeedLimit = 50
	SpeedTolerance    = 5
	RedLightFine      = 2000
	SpeedFinePerKmph  = 100
)

var locationSpeedLimits = map[string]int{
	"MG_Road_01":    50,
	"Outer_Ring_2":  80,
	"School_Zone_A": 30,
	"Highway_7":     100,
}

// SpeedLimit returns the configured limit for a location, falling back to
// the default for unknown locations.
func SpeedLimit(location string) int {
	if limit, ok := locationSpeedLimits[location]; ok {
		return limit
	}
	return DefaultSpeedLimit
}
