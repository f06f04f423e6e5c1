package rules

import (
	"fmt"
	"math"

	"traffic-engine/internal/model"
	"traffic-engine/internal/policy"
)

type SpeedingRule struct{}

// Evaluate fires when the speed exceeds the limit plus tolerance. The excess
// is computed from the bare limit, not limit+tolerance, so the smallest
// ticketed excess is tolerance+1 km/h.
func (r *SpeedingRule) Evaluate(evt *model.Event) *model.Violation {
	limit := policy.SpeedLimit(evt.Location)
	if evt.Speed <= float64(limit+policy.SpeedTolerance) {
		return nil
	}

	over := int(math.Ceil(evt.Speed - float64(limit)))
	return &model.Violation{
		Type:        model.ViolationSpeeding,
		Over:        &over,
		Fine:        over * policy.SpeedFinePerKmph,
		Description: fmt.Sprintf("speed %g > limit %d", evt.Speed, limit),
		Timestamp:   evt.Timestamp,
		Location:    evt.Location,
	}
}
