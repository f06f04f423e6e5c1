package rules

import (
	"traffic-engine/internal/model"
	"traffic-engine/internal/policy"
)

type RedLightRule struct{}

// Evaluate fires when a vehicle passes through on a red signal. The fine is
// fixed and independent of speed.
func (r *RedLightRule) Evaluate(evt *model.Event) *model.Violation {
	if evt.SignalState != model.SignalRed || evt.Action != model.ActionPass {
		return nil
	}

	return &model.Violation{
		Type:        model.ViolationRedLight,
		Fine:        policy.RedLightFine,
		Description: "Passed on RED",
		Timestamp:   evt.Timestamp,
		Location:    evt.Location,
	}
}
