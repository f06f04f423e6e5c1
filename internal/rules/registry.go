package rules

import "traffic-engine/internal/model"

// registry lists the rules in evaluation order. The order is observable:
// when an event breaches several rules, its violations are recorded in
// registry order (speeding before red-light).
var registry = []Rule{
	&SpeedingRule{},
	&RedLightRule{},
}

// Evaluate runs every registered rule against one event.
func Evaluate(evt *model.Event) []model.Violation {
	var violations []model.Violation
	for _, r := range registry {
		if v := r.Evaluate(evt); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}
