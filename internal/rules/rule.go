package rules

import "traffic-engine/internal/model"

// Rule defines the contract for all violation checks.
// Evaluate returns nil when the event does not breach the rule.
type Rule interface {
	Evaluate(evt *model.Event) *model.Violation
}
