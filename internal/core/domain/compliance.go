package domain

// Decision is the outcome of a compliance check.
type Decision string

const (
	DecisionAllow Decision = "allow"
	DecisionFlag  Decision = "flag"
	DecisionDeny  Decision = "deny"
)

// ComplianceResult carries a single check's decision with an optional reason.
type ComplianceResult struct {
	Decision Decision `json:"decision"`
	Reason   string   `json:"reason,omitempty"`
}

var decisionRank = map[Decision]int{
	DecisionAllow: 0,
	DecisionFlag:  1,
	DecisionDeny:  2,
}

// MergeDecisions returns the stricter of two decisions (deny > flag > allow).
func MergeDecisions(a, b Decision) Decision {
	if decisionRank[a] >= decisionRank[b] {
		return a
	}
	return b
}

// ComplianceOutcome aggregates the pipeline's checks for one receipt; it is
// persisted as the compliance artifact.
type ComplianceOutcome struct {
	TravelRule ComplianceResult `json:"travel_rule"`
	Sanctions  ComplianceResult `json:"sanctions"`
}

// Denied reports whether any enforced check denied the receipt.
func (o ComplianceOutcome) Denied(enforceTravelRule, enforceSanctions bool) bool {
	if enforceTravelRule && o.TravelRule.Decision == DecisionDeny {
		return true
	}
	if enforceSanctions && o.Sanctions.Decision == DecisionDeny {
		return true
	}
	return false
}
