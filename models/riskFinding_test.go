package models

import "testing"

func TestRiskFindingCanTransitionTo(t *testing.T) {
	cases := []struct {
		from RiskStatus
		to   RiskStatus
		want bool
	}{
		{RiskStatusOpen, RiskStatusResolved, true},
		{RiskStatusOpen, RiskStatusDismissed, true},
		{RiskStatusOpen, RiskStatusOpen, false},
		{RiskStatusResolved, RiskStatusDismissed, false},
		{RiskStatusResolved, RiskStatusOpen, false},
		{RiskStatusResolved, RiskStatusResolved, false},
		{RiskStatusDismissed, RiskStatusResolved, false},
		{RiskStatusDismissed, RiskStatusOpen, false},
		{RiskStatusDismissed, RiskStatusDismissed, false},
	}
	for _, c := range cases {
		finding := &RiskFinding{Status: c.from}
		if got := finding.CanTransitionTo(c.to); got != c.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
