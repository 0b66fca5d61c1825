package service

import (
	"fmt"

	"github.com/sanhariharan/invesplannner/domain"
)

var objectives = map[domain.RiskTolerance]string{
	domain.RiskConservative: "preserve capital while generating steady income",
	domain.RiskModerate:     "balance growth with stability",
	domain.RiskAggressive:   "maximize long-term growth potential",
}

// TimeFrame classifies a horizon in years using the same thresholds as the
// allocation rules.
func TimeFrame(years int) string {
	switch {
	case years < ShortHorizonYears:
		return "short-term"
	case years > LongHorizonYears:
		return "long-term"
	}
	return "medium-term"
}

// Describe renders the recommendation sentence. Deterministic by contract.
func Describe(profile domain.UserProfile, a domain.Allocation) string {
	return fmt.Sprintf(
		"Based on your %s risk tolerance and %s investment horizon, we recommend a portfolio allocation of %d%% stocks, %d%% bonds, and %d%% cash. This strategy aims to %s.",
		profile.RiskTolerance, TimeFrame(profile.TimeHorizon),
		a.Stocks, a.Bonds, a.Cash,
		objectives[profile.RiskTolerance],
	)
}
