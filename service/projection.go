package service

import "math"

// ProjectValue estimates the future value of current savings compounded
// annually plus monthly contributions compounded monthly, rounded to the
// nearest currency unit.
func ProjectValue(currentSavings, monthlyInvestment float64, years int, annualReturn float64) float64 {
	months := float64(years * 12)
	monthlyRate := annualReturn / 12

	savings := currentSavings * math.Pow(1+annualReturn, float64(years))

	var contributions float64
	if monthlyRate == 0 {
		contributions = monthlyInvestment * months
	} else {
		contributions = monthlyInvestment * (math.Pow(1+monthlyRate, months) - 1) / monthlyRate
	}

	return math.Round(savings + contributions)
}
