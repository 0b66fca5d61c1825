package domain

import "math"

// Límites de la tasa anual aceptada en proyecciones.
const (
	MinAnnualReturn = -1 // exclusivo
	MaxAnnualReturn = 1
)

type ProjectionInput struct {
	CurrentSavings    float64  `json:"currentSavings"`
	MonthlyInvestment float64  `json:"monthlyInvestment"`
	TimeHorizon       int      `json:"timeHorizon"`
	AnnualReturn      *float64 `json:"annualReturn,omitempty"`
}

// Validate checks the amounts, the horizon and, when given, the annual return.
func (in ProjectionInput) Validate() error {
	if err := checkAmount("currentSavings", in.CurrentSavings); err != nil {
		return err
	}
	if err := checkAmount("monthlyInvestment", in.MonthlyInvestment); err != nil {
		return err
	}
	if err := checkHorizon(in.TimeHorizon); err != nil {
		return err
	}
	if in.AnnualReturn != nil {
		return CheckAnnualReturn(*in.AnnualReturn)
	}
	return nil
}

// CheckAnnualReturn accepts finite rates in (-1, 1].
func CheckAnnualReturn(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return &ValidationError{Field: "annualReturn", Reason: "must be a finite number"}
	}
	if rate <= MinAnnualReturn || rate > MaxAnnualReturn {
		return &ValidationError{Field: "annualReturn", Reason: "must be greater than -1 and at most 1"}
	}
	return nil
}

type ProjectionResult struct {
	ProjectedValue float64 `json:"projectedValue"`
	AnnualReturn   float64 `json:"annualReturn"`
}

type StatCard struct {
	Title   string  `json:"title"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Statistics backs the dashboard stat cards.
type Statistics struct {
	CurrentSavings    StatCard `json:"currentSavings"`
	MonthlyInvestment StatCard `json:"monthlyInvestment"`
	TimeHorizon       StatCard `json:"timeHorizon"`
	ProjectedValue    StatCard `json:"projectedValue"`
}
