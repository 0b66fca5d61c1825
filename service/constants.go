package service

import "time"

const (
	ShortHorizonYears = 5  // por debajo: horizonte corto
	LongHorizonYears  = 15 // por encima: horizonte largo
	SeniorAge         = 60 // por encima: ajuste por edad

	DefaultAnnualReturn = 0.07

	// Parámetros de generación de texto
	AdviceMaxLength   = 500
	AdviceTemperature = 0.7
	RiskMaxLength     = 300
	RiskTemperature   = 0.6

	DefaultInsightTimeout = 20 * time.Second
	DefaultInitTimeout    = 30 * time.Second
	DefaultInsightTTL     = time.Hour

	summaryPlaceholder = "AI-generated investment summary not available."
)
