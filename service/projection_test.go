package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanhariharan/invesplannner/domain"
)

func TestProjectValue(t *testing.T) {
	tests := []struct {
		name    string
		savings float64
		monthly float64
		years   int
		rate    float64
		want    float64
	}{
		{"nothing invested", 0, 0, 10, 0.07, 0},
		{"nothing invested zero rate", 0, 0, 30, 0, 0},
		{"lump sum zero rate", 1000, 0, 10, 0, 1000},
		{"contributions zero rate one year", 0, 100, 1, 0, 1200},
		{"contributions zero rate twelve years", 0, 100, 12, 0, 14400},
		{"lump sum one year", 1000, 0, 1, 0.1, 1100},
		{"lump sum compounds annually", 1000, 0, 10, 0.07, 1967},
		{"savings and contributions", 10000, 500, 20, 0.07, 299160},
		{"dashboard default", 5000, 200, 10, DefaultAnnualReturn, 44453},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectValue(tt.savings, tt.monthly, tt.years, tt.rate))
		})
	}
}

func TestProjectValue_FiniteWithinLimits(t *testing.T) {
	for _, rate := range []float64{-0.99, 0, DefaultAnnualReturn, domain.MaxAnnualReturn} {
		got := ProjectValue(domain.MaxAmount, domain.MaxAmount, domain.MaxTimeHorizonYears, rate)
		assert.False(t, math.IsInf(got, 0) || math.IsNaN(got), "rate %v gave %v", rate, got)
	}
}
