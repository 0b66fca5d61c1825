package service

import (
	"fmt"
	"math"

	"github.com/sanhariharan/invesplannner/domain"
)

// AllocationVariant selects which adjustment pipeline the engine runs.
type AllocationVariant string

const (
	// VariantExtended applies the age adjustment and normalises without clamping.
	VariantExtended AllocationVariant = "extended"
	// VariantSimple skips the age adjustment and clamps each bucket before normalising.
	VariantSimple AllocationVariant = "simple"
)

func ParseAllocationVariant(s string) (AllocationVariant, error) {
	switch AllocationVariant(s) {
	case VariantExtended, VariantSimple:
		return AllocationVariant(s), nil
	case "":
		return VariantExtended, nil
	}
	return "", fmt.Errorf("unknown allocation variant %q", s)
}

type bounds struct{ min, max float64 }

var (
	baseAllocation = map[domain.RiskTolerance]weights{
		domain.RiskConservative: {stocks: 40, bonds: 50, cash: 10},
		domain.RiskModerate:     {stocks: 60, bonds: 35, cash: 5},
		domain.RiskAggressive:   {stocks: 80, bonds: 15, cash: 5},
	}

	shortHorizonDelta = weights{stocks: -20, bonds: 10, cash: 10}
	longHorizonDelta  = weights{stocks: 10, bonds: -5, cash: -5}
	seniorDelta       = weights{stocks: -10, bonds: 5, cash: 5}

	stockBounds = bounds{20, 90}
	bondBounds  = bounds{10, 70}
	cashBounds  = bounds{5, 30}
)

// weights holds unnormalised percentages; they may leave [0,100] between steps.
type weights struct {
	stocks, bonds, cash float64
}

func (w weights) add(d weights) weights {
	return weights{stocks: w.stocks + d.stocks, bonds: w.bonds + d.bonds, cash: w.cash + d.cash}
}

type AllocationService struct {
	variant AllocationVariant
}

func NewAllocationService(variant AllocationVariant) *AllocationService {
	if variant == "" {
		variant = VariantExtended
	}
	return &AllocationService{variant: variant}
}

func (s *AllocationService) Variant() AllocationVariant {
	return s.variant
}

// ComputeAllocation maps a profile to a stocks/bonds/cash split summing to 100.
// Adjustments are applied in order as additive deltas.
func (s *AllocationService) ComputeAllocation(profile domain.UserProfile) (domain.Allocation, error) {
	if err := profile.Validate(); err != nil {
		return domain.Allocation{}, err
	}

	w := baseAllocation[profile.RiskTolerance]

	switch {
	case profile.TimeHorizon < ShortHorizonYears:
		w = w.add(shortHorizonDelta)
	case profile.TimeHorizon > LongHorizonYears:
		w = w.add(longHorizonDelta)
	}

	if s.variant == VariantExtended && profile.Age > SeniorAge {
		w = w.add(seniorDelta)
	}

	if s.variant == VariantSimple {
		w = weights{
			stocks: clamp(w.stocks, stockBounds),
			bonds:  clamp(w.bonds, bondBounds),
			cash:   clamp(w.cash, cashBounds),
		}
	}

	return normalize(w)
}

func clamp(v float64, b bounds) float64 {
	return math.Max(b.min, math.Min(b.max, v))
}

// normalize scales to 100. Cash takes the rounding remainder so the sum is exact.
func normalize(w weights) (domain.Allocation, error) {
	total := w.stocks + w.bonds + w.cash
	if total <= 0 {
		return domain.Allocation{}, &domain.DomainError{
			Op:     "normalize allocation",
			Reason: fmt.Sprintf("non-positive total %.2f", total),
		}
	}

	stocks := int(math.Round(w.stocks / total * 100))
	bonds := int(math.Round(w.bonds / total * 100))
	a := domain.Allocation{
		Stocks: stocks,
		Bonds:  bonds,
		Cash:   100 - stocks - bonds,
	}

	if a.Stocks < 0 || a.Bonds < 0 || a.Cash < 0 {
		return domain.Allocation{}, &domain.DomainError{
			Op:     "normalize allocation",
			Reason: fmt.Sprintf("negative bucket in %+v", a),
		}
	}
	return a, nil
}
