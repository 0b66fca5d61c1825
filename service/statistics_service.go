package service

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/sanhariharan/invesplannner/domain"
)

// StatisticsService builds the dashboard stat cards for a profile.
type StatisticsService struct {
	annualReturn float64
	currency     string
}

func NewStatisticsService(annualReturn float64, currency string) *StatisticsService {
	if currency == "" || money.GetCurrency(currency) == nil {
		currency = money.USD
	}
	return &StatisticsService{annualReturn: annualReturn, currency: currency}
}

func (s *StatisticsService) AnnualReturn() float64 {
	return s.annualReturn
}

// Build validates the profile and renders its stat cards. A projection too
// large to display is reported against the horizon.
func (s *StatisticsService) Build(profile domain.UserProfile) (domain.Statistics, error) {
	if err := profile.Validate(); err != nil {
		return domain.Statistics{}, err
	}

	savings, err := s.moneyCard("Current Savings", profile.CurrentSavings)
	if err != nil {
		return domain.Statistics{}, err
	}
	monthly, err := s.moneyCard("Monthly Investment", profile.MonthlyInvestment)
	if err != nil {
		return domain.Statistics{}, err
	}

	projected := ProjectValue(profile.CurrentSavings, profile.MonthlyInvestment, profile.TimeHorizon, s.annualReturn)
	projectedCard, err := s.moneyCard("Projected Value", projected)
	if err != nil {
		return domain.Statistics{}, &domain.ValidationError{Field: "timeHorizon", Reason: "projected value exceeds the supported range"}
	}

	return domain.Statistics{
		CurrentSavings:    savings,
		MonthlyInvestment: monthly,
		TimeHorizon: domain.StatCard{
			Title:   "Time Horizon",
			Value:   float64(profile.TimeHorizon),
			Display: fmt.Sprintf("%d years", profile.TimeHorizon),
		},
		ProjectedValue: projectedCard,
	}, nil
}

func (s *StatisticsService) moneyCard(title string, amount float64) (domain.StatCard, error) {
	display, err := s.FormatMoney(amount)
	if err != nil {
		return domain.StatCard{}, err
	}
	return domain.StatCard{Title: title, Value: amount, Display: display}, nil
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// FormatMoney renders an amount in major units, e.g. 10000 -> "$10,000.00".
// Non-finite amounts and amounts whose minor units overflow int64 are errors.
func (s *StatisticsService) FormatMoney(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", &domain.DomainError{Op: "format money", Reason: "amount is not finite"}
	}
	cur := money.GetCurrency(s.currency)
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return "", &domain.DomainError{Op: "format money", Reason: "amount out of range"}
	}
	return money.New(minor.IntPart(), s.currency).Display(), nil
}
