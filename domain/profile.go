package domain

import "math"

const (
	MaxTimeHorizonYears = 100  // años
	MaxAmount           = 1e12 // tope para montos en unidades mayores
)

type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

func (r RiskTolerance) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

type InvestmentGoal string

const (
	GoalRetirement InvestmentGoal = "retirement"
	GoalShortTerm  InvestmentGoal = "shortTerm"
	GoalWealth     InvestmentGoal = "wealth"
	GoalEducation  InvestmentGoal = "education"
)

func (g InvestmentGoal) Valid() bool {
	switch g {
	case GoalRetirement, GoalShortTerm, GoalWealth, GoalEducation:
		return true
	}
	return false
}

type ExistingInvestments struct {
	Stocks *float64 `json:"stocks,omitempty"`
	Bonds  *float64 `json:"bonds,omitempty"`
	Cash   *float64 `json:"cash,omitempty"`
	Other  *float64 `json:"other,omitempty"`
}

// UserProfile is a submitted questionnaire. The optional fields are carried
// through to prompts but no allocation rule reads them yet.
type UserProfile struct {
	RiskTolerance     RiskTolerance  `json:"riskTolerance"`
	InvestmentGoal    InvestmentGoal `json:"investmentGoal"`
	MonthlyInvestment float64        `json:"monthlyInvestment"`
	TimeHorizon       int            `json:"timeHorizon"`
	Age               int            `json:"age"`
	CurrentSavings    float64        `json:"currentSavings"`

	Income              *float64             `json:"income,omitempty"`
	Expenses            *float64             `json:"expenses,omitempty"`
	Dependents          *int                 `json:"dependents,omitempty"`
	ExistingInvestments *ExistingInvestments `json:"existingInvestments,omitempty"`
}

// Validate reports the first field that makes the profile incomplete or malformed.
func (p UserProfile) Validate() error {
	if !p.RiskTolerance.Valid() {
		return &ValidationError{Field: "riskTolerance", Reason: "must be conservative, moderate or aggressive"}
	}
	if !p.InvestmentGoal.Valid() {
		return &ValidationError{Field: "investmentGoal", Reason: "must be retirement, shortTerm, wealth or education"}
	}
	if err := checkAmount("monthlyInvestment", p.MonthlyInvestment); err != nil {
		return err
	}
	if err := checkHorizon(p.TimeHorizon); err != nil {
		return err
	}
	if err := checkAmount("currentSavings", p.CurrentSavings); err != nil {
		return err
	}

	if p.Income != nil {
		if err := checkAmount("income", *p.Income); err != nil {
			return err
		}
	}
	if p.Expenses != nil {
		if err := checkAmount("expenses", *p.Expenses); err != nil {
			return err
		}
	}
	if p.Dependents != nil && *p.Dependents < 0 {
		return &ValidationError{Field: "dependents", Reason: "must not be negative"}
	}
	if ei := p.ExistingInvestments; ei != nil {
		holdings := []struct {
			name  string
			value *float64
		}{
			{"existingInvestments.stocks", ei.Stocks},
			{"existingInvestments.bonds", ei.Bonds},
			{"existingInvestments.cash", ei.Cash},
			{"existingInvestments.other", ei.Other},
		}
		for _, h := range holdings {
			if h.value == nil {
				continue
			}
			if err := checkAmount(h.name, *h.value); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	if v > MaxAmount {
		return &ValidationError{Field: field, Reason: "must not exceed 1,000,000,000,000"}
	}
	return nil
}

func checkHorizon(years int) error {
	if years <= 0 {
		return &ValidationError{Field: "timeHorizon", Reason: "must be a positive number of years"}
	}
	if years > MaxTimeHorizonYears {
		return &ValidationError{Field: "timeHorizon", Reason: "must not exceed 100 years"}
	}
	return nil
}

// ProfileInput is the wire shape of a questionnaire submission. Required
// fields are pointers so that an absent field can be told apart from zero.
type ProfileInput struct {
	RiskTolerance     *string  `json:"riskTolerance"`
	InvestmentGoal    *string  `json:"investmentGoal"`
	MonthlyInvestment *float64 `json:"monthlyInvestment"`
	TimeHorizon       *float64 `json:"timeHorizon"`
	Age               *float64 `json:"age"`
	CurrentSavings    *float64 `json:"currentSavings"`

	Income              *float64             `json:"income,omitempty"`
	Expenses            *float64             `json:"expenses,omitempty"`
	Dependents          *int                 `json:"dependents,omitempty"`
	ExistingInvestments *ExistingInvestments `json:"existingInvestments,omitempty"`
}

// ToProfile converts a submission into a complete, validated profile.
func (in ProfileInput) ToProfile() (UserProfile, error) {
	switch {
	case in.RiskTolerance == nil:
		return UserProfile{}, missing("riskTolerance")
	case in.InvestmentGoal == nil:
		return UserProfile{}, missing("investmentGoal")
	case in.MonthlyInvestment == nil:
		return UserProfile{}, missing("monthlyInvestment")
	case in.TimeHorizon == nil:
		return UserProfile{}, missing("timeHorizon")
	case in.Age == nil:
		return UserProfile{}, missing("age")
	case in.CurrentSavings == nil:
		return UserProfile{}, missing("currentSavings")
	}

	horizon, err := wholeNumber("timeHorizon", *in.TimeHorizon)
	if err != nil {
		return UserProfile{}, err
	}
	age, err := wholeNumber("age", *in.Age)
	if err != nil {
		return UserProfile{}, err
	}

	p := UserProfile{
		RiskTolerance:       RiskTolerance(*in.RiskTolerance),
		InvestmentGoal:      InvestmentGoal(*in.InvestmentGoal),
		MonthlyInvestment:   *in.MonthlyInvestment,
		TimeHorizon:         horizon,
		Age:                 age,
		CurrentSavings:      *in.CurrentSavings,
		Income:              in.Income,
		Expenses:            in.Expenses,
		Dependents:          in.Dependents,
		ExistingInvestments: in.ExistingInvestments,
	}
	if err := p.Validate(); err != nil {
		return UserProfile{}, err
	}
	return p, nil
}

func missing(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

func wholeNumber(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if v != math.Trunc(v) {
		return 0, &ValidationError{Field: field, Reason: "must be a whole number"}
	}
	return int(v), nil
}
