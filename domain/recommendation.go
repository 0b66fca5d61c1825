package domain

import "time"

type Allocation struct {
	Stocks int `json:"stocks"`
	Bonds  int `json:"bonds"`
	Cash   int `json:"cash"`
}

func (a Allocation) Total() int {
	return a.Stocks + a.Bonds + a.Cash
}

type AiInsights struct {
	Summary          string   `json:"summary"`
	RiskAnalysis     string   `json:"riskAnalysis"`
	MarketConditions string   `json:"marketConditions"`
	Recommendations  []string `json:"recommendations"`
	Considerations   []string `json:"considerations"`
}

// FallbackInsights is the non-personalised insight set served whenever the
// text model cannot produce one. A fresh value is returned on every call.
func FallbackInsights() AiInsights {
	return AiInsights{
		Summary:          "AI-generated insights temporarily unavailable.",
		RiskAnalysis:     "Standard risk analysis based on your profile.",
		MarketConditions: "Please consult current market conditions.",
		Recommendations: []string{
			"Maintain diversified portfolio",
			"Regular portfolio rebalancing",
			"Consider consulting a financial advisor",
		},
		Considerations: []string{
			"Market volatility",
			"Personal risk tolerance",
			"Investment timeline",
		},
	}
}

type InvestmentRecommendation struct {
	ID string `json:"id"`
	Allocation
	Description string     `json:"description"`
	AiInsights  AiInsights `json:"aiInsights"`
	Degraded    bool       `json:"degraded"`
	GeneratedAt time.Time  `json:"generatedAt"`
}
