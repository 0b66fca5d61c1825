package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryLine(t *testing.T) {
	assert.Equal(t, "Invest steadily.", summaryLine("Invest steadily.\nMore text"))
	assert.Equal(t, "Only line", summaryLine("  Only line  "))
	assert.Equal(t, summaryPlaceholder, summaryLine(""))
	assert.Equal(t, summaryPlaceholder, summaryLine("\nSecond line"))
	assert.Equal(t, "Start with an index fund", summaryLine("- Start with an index fund\n- Then add bonds"))
	assert.Equal(t, "Max out tax-advantaged accounts", summaryLine("  1. Max out tax-advantaged accounts"))
	assert.Equal(t, summaryPlaceholder, summaryLine("- \nrest"))
}

func TestPlaceholderExtractor(t *testing.T) {
	got := PlaceholderExtractor{}.Extract("Stay the course.\n- Buy index funds", "Moderate risk.")

	assert.Equal(t, "Stay the course.", got.Summary)
	assert.Equal(t, "Moderate risk.", got.RiskAnalysis)
	assert.Equal(t, "Current market conditions analysis based on AI insights.", got.MarketConditions)
	assert.Equal(t, []string{"Diversify portfolio across multiple asset classes", "Consider regular rebalancing"}, got.Recommendations)
	assert.Equal(t, []string{"Market volatility", "Long-term investment horizon"}, got.Considerations)
}

func TestHeuristicExtractor(t *testing.T) {
	advice := `A balanced plan suits your goals.
Current market valuations are elevated, so phase in new money.
- Buy a broad index fund
* Rebalance once a year
1. Keep six months of expenses in cash
- Watch out for inflation eroding cash`
	risk := "Your risk is moderate.\n- Sequence risk near retirement\n- Job loss"

	got := HeuristicExtractor{}.Extract(advice, risk)

	assert.Equal(t, "A balanced plan suits your goals.", got.Summary)
	assert.Equal(t, risk, got.RiskAnalysis)
	assert.Equal(t, "Current market valuations are elevated, so phase in new money.", got.MarketConditions)
	assert.Equal(t, []string{
		"Buy a broad index fund",
		"Rebalance once a year",
		"Keep six months of expenses in cash",
	}, got.Recommendations)
	assert.Equal(t, []string{
		"Watch out for inflation eroding cash",
		"Sequence risk near retirement",
		"Job loss",
	}, got.Considerations)
}

func TestHeuristicExtractor_BulletedFirstLineIsOnlyTheSummary(t *testing.T) {
	advice := "- Start with a broad index fund\n- Add bonds as you near retirement\n- Rebalance yearly"

	got := HeuristicExtractor{}.Extract(advice, "")

	assert.Equal(t, "Start with a broad index fund", got.Summary)
	assert.Equal(t, []string{"Add bonds as you near retirement", "Rebalance yearly"}, got.Recommendations)
}

func TestHeuristicExtractor_FallsBackPerField(t *testing.T) {
	got := HeuristicExtractor{}.Extract("Plain prose without bullets.", "Low risk.")
	want := PlaceholderExtractor{}.Extract("Plain prose without bullets.", "Low risk.")

	assert.Equal(t, want, got)
}

func TestHeuristicExtractor_CapsAndDedupes(t *testing.T) {
	advice := "Summary\n- a\n- a\n- b\n- c\n- d\n- e\n- f\n- g"

	got := HeuristicExtractor{}.Extract(advice, "")

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got.Recommendations)
}

func TestParseExtractor(t *testing.T) {
	e, err := ParseExtractor("")
	require.NoError(t, err)
	assert.Equal(t, "heuristic", e.Name())

	e, err = ParseExtractor("placeholder")
	require.NoError(t, err)
	assert.Equal(t, "placeholder", e.Name())

	_, err = ParseExtractor("nlp")
	assert.Error(t, err)
}
