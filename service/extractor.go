package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sanhariharan/invesplannner/domain"
)

// InsightExtractor derives structured insights from the two model responses.
// Every field of the result must be populated.
type InsightExtractor interface {
	Name() string
	Extract(advice, riskAnalysis string) domain.AiInsights
}

func ParseExtractor(name string) (InsightExtractor, error) {
	switch name {
	case "placeholder":
		return PlaceholderExtractor{}, nil
	case "heuristic", "":
		return HeuristicExtractor{}, nil
	}
	return nil, fmt.Errorf("unknown insight extractor %q", name)
}

// PlaceholderExtractor reads only the summary line and passes the risk
// analysis through; the other fields are fixed text.
type PlaceholderExtractor struct{}

func (PlaceholderExtractor) Name() string { return "placeholder" }

func (PlaceholderExtractor) Extract(advice, riskAnalysis string) domain.AiInsights {
	return domain.AiInsights{
		Summary:          summaryLine(advice),
		RiskAnalysis:     riskAnalysis,
		MarketConditions: "Current market conditions analysis based on AI insights.",
		Recommendations: []string{
			"Diversify portfolio across multiple asset classes",
			"Consider regular rebalancing",
		},
		Considerations: []string{
			"Market volatility",
			"Long-term investment horizon",
		},
	}
}

// summaryLine is the first line of the advice without any list marker, or a
// placeholder when that line is blank.
func summaryLine(advice string) string {
	first, _, _ := strings.Cut(advice, "\n")
	first = strings.TrimSpace(bulletPattern.ReplaceAllString(first, ""))
	if first == "" {
		return summaryPlaceholder
	}
	return first
}

const maxExtractedItems = 5

var (
	bulletPattern        = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)
	considerationPattern = regexp.MustCompile(`(?i)\b(risk|volatil\w*|inflation|uncertain\w*|downturn|drawdown|liquidity)\b`)
	marketPattern        = regexp.MustCompile(`(?i)\bmarkets?\b`)
)

// HeuristicExtractor pulls bullet points and keyword lines out of the model
// text. Any field it cannot fill falls back to PlaceholderExtractor's value.
type HeuristicExtractor struct{}

func (HeuristicExtractor) Name() string { return "heuristic" }

func (HeuristicExtractor) Extract(advice, riskAnalysis string) domain.AiInsights {
	insights := PlaceholderExtractor{}.Extract(advice, riskAnalysis)

	var market string
	var recommendations, considerations []string

	for i, line := range lines(advice) {
		// La primera línea ya es el resumen.
		if i == 0 {
			continue
		}
		bullet := bulletPattern.MatchString(line)
		text := strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
		if text == "" {
			continue
		}
		if market == "" && marketPattern.MatchString(text) {
			market = text
		}
		if !bullet {
			continue
		}
		if considerationPattern.MatchString(text) {
			considerations = appendCapped(considerations, text)
		} else {
			recommendations = appendCapped(recommendations, text)
		}
	}

	for _, line := range lines(riskAnalysis) {
		if !bulletPattern.MatchString(line) {
			continue
		}
		text := strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
		if text != "" {
			considerations = appendCapped(considerations, text)
		}
	}

	if market != "" {
		insights.MarketConditions = market
	}
	if len(recommendations) > 0 {
		insights.Recommendations = recommendations
	}
	if len(considerations) > 0 {
		insights.Considerations = considerations
	}
	return insights
}

func lines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func appendCapped(items []string, item string) []string {
	if len(items) >= maxExtractedItems {
		return items
	}
	for _, existing := range items {
		if existing == item {
			return items
		}
	}
	return append(items, item)
}
