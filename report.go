package main

import (
	"fmt"
	"strings"

	"github.com/sanhariharan/invesplannner/domain"
)

// renderReport lays out a recommendation and its stat cards as markdown.
func renderReport(rec domain.InvestmentRecommendation, stats domain.Statistics) string {
	var b strings.Builder

	b.WriteString("# Your Investment Plan\n\n")

	b.WriteString("| Current Savings | Monthly Investment | Time Horizon | Projected Value |\n")
	b.WriteString("|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n\n",
		stats.CurrentSavings.Display, stats.MonthlyInvestment.Display,
		stats.TimeHorizon.Display, stats.ProjectedValue.Display)

	b.WriteString("## Recommended Portfolio Allocation\n\n")
	b.WriteString("| Asset | Allocation |\n|---|---|\n")
	fmt.Fprintf(&b, "| Stocks | %d%% |\n| Bonds | %d%% |\n| Cash | %d%% |\n\n", rec.Stocks, rec.Bonds, rec.Cash)
	b.WriteString(rec.Description + "\n\n")

	b.WriteString("## AI Insights\n\n")
	if rec.Degraded {
		b.WriteString("> Personalised insights are unavailable right now; showing general guidance.\n\n")
	}
	ins := rec.AiInsights
	b.WriteString("**Summary:** " + ins.Summary + "\n\n")
	b.WriteString("**Risk Analysis:** " + ins.RiskAnalysis + "\n\n")
	b.WriteString("**Market Conditions:** " + ins.MarketConditions + "\n\n")
	writeList(&b, "Recommendations", ins.Recommendations)
	writeList(&b, "Key Considerations", ins.Considerations)

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")
}
