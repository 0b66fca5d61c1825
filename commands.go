package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/sanhariharan/invesplannner/config"
	"github.com/sanhariharan/invesplannner/domain"
	httpLayer "github.com/sanhariharan/invesplannner/http"
	"github.com/sanhariharan/invesplannner/logger"
)

var cfgPath string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "invesplanner",
		Short:         "Portfolio allocation recommendations from a financial profile",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a config file (yaml, json or toml)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newRecommendCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	a, err := newApp(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}
	defer a.Close(log)

	limiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer limiter.Stop()

	server := httpLayer.NewServer(a.router(cfg, log, limiter), httpLayer.ServerConfig{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx)
}

type recommendFlags struct {
	risk     string
	goal     string
	monthly  float64
	horizon  int
	age      int
	savings  float64
	asJSON   bool
	wordWrap int
}

func newRecommendCmd() *cobra.Command {
	var f recommendFlags

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Build a recommendation for a profile and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd.Context(), f)
		},
	}

	cmd.Flags().StringVar(&f.risk, "risk", "", "risk tolerance: conservative, moderate or aggressive")
	cmd.Flags().StringVar(&f.goal, "goal", "", "investment goal: retirement, shortTerm, wealth or education")
	cmd.Flags().Float64Var(&f.monthly, "monthly", 0, "monthly investment")
	cmd.Flags().IntVar(&f.horizon, "horizon", 0, "time horizon in years")
	cmd.Flags().IntVar(&f.age, "age", 0, "age in years")
	cmd.Flags().Float64Var(&f.savings, "savings", 0, "current savings")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print JSON instead of a formatted report")
	cmd.Flags().IntVar(&f.wordWrap, "width", 100, "report word wrap width")

	for _, name := range []string{"risk", "goal", "monthly", "horizon", "age", "savings"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func runRecommend(ctx context.Context, f recommendFlags) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Los logs van a stderr para no mezclarse con el reporte.
	log := logger.NewWithWriter(logger.Config{Level: cfg.Log.Level, Pretty: true}, os.Stderr)

	a, err := newApp(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}
	defer a.Close(log)

	profile := domain.UserProfile{
		RiskTolerance:     domain.RiskTolerance(f.risk),
		InvestmentGoal:    domain.InvestmentGoal(f.goal),
		MonthlyInvestment: f.monthly,
		TimeHorizon:       f.horizon,
		Age:               f.age,
		CurrentSavings:    f.savings,
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	rec, err := a.recommendations.BuildRecommendation(ctx, profile)
	if err != nil {
		return err
	}
	stats, err := a.statistics.Build(profile)
	if err != nil {
		return err
	}

	if f.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Recommendation domain.InvestmentRecommendation `json:"recommendation"`
			Statistics     domain.Statistics               `json:"statistics"`
		}{rec, stats})
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(f.wordWrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(renderReport(rec, stats))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = fmt.Fprint(os.Stdout, out)
	return err
}
