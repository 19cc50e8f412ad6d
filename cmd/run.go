package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauge/internal/calibration"
	"github.com/abhisek/gauge/internal/diagnostic"
	"github.com/abhisek/gauge/internal/itembank"
	"github.com/abhisek/gauge/internal/llm"
	"github.com/abhisek/gauge/internal/report"
	"github.com/abhisek/gauge/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start or resume a diagnostic session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiagnostic(cmd)
	},
}

func init() {
	runCmd.Flags().String("type", "quick", "Diagnostic type: quick or full")
	runCmd.Flags().String("domain", "", "Run a domain-focused diagnostic on this domain")
	runCmd.Flags().String("owner", "", "Learner name (skips the name prompt)")
}

// flagOr reads a string flag, falling back when the command does not
// define it. The bare root command delegates here without the run flags.
func flagOr(cmd *cobra.Command, name, fallback string) string {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return fallback
}

func runDiagnostic(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// First run seeds the built-in bank.
	count, err := st.ItemRepo().Count(ctx)
	if err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if count == 0 {
		seed, err := itembank.SeedBank()
		if err != nil {
			return fmt.Errorf("load seed bank: %w", err)
		}
		if err := st.ItemRepo().ReplaceBank(ctx, seed); err != nil {
			return fmt.Errorf("seed item bank: %w", err)
		}
	}
	bank, err := st.ItemRepo().LoadBank(ctx)
	if err != nil {
		return fmt.Errorf("load item bank: %w", err)
	}

	cfg, err := diagnostic.ConfigFromEnv()
	if err != nil {
		return err
	}
	cal := calibration.NewService(calibration.DefaultConfig())
	svc, err := diagnostic.NewService(st.SessionRepo(), st.ResponseRepo(), bank, cal, cfg)
	if err != nil {
		return fmt.Errorf("build diagnostic service: %w", err)
	}

	// Sweep stale sessions so an abandoned run does not block a new one.
	if _, err := svc.SweepIdle(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "idle session sweep failed:", err)
	}

	plan, err := planFromFlags(cmd)
	if err != nil {
		return err
	}

	// LLM narrative is optional — the summary falls back to a static
	// report without it.
	var provider llm.Provider
	if llmCfg, ok := llm.Discover(); ok {
		p, err := llm.NewProvider(ctx, llmCfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI summary will be unavailable.")
		} else {
			provider = llm.WithLogging(p, st.EventRepo(), report.Purpose)
		}
	}
	reporter := report.NewGenerator(provider)

	return tui.Run(svc, reporter, plan, flagOr(cmd, "owner", ""))
}

func planFromFlags(cmd *cobra.Command) (diagnostic.Plan, error) {
	if domain := flagOr(cmd, "domain", ""); domain != "" {
		d := itembank.Domain(domain)
		if !itembank.ValidDomain(d) {
			return diagnostic.Plan{}, fmt.Errorf("unknown domain %q", domain)
		}
		return diagnostic.DomainFocusedPlan(d), nil
	}
	return diagnostic.PlanFor(diagnostic.Type(flagOr(cmd, "type", "quick")))
}
