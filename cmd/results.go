package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauge/internal/calibration"
	"github.com/abhisek/gauge/internal/diagnostic"
	"github.com/abhisek/gauge/internal/itembank"
)

var resultsCmd = &cobra.Command{
	Use:   "results <session-id>",
	Short: "Print the report for a completed session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		bank, err := st.ItemRepo().LoadBank(ctx)
		if err != nil {
			return fmt.Errorf("load item bank: %w", err)
		}
		cfg, err := diagnostic.ConfigFromEnv()
		if err != nil {
			return err
		}
		svc, err := diagnostic.NewService(st.SessionRepo(), st.ResponseRepo(), bank,
			calibration.NewService(calibration.DefaultConfig()), cfg)
		if err != nil {
			return fmt.Errorf("build diagnostic service: %w", err)
		}

		r, err := svc.Results(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Session %s (%s, %s)\n", r.SessionID, r.OwnerID, r.Plan.Type)
		fmt.Printf("Finished %s after %s (%s)\n\n",
			r.CompletedAt.Format("2006-01-02 15:04"), r.Duration.Round(1e9), r.Reason)
		fmt.Printf("Ability  θ=%.2f  SE=%.2f\n", r.Theta, r.SE)
		fmt.Printf("Score    %d of %d correct (%.0f%%)\n\n",
			r.CorrectAnswers, r.QuestionsAnswered, r.Accuracy*100)

		for _, d := range itembank.AllDomains() {
			a, ok := r.Domains[d]
			if !ok {
				continue
			}
			if a.NoData {
				fmt.Printf("  %-12s not assessed\n", d)
				continue
			}
			fmt.Printf("  %-12s θ=%+.2f  %d/%d\n", d, a.Theta, a.Correct, a.Administered)
		}

		if len(r.Weak) > 0 {
			fmt.Printf("\nNeeds work: %s\n", joinDomainList(r.Weak))
		}
		if len(r.Strong) > 0 {
			fmt.Printf("Strengths:  %s\n", joinDomainList(r.Strong))
		}
		return nil
	},
}

func joinDomainList(domains []itembank.Domain) string {
	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
