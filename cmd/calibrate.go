package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauge/internal/calibration"
	"github.com/abhisek/gauge/internal/itembank"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Re-estimate item parameters from the response log",
	Long: "Recomputes 3PL parameters for every item with enough responses from " +
		"completed sessions and stores them as empirical calibrations.",
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

		cfg := calibration.DefaultConfig()
		minSample := cfg.RequiredSampleSize()
		now := time.Now()

		var updated, skipped int
		for _, it := range bank.Items() {
			points, err := st.ResponseRepo().CalibrationPoints(ctx, it.ID)
			if err != nil {
				return fmt.Errorf("load responses for %s: %w", it.ID, err)
			}

			params, ok := calibration.EstimateParams(points, len(it.Options), minSample)
			if !ok {
				skipped++
				continue
			}
			if err := st.ItemRepo().UpdateParams(ctx, it.ID, params, len(points), itembank.SourceEmpirical, now); err != nil {
				return fmt.Errorf("update %s: %w", it.ID, err)
			}
			fmt.Printf("%-14s a=%.2f b=%.2f c=%.2f (n=%d)\n",
				it.ID, params.Discrimination, params.Difficulty, params.Guessing, len(points))
			updated++
		}

		fmt.Printf("\nCalibrated %d items, skipped %d (fewer than %d responses or degenerate).\n",
			updated, skipped, minSample)
		return nil
	},
}
