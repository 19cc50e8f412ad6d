package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauge/internal/diagnostic"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Abandon sessions idle past the inactivity window",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cfg, err := diagnostic.ConfigFromEnv()
		if err != nil {
			return err
		}
		cutoff := time.Now().Add(-cfg.InactivityWindow)
		swept, err := st.SessionRepo().AbandonIdle(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("sweep idle sessions: %w", err)
		}
		fmt.Printf("Abandoned %d idle sessions (inactive since %s).\n",
			swept, cutoff.Format("2006-01-02 15:04"))
		return nil
	},
}
