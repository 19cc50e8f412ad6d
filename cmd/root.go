package cmd

import (
	"github.com/abhisek/gauge/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gauge",
	Short: "Adaptive math placement test",
	Long:  "Gauge — terminal adaptive diagnostic that places grade 3-5 learners across six math domains.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiagnostic(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GAUGE_DB env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GAUGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
