package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauge/internal/calibration"
	"github.com/abhisek/gauge/internal/itembank"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage the question bank",
}

var itemsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the question bank from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read bank file: %w", err)
		}
		bank, err := itembank.ParseBank(raw)
		if err != nil {
			return fmt.Errorf("parse bank file: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ItemRepo().ReplaceBank(cmd.Context(), bank); err != nil {
			return fmt.Errorf("replace item bank: %w", err)
		}
		fmt.Printf("Imported %d items.\n", bank.Len())
		return nil
	},
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bank items with their parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		bank, err := st.ItemRepo().LoadBank(cmd.Context())
		if err != nil {
			return fmt.Errorf("load item bank: %w", err)
		}

		items := bank.Items()
		sort.Slice(items, func(i, j int) bool {
			if items[i].Domain != items[j].Domain {
				return items[i].Domain < items[j].Domain
			}
			return items[i].ID < items[j].ID
		})

		fmt.Printf("%-14s %-12s %6s %6s %6s  %-14s %s\n",
			"ID", "DOMAIN", "A", "B", "C", "SOURCE", "N")
		for _, it := range items {
			fmt.Printf("%-14s %-12s %6.2f %6.2f %6.2f  %-14s %d\n",
				it.ID, it.Domain,
				it.Params.Discrimination, it.Params.Difficulty, it.Params.Guessing,
				it.Calibration.Source, it.Calibration.SampleSize)
		}
		return nil
	},
}

var itemsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate bank items and report calibration coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		bank, err := st.ItemRepo().LoadBank(cmd.Context())
		if err != nil {
			return fmt.Errorf("load item bank: %w", err)
		}

		var broken int
		sources := make(map[string]int)
		cal := calibration.NewService(calibration.DefaultConfig())
		for _, it := range bank.Items() {
			if err := it.Validate(); err != nil {
				broken++
				fmt.Println("invalid:", err)
				continue
			}
			_, source := cal.Resolve(it, bank)
			sources[source]++
		}

		fmt.Printf("\n%d items, %d invalid\n\n", bank.Len(), broken)
		fmt.Println("Calibration coverage:")
		for _, source := range []string{itembank.SourceEmpirical, itembank.SourceDomainAverage, itembank.SourceDefault} {
			fmt.Printf("  %-14s %d\n", source, sources[source])
		}

		fmt.Println("\nPer-domain counts:")
		for _, d := range itembank.AllDomains() {
			fmt.Printf("  %-12s %d\n", d, bank.DomainCounts()[d])
		}
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsImportCmd)
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsCheckCmd)
}
