package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grid/internal/registry"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List built-in rules",
	Long: `Shows every rule registered with the simulation.

Any rule can also be given in B/S notation in the config file,
for example "B36/S23".`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	rules := registry.List()

	if len(rules) == 0 {
		fmt.Println("No rules available.")
		return
	}

	fmt.Println("Available rules:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, r := range rules {
		maxIDLen = max(maxIDLen, len(r.ID))
		maxTitleLen = max(maxTitleLen, len(r.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Notation")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "--------")

	for _, r := range rules {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, r.ID, maxTitleLen, r.Title, r.Rule)
	}

	fmt.Println()
	fmt.Println("Set 'rule: <id>' in the config file to choose one.")
}
