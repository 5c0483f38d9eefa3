package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-grid/internal/config"
	"github.com/vovakirdan/tui-grid/internal/platform/tui"
	"github.com/vovakirdan/tui-grid/internal/storage"
)

var (
	flagHistoryPlain bool
	flagHistoryRule  string
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded sessions",
	Long: `Shows the sessions recorded in the session database.

On a terminal this opens an interactive browser with one tab per rule.
With --plain, or when stdout is not a terminal, a table is printed instead.

Examples:
  grid history
  grid history --plain --rule life --limit 20
  grid history --clear --rule seeds`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a table instead of the interactive browser")
	historyCmd.Flags().StringVar(&flagHistoryRule, "rule", "", "Only show sessions for this rule")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum sessions to print with --plain")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete recorded sessions (all, or --rule only)")
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func runHistory(cmd *cobra.Command, args []string) {
	dbPath := flagDBPath
	if dbPath == "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dbPath = cfg.DBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(flagHistoryRule); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session history cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printHistory(store, flagHistoryRule, flagHistoryLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store, rule string, limit int) error {
	var (
		sessions []storage.SessionRecord
		err      error
	)
	if rule == "" {
		sessions, err = store.RecentSessions(limit)
	} else {
		sessions, err = store.SessionsByRule(rule, limit)
	}
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'grid' to record the first one!")
		return nil
	}

	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = tui.HistoryRow(s)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderHeader(true).
		BorderRow(false).
		Headers(tui.HistoryColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
	fmt.Println(t.Render())

	if rule != "" {
		stats, err := store.StatsForRule(rule)
		if err == nil {
			fmt.Printf("%d sessions, best %d generations, peak population %d\n",
				stats.Sessions, stats.MaxGenerations, stats.MaxPopulation)
		}
	}
	return nil
}
