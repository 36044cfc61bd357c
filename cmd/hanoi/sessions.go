package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse the session journal",
	Long: `Show recently played sessions: who played, how many disks, how often
they restarted, and for how long.

In a terminal this opens an interactive table; with --plain, or when
output is redirected, it prints a plain listing.

Examples:
  hanoi sessions
  hanoi sessions --plain --limit 5
  hanoi sessions --clear`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Sessions to list with --plain")
	sessionsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain listing instead of the browser")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every journaled session")
}

func runSessions(_ *cobra.Command, _ []string) {
	exitOnError(sessionsMain)
}

func sessionsMain() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening session journal: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("Session journal cleared.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		return tui.RunJournal(store, width, height)
	}

	return printSessions(store)
}

func printSessions(store *storage.Store) error {
	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Session Journal")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'hanoi play' to start one!")
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %-7s  %-5s  %-8s  %s\n", "Started", "User", "Preset", "Disks", "Restarts", "Duration")
	fmt.Printf("  %-16s  %-12s  %-7s  %-5s  %-8s  %s\n", "-------", "----", "------", "-----", "--------", "--------")
	for _, s := range sessions {
		preset := s.Preset
		if preset == "" {
			preset = "custom"
		}
		fmt.Printf("  %-16s  %-12s  %-7s  %-5d  %-8d  %s\n",
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.User, preset, s.Disks, s.Restarts, tui.FormatDuration(s))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(tui.FormatStats(stats))
	return nil
}
