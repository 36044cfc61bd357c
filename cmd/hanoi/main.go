// hanoi is an interactive Tower of Hanoi played with the mouse in the terminal.
//
// Usage:
//
//	hanoi play               - Play in this terminal
//	hanoi serve              - Start SSH server for remote play
//	hanoi sessions           - Browse the session journal
//	hanoi config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--db <path>         - Set journal path (default: ~/.hanoi/sessions.db)
//	--verbose, -v       - Log at debug level
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagVerbose bool
	flagLogFile string

	// Shared by play, serve and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// osExit is replaced in tests.
var osExit = os.Exit

// exitOnError runs a command body and exits with status 1 if it fails.
// The body returns before exiting so its deferred cleanup runs.
func exitOnError(body func() error) {
	if err := body(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Tower of Hanoi - drag disks between pegs in your terminal",
	Long: `Tower of Hanoi for the terminal. Drag disks between three pegs with
the mouse; a disk may only rest on an empty peg or on a larger disk.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  sessions  - Browse the session journal
  config    - Print the effective configuration

Examples:
  hanoi play
  hanoi play --difficulty hard
  hanoi serve --ssh :2222
  hanoi sessions --plain`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hanoi/sessions.db", "Path to session journal")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}
