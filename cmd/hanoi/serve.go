package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Hanoi SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own puzzle after picking a difficulty.
Nothing is shared between players except the session journal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hanoi/host_key

Examples:
  hanoi serve                           # Listen on :23234 with auto-generated key
  hanoi serve --ssh :2222               # Listen on port 2222
  hanoi serve --host-key ./my_host_key  # Use specific host key
  hanoi serve --db ./sessions.db        # Use specific journal

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preset highlighted in the menu: easy, normal, hard")
}

func runServe(_ *cobra.Command, _ []string) {
	exitOnError(serveMain)
}

func serveMain() error {
	hanoiCfg, src, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", src, "disks", hanoiCfg.Disks)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Hanoi = hanoiCfg

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Hanoi SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
