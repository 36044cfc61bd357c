package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagDisks int
	flagMenu  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tower of Hanoi",
	Long: `Start a puzzle in this terminal. All disks start on the left peg.

Controls:
  Mouse      - Drag the top disk of a peg onto another peg
  Esc        - Open/close settings (colors, restart, exit)
  R          - Restart (settings open)
  B / C      - Next background / disk color (settings open)
  Q          - Quit
  Ctrl+C     - Quit from anywhere

Difficulty options:
  easy   - 3 disks
  normal - 5 disks
  hard   - 7 disks

Logs are discarded unless --log-file is given, so they never draw over
the game.

Examples:
  hanoi play
  hanoi play --difficulty easy
  hanoi play --disks 8
  hanoi play --menu
  hanoi play --config ./my-hanoi.yaml -v --log-file hanoi.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagDisks, "disks", 0, fmt.Sprintf("Number of disks (%d-%d), overrides --difficulty", config.MinDisks, config.MaxDisks))
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick the difficulty from a menu")
}

// loadConfig resolves the board config. Flags win over HANOI_* variables,
// which win over the config file.
func loadConfig() (config.HanoiConfig, config.Source, error) {
	envCfg, err := config.ParseEnv()
	if err != nil {
		return config.DefaultHanoiConfig(), config.SourceBuiltin, err
	}

	path := flagConfig
	if path == "" {
		path = envCfg.Config
	}
	cfg, src, err := config.LoadHanoi(path)
	if err != nil {
		return cfg, src, err
	}
	if err := envCfg.Apply(&cfg); err != nil {
		return cfg, src, err
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.IsKnownPreset(preset) {
			return cfg, src, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagDisks != 0 {
		cfg.Disks = flagDisks
	}
	return cfg, src, cfg.Validate()
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// localUser names the player for the journal.
func localUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}

func runPlay(_ *cobra.Command, _ []string) {
	exitOnError(playMain)
}

func playMain() error {
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, src, err := loadConfig()
	if err != nil {
		logger.Error("config", "err", err)
		return err
	}
	logger.Debug("config loaded", "source", src, "disks", cfg.Disks)

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open the session journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session journal: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := play(cfg, store, logger, rc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func play(cfg config.HanoiConfig, store *storage.Store, logger *log.Logger, rc core.RuntimeConfig) error {
	session := tui.NewSession(store, logger, localUser(), "")

	if flagMenu {
		return tui.RunSession(cfg, session, logger, rc)
	}

	game, err := hanoi.New(cfg, rc)
	if err != nil {
		return err
	}
	session.Begin(string(config.PresetForDisks(cfg.Disks)), cfg.Disks)
	return tui.Run(game, session, logger, rc)
}
