package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/safezone/internal/audio"
	"github.com/vovakirdan/safezone/internal/games/safezone"
	"github.com/vovakirdan/safezone/internal/platform/tui"
	"github.com/vovakirdan/safezone/internal/registry"
	"github.com/vovakirdan/safezone/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play Safe Zone",
	Long: `Start a local session of the given variant (default: safezone).

Controls:
  Arrows/WASD  - Move
  Enter        - Start / continue
  P/Esc        - Pause
  Ctrl+S       - Screenshot to ~/.safezone/screenshots
  Q/Ctrl+C     - Quit

The session also pauses while the terminal window is unfocused.

Examples:
  safezone play
  safezone play safezone-classic
  safezone play --hitboxes --mute
  safezone play --config ./my-safezone.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := safezone.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'safezone list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("safezone", "~/.safezone/safezone.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, sheet, err := loadSettings(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	var sounds tui.SoundQueue
	if !flagMute && cfg.Audio.Enabled {
		s := audio.New(cfg.Audio, audio.DefaultEffects(), logger)
		if openErr := s.Open(); openErr != nil {
			logger.Warn("sound disabled", "error", openErr)
		} else {
			sounds = s
		}
	}

	// Open the journal; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		store = nil
	}

	logger.Info("session started", "game", gameID, "seed", flagSeed, "fps", flagFPS)
	runErr := tui.Run(game, tui.Options{
		Runtime: runtimeConfig(width, height),
		Env: registry.Environment{
			Config: cfg,
			Sheet:  sheet,
		},
		Store:  store,
		Sounds: sounds,
		Logger: logger,
	})
	logger.Info("session ended", "game", gameID)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
