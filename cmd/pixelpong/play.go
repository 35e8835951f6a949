package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixelpong/internal/ai"
	"github.com/vovakirdan/pixelpong/internal/audio"
	"github.com/vovakirdan/pixelpong/internal/config"
	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/game"
	"github.com/vovakirdan/pixelpong/internal/platform/tui"
	"github.com/vovakirdan/pixelpong/internal/storage"
)

var (
	flagDifficulty string
	flagDuration   int
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game locally. The main menu offers a match against the
AI or against a friend sharing the keyboard.

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle (or menu navigation)
  Left/Right - Adjust settings
  Enter      - Select
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

Examples:
  pixelpong play
  pixelpong play --difficulty UNBEATABLE
  pixelpong play --duration 60 --mute
  pixelpong play --config ./my-config.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "AI difficulty: EASY, NORMAL, HARD, VERYHARD, UNBEATABLE")
	playCmd.Flags().IntVar(&flagDuration, "duration", 0, "Match duration in seconds (overrides config)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pixelpong"})

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	applyFlagOverrides(&cfg, cmd)

	// Terminal size probe, the TUI adjusts on resize anyway
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	engine := audio.NewEngine()
	if err := engine.Init(); err != nil {
		logger.Warn("audio unavailable, continuing silent", "error", err)
	}
	engine.SetMuted(cfg.Audio.Muted)
	defer engine.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	session := game.New(cfg, seed, engine)
	session.OnConfigChange = func(c config.Config) {
		engine.SetMuted(c.Audio.Muted)
	}
	session.OnConfigSave = func(c config.Config) {
		engine.SetMuted(c.Audio.Muted)
		if path := config.UserConfigPath(); path != "" {
			if err := config.Save(path, c); err != nil {
				logger.Warn("could not save config", "error", err)
			}
		}
	}
	if store != nil {
		session.OnResult = func(res game.Result) {
			if _, err := store.SaveResult(res); err != nil {
				logger.Warn("could not save match result", "error", err)
			}
		}
	}

	runErr := tui.Run(session, runtime)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		logger.Fatal("error running game", "error", runErr)
	}
}

// applyFlagOverrides layers explicit play flags over the loaded config.
func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command) {
	if flagDifficulty != "" {
		cfg.AI.Difficulty = ai.ParseDifficulty(flagDifficulty).String()
	}
	if flagDuration > 0 {
		cfg.Match.DurationSeconds = flagDuration
	}
	if cmd.Flags().Changed("mute") {
		cfg.Audio.Muted = flagMute
	}
	cfg.Clamp()
}
