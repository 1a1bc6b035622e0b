package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gorillas/internal/audio"
	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas"
	"github.com/vovakirdan/tui-gorillas/internal/platform"
	"github.com/vovakirdan/tui-gorillas/internal/platform/gui"
	"github.com/vovakirdan/tui-gorillas/internal/platform/tui"
	"github.com/vovakirdan/tui-gorillas/internal/settings"
)

var (
	flagWind         string
	flagGUI          bool
	flagSound        bool
	flagP1           string
	flagP2           string
	flagSaveSettings bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a hot-seat match: both players share the keyboard.

Controls:
  Up/Down     - Change throw angle
  Left/Right  - Change throw speed
  Space       - Throw
  W           - Roll a new wind
  P/Esc       - Pause
  R/Enter     - Next round (after a hit)
  Q/Ctrl+C    - Quit

Wind presets:
  still  - No wind at all
  calm   - Half the usual wind
  normal - Classic wind range
  gusty  - Double wind

Examples:
  gorillas play
  gorillas play --wind calm --p1 Kong --p2 Bonzo --save-settings
  gorillas play --gui --sound=false
  gorillas play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagWind, "wind", "", "Wind preset: still, calm, normal, gusty")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play the explosion sound")
	playCmd.Flags().StringVar(&flagP1, "p1", "", "Name of player 1")
	playCmd.Flags().StringVar(&flagP2, "p2", "", "Name of player 2")
	playCmd.Flags().BoolVar(&flagSaveSettings, "save-settings", false, "Remember names, wind and sound for next time")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	prefs, err := settings.OpenDefault(logger)
	if err != nil {
		logger.Warn("settings will not persist", "err", err)
	}
	s := applyFlags(cmd, prefs.Get())
	if flagSaveSettings {
		prefs.Set(s)
		if err := prefs.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save settings: %v\n", err)
		}
	}

	cfg := loadRules()
	if err := applySettings(&cfg, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		Seed:    flagSeed,
	}

	var sound platform.Sound
	if s.SoundEnabled {
		player := audio.NewPlayer(s.SoundVolume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			sound = player
		}
	}

	var store platform.RoundSaver
	if st := openStore(logger); st != nil {
		defer st.Close()
		store = st
	}

	game := gorillas.New(cfg, gorillas.WithLogger(logger))
	logger.Info("match start", "p1", cfg.Players.One, "p2", cfg.Players.Two, "gui", flagGUI, "wind", s.Wind)

	if flagGUI {
		err = gui.Run(game, runtime, gui.Options{Store: store, Sound: sound, Logger: logger})
	} else {
		err = tui.Run(game, runtime, tui.Options{Store: store, Sound: sound, Logger: logger, Source: "local"})
	}
	if err != nil {
		logger.Error("game stopped", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	logSummary(logger, game)
}

// applyFlags overrides saved settings with flags given on the command line.
func applyFlags(cmd *cobra.Command, s settings.Settings) settings.Settings {
	flags := cmd.Flags()
	if flags.Changed("p1") {
		s.PlayerOne = flagP1
	}
	if flags.Changed("p2") {
		s.PlayerTwo = flagP2
	}
	if flags.Changed("wind") {
		s.Wind = flagWind
	}
	if flags.Changed("sound") {
		s.SoundEnabled = flagSound
	}
	return s
}

// applySettings puts preferences into the rules. Names left at their
// defaults do not override names from a config file.
func applySettings(cfg *config.GorillasConfig, s settings.Settings) error {
	preset, err := config.ParseWindPreset(s.Wind)
	if err != nil {
		return err
	}
	config.ApplyWindPreset(cfg, preset)

	def := settings.Defaults()
	if s.PlayerOne != def.PlayerOne || cfg.Players.One == "" {
		cfg.Players.One = s.PlayerOne
	}
	if s.PlayerTwo != def.PlayerTwo || cfg.Players.Two == "" {
		cfg.Players.Two = s.PlayerTwo
	}
	return nil
}

func logSummary(logger *log.Logger, game *gorillas.Game) {
	wins := game.Wins()
	hud := game.HUD()
	logger.Info("match over", "rounds", hud.Round, hud.Names[0], wins[0], hud.Names[1], wins[1])
}
