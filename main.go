package main

import (
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tinywheels/assets"
	"tinywheels/game"
	"tinywheels/logging"
	"tinywheels/settings"
)

func main() {
	pflag.String("gameplay", "gameplay.yaml", "gameplay tunables file")
	pflag.String("config", "config.yaml", "game configuration file")
	pflag.String("input", "", "input handler id, overrides the configuration (touch, keyboard)")
	pflag.String("log-level", "info", "log level (debug, info, warn, error)")
	pflag.String("profile-dir", "profiles", "where profiles are written on fps drops, empty to disable")
	pflag.Parse()

	v := viper.New()
	v.SetEnvPrefix("TINYWHEELS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	log := logging.New(os.Stderr, "info")
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatal().Err(err).Msg("failed to bind flags")
	}
	log = logging.New(os.Stderr, v.GetString("log-level"))

	gp, err := settings.LoadGamePlay(v.GetString("gameplay"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load gameplay")
	}
	cfg, err := settings.LoadGameConfig(v.GetString("config"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if input := v.GetString("input"); input != "" {
		cfg.Input = input
	}

	trackName := cfg.Track
	if trackName == "" {
		trackName = assets.DefaultTrack
		if c, ok := assets.FindChampionship(cfg.Championship); ok && len(c.Tracks) > 0 {
			trackName = c.Tracks[0]
		}
	}
	m, err := assets.LoadTrack(trackName)
	if err != nil {
		log.Fatal().Err(err).Str("track", trackName).Msg("failed to load track")
	}

	profiler := game.NewProfiler(v.GetString("profile-dir"), log)
	setup := game.RaceSetup{Map: m, Laps: cfg.Laps, Input: cfg.Input}
	g, err := game.NewGame(gp, setup, assets.NewIcons(), profiler, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	// Remember the choices for the next start
	if err := settings.SaveGameConfig(v.GetString("config"), cfg); err != nil {
		log.Warn().Err(err).Msg("failed to save config")
	}

	ebiten.SetWindowSize(game.StageWidth, game.StageWidth*3/5)
	ebiten.SetWindowTitle("Tiny Wheels")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game stopped")
	}
}
