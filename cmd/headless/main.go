// Command headless runs an AI-only race without a window and prints the
// ranking. It is used to tune the gameplay and to profile the simulation.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tinywheels/assets"
	"tinywheels/game"
	"tinywheels/logging"
	"tinywheels/physics"
	"tinywheels/settings"
)

const tickRate = 60

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("headless", pflag.ContinueOnError)
	flags.String("gameplay", "gameplay.yaml", "gameplay tunables file")
	flags.String("config", "config.yaml", "game configuration file (track, laps)")
	flags.String("track", "", "track name, overrides the configuration")
	flags.Int("racers", 0, "number of racers, 0 for the gameplay racer count")
	flags.Int("ticks", 10*60*tickRate, "maximum number of ticks to simulate")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("profile-dir", "", "write a CPU profile and a trace of the race to this dir")
	flags.Bool("save-gameplay", false, "write the tunables of this race back to the gameplay file")
	flags.Bool("list", false, "list the championships and tracks, then exit")
	return flags
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := newFlags()
	if err := flags.Parse(args); err != nil {
		return err
	}
	v := viper.New()
	v.SetEnvPrefix("TINYWHEELS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	log := logging.New(stderr, v.GetString("log-level"))

	if v.GetBool("list") {
		printChampionships(stdout)
		return nil
	}

	gp, err := settings.LoadGamePlay(v.GetString("gameplay"))
	if err != nil {
		return err
	}
	cfg, err := settings.LoadGameConfig(v.GetString("config"))
	if err != nil {
		return err
	}
	if racers := v.GetInt("racers"); racers > 0 {
		gp.RacerCount = racers
	}
	if v.GetBool("save-gameplay") {
		if err := settings.SaveGamePlay(v.GetString("gameplay"), gp); err != nil {
			return err
		}
		log.Info().Str("path", v.GetString("gameplay")).Msg("gameplay saved")
	}

	trackName := v.GetString("track")
	if trackName == "" {
		trackName = cfg.Track
	}
	if trackName == "" {
		trackName = assets.DefaultTrack
		if c, ok := assets.FindChampionship(cfg.Championship); ok && len(c.Tracks) > 0 {
			trackName = c.Tracks[0]
		}
	}

	m, err := assets.LoadTrack(trackName)
	if err != nil {
		return err
	}
	pw := physics.NewWorld()
	track, err := game.LoadTrack(pw, gp, m, cfg.Laps)
	if err != nil {
		return fmt.Errorf("track %s: %w", trackName, err)
	}
	world := game.NewGameWorld(gp, pw, track, log)
	for i := 0; i < gp.RacerCount; i++ {
		_, err := world.AddRacer(fmt.Sprintf("CPU %d", i+1), func(r *game.Racer) game.Pilot {
			return game.NewAIPilot(world, r, track)
		})
		if err != nil {
			log.Warn().Err(err).Int("racers", i).Msg("track is full")
			break
		}
	}

	profiler := game.NewProfiler(v.GetString("profile-dir"), log)
	maxTicks := v.GetInt("ticks")
	ticks := 0
	err = profiler.Capture("headless-"+trackName, func() {
		ticks = race(world, profiler, maxTicks)
	})
	if err != nil {
		return err
	}

	logStats(log, profiler, ticks)
	printRanking(stdout, world)
	return nil
}

// race steps the world at a fixed rate until it finishes or maxTicks is
// reached. It returns the number of ticks run.
func race(world *game.GameWorld, profiler *game.Profiler, maxTicks int) int {
	const dt = 1.0 / tickRate
	ticks := 0
	for ; ticks < maxTicks && world.State() != game.StateFinished; ticks++ {
		profiler.StartTick()
		world.Act(dt)
		profiler.EndTick()
	}
	return ticks
}

func logStats(log zerolog.Logger, profiler *game.Profiler, ticks int) {
	_, mean, slowest := profiler.TickStats()
	log.Info().
		Int("ticks", ticks).
		Float64("simulated", float64(ticks)/tickRate).
		Dur("mean", mean).
		Dur("slowest", slowest).
		Msg("race over")
}

func printRanking(w io.Writer, world *game.GameWorld) {
	waypoints := len(world.Track().Waypoints)
	for i, r := range world.Ranking() {
		progress := r.Progress()
		switch {
		case progress.IsFinished():
			fmt.Fprintf(w, "%d. %-8s %8.2fs\n", i+1, r.Name(), progress.FinishTime())
		case r.Health().IsDisabled():
			fmt.Fprintf(w, "%d. %-8s   wrecked\n", i+1, r.Name())
		default:
			fmt.Fprintf(w, "%d. %-8s %d/%d laps\n", i+1, r.Name(), progress.CompletedLaps(waypoints), world.Track().Laps)
		}
	}
}

func printChampionships(w io.Writer) {
	for _, c := range assets.Championships() {
		fmt.Fprintf(w, "%s: %s (%s)\n", c.ID, c.Name, strings.Join(c.Tracks, ", "))
	}
	fmt.Fprintf(w, "tracks: %s\n", strings.Join(assets.TrackNames(), ", "))
}
