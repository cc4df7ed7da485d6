package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"tinywheels/physics"
	"tinywheels/tiled"
	"tinywheels/ui"
)

// StageWidth is the virtual width the HUD is laid out in, the height
// follows the screen aspect ratio
const StageWidth = 800

// RaceSetup describes the race a Game runs
type RaceSetup struct {
	Map   *tiled.Map
	Laps  int
	Input string
}

// Game is the interactive race: one player racer and AI opponents
type Game struct {
	gp       GamePlay
	setup    RaceSetup
	log      zerolog.Logger
	assets   ui.Assets
	touches  *EbitenTouchSource
	handlers *InputHandlerRegistry

	world    *GameWorld
	player   *Racer
	stage    *ui.Stage
	camera   *Camera
	renderer *Renderer
	profiler *Profiler
	debug    DebugState

	width, height int

	// FPS tracking
	fps             float64
	fpsUpdateTimer  float64
	lastFPSDropTime time.Time
	gameStartTime   time.Time
}

// NewGame creates a game and its first race
func NewGame(gp GamePlay, setup RaceSetup, assets ui.Assets, profiler *Profiler, log zerolog.Logger) (*Game, error) {
	touches := NewEbitenTouchSource()
	g := &Game{
		gp:            gp,
		setup:         setup,
		log:           log,
		assets:        assets,
		touches:       touches,
		handlers:      DefaultInputHandlers(gp, touches, EbitenKeySource{}),
		camera:        NewCamera(StageWidth, StageWidth*3/5, gp.ViewportWidth),
		profiler:      profiler,
		width:         StageWidth,
		height:        StageWidth * 3 / 5,
		fps:           60,
		gameStartTime: time.Now(),
	}
	g.renderer = NewRenderer(g.camera)
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// World returns the running race
func (g *Game) World() *GameWorld {
	return g.world
}

// restart throws the current race away and sets up a new one
func (g *Game) restart() error {
	handler, err := g.handlers.Create(g.setup.Input)
	if err != nil {
		return err
	}

	pw := physics.NewWorld()
	track, err := LoadTrack(pw, g.gp, g.setup.Map, g.setup.Laps)
	if err != nil {
		return fmt.Errorf("failed to load track: %w", err)
	}
	world := NewGameWorld(g.gp, pw, track, g.log)

	var pilot *PlayerPilot
	player, err := world.AddRacer("Player", func(r *Racer) Pilot {
		pilot = NewPlayerPilot(g.assets, world, r, handler)
		return pilot
	})
	if err != nil {
		return err
	}
	for i := 1; i < g.gp.RacerCount; i++ {
		_, err := world.AddRacer(fmt.Sprintf("CPU %d", i), func(r *Racer) Pilot {
			return NewAIPilot(world, r, track)
		})
		if err != nil {
			g.log.Warn().Err(err).Int("racers", len(world.Racers())).Msg("track is full")
			break
		}
	}

	g.world = world
	g.player = player
	g.stage = ui.NewStage(StageWidth, g.stageHeight())
	pilot.CreateHudActors(g.stage.Root())
	g.stage.Layout()

	g.log.Info().Str("input", g.setup.Input).Int("racers", len(world.Racers())).Int("laps", track.Laps).Msg("race ready")
	return nil
}

func (g *Game) stageHeight() float64 {
	if g.width <= 0 {
		return StageWidth * 3 / 5
	}
	return StageWidth * float64(g.height) / float64(g.width)
}

// Update advances the race by one tick
func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	g.updateFPS(dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowWaypoints = !g.debug.ShowWaypoints
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.debug.ShowBounds = !g.debug.ShowBounds
	}
	if g.world.State() == StateFinished && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			return err
		}
	}

	g.profiler.StartTick()
	g.world.Act(dt)
	g.profiler.EndTick()
	return nil
}

// fpsDropCaptureTicks is how many ticks are profiled after an FPS drop
const fpsDropCaptureTicks = 300

func (g *Game) updateFPS(dt float64) {
	g.fpsUpdateTimer += dt
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	g.fpsUpdateTimer = 0
	g.checkFPS(ebiten.ActualFPS(), time.Now())
}

// checkFPS starts profiling the next ticks when the frame rate drops after
// the start. The race itself is not touched.
func (g *Game) checkFPS(fps float64, now time.Time) {
	g.fps = fps
	if fps >= 45 || now.Sub(g.gameStartTime) < 3*time.Second || now.Sub(g.lastFPSDropTime) < 10*time.Second {
		return
	}
	if g.profiler.IsCapturing() {
		return
	}
	g.lastFPSDropTime = now
	ticks, mean, slowest := g.profiler.TickStats()
	g.log.Warn().Float64("fps", fps).Int("ticks", ticks).Dur("mean", mean).Dur("slowest", slowest).Msg("fps drop")

	reason := fmt.Sprintf("fps%.0f-racers%d", fps, len(g.world.Racers()))
	if err := g.profiler.StartCapture(reason, fpsDropCaptureTicks); err != nil {
		g.log.Error().Err(err).Msg("failed to capture profile")
	}
}

// Draw renders the race around the player, then the HUD
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 90, 40, 255})

	g.camera.Follow(g.player.Vehicle(), g.gp.RotateCamera)
	g.renderer.Render(screen, g.world)
	g.renderer.RenderDebug(screen, g.world, g.debug)
	g.stage.Draw(screen)
	g.drawStatus(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	track := g.world.Track()
	progress := g.player.Progress()
	lap := min(progress.CompletedLaps(len(track.Waypoints))+1, track.Laps)
	ui.DrawText(screen, fmt.Sprintf("Lap %d/%d  %.1fs  %.0f FPS", lap, track.Laps, g.world.RaceTime(), g.fps), 10, 10, color.White)

	cx, cy := float64(g.width)/2, float64(g.height)/2
	switch g.world.State() {
	case StateCountdown:
		ui.DrawLabel(screen, fmt.Sprintf("%.0f", g.world.Countdown()+0.5), cx, cy/2, color.White)
	case StateFinished:
		var sb strings.Builder
		for i, r := range g.world.Ranking() {
			status := "out"
			if r.Progress().IsFinished() {
				status = fmt.Sprintf("%.2fs", r.Progress().FinishTime())
			}
			fmt.Fprintf(&sb, "%d. %-8s %s\n", i+1, r.Name(), status)
		}
		sb.WriteString("\nPress R to race again")
		ui.DrawText(screen, sb.String(), cx-80, cy/2, color.White)
	}
	if g.player.Health().IsDisabled() && g.world.State() == StateRunning {
		ui.DrawLabel(screen, "Wrecked", cx, cy/2, color.RGBA{255, 80, 80, 255})
	}
}

// Layout keeps the window size, the camera and the HUD follow it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.camera.Resize(float64(outsideWidth), float64(outsideHeight), g.gp.ViewportWidth)
		g.stage.Resize(StageWidth, g.stageHeight())
	}
	g.touches.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
