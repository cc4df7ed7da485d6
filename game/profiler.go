package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"time"

	"github.com/rs/zerolog"
)

// Profiler measures how long race ticks take and can record a CPU profile
// and an execution trace of a run
type Profiler struct {
	log         zerolog.Logger
	profilesDir string

	ticks     int
	total     time.Duration
	slowest   time.Duration
	tickStart time.Time

	capture *capture
}

// ErrCaptureRunning is returned when a capture starts while another runs
var ErrCaptureRunning = errors.New("a profile capture is already running")

// NewProfiler creates a profiler writing its files to profilesDir. An empty
// dir disables the CPU profile and trace, tick timing still works.
func NewProfiler(profilesDir string, log zerolog.Logger) *Profiler {
	return &Profiler{
		log:         log,
		profilesDir: profilesDir,
	}
}

// StartTick marks the beginning of a tick
func (p *Profiler) StartTick() {
	p.tickStart = time.Now()
}

// EndTick records the duration of the tick started by StartTick and ends a
// capture once its ticks are recorded
func (p *Profiler) EndTick() {
	d := time.Since(p.tickStart)
	p.ticks++
	p.total += d
	if d > p.slowest {
		p.slowest = d
	}

	if c := p.capture; c != nil && c.ticksLeft > 0 {
		c.ticksLeft--
		if c.ticksLeft == 0 {
			if err := p.StopCapture(); err != nil {
				p.log.Error().Err(err).Msg("failed to stop profile")
			}
		}
	}
}

// TickStats returns the number of ticks, their mean and slowest durations
func (p *Profiler) TickStats() (int, time.Duration, time.Duration) {
	if p.ticks == 0 {
		return 0, 0, 0
	}
	return p.ticks, p.total / time.Duration(p.ticks), p.slowest
}

// Capture runs fn while recording a CPU profile and an execution trace named
// after reason. Without a profiles dir fn just runs.
func (p *Profiler) Capture(reason string, fn func()) error {
	if err := p.StartCapture(reason, 0); err != nil {
		return err
	}
	fn()
	return p.StopCapture()
}

// StartCapture starts a CPU profile and an execution trace named after
// reason. When ticks is positive, EndTick stops them once that many ticks
// were recorded. Without a profiles dir nothing is recorded.
func (p *Profiler) StartCapture(reason string, ticks int) error {
	if p.profilesDir == "" {
		return nil
	}
	if p.capture != nil {
		return ErrCaptureRunning
	}
	if err := os.MkdirAll(p.profilesDir, 0755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	// Generate timestamped filename
	timestamp := time.Now().Format("20060102-150405")
	baseName := fmt.Sprintf("%s-%s", reason, timestamp)
	c := &capture{
		profilePath: filepath.Join(p.profilesDir, baseName+".cpu.prof"),
		tracePath:   filepath.Join(p.profilesDir, baseName+".trace"),
		ticksLeft:   ticks,
	}

	var err error
	if c.profileFile, err = os.Create(c.profilePath); err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	if c.traceFile, err = os.Create(c.tracePath); err != nil {
		c.profileFile.Close()
		return fmt.Errorf("failed to create trace file: %w", err)
	}

	if err := pprof.StartCPUProfile(c.profileFile); err != nil {
		c.close()
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	if err := trace.Start(c.traceFile); err != nil {
		pprof.StopCPUProfile()
		c.close()
		return fmt.Errorf("failed to start trace: %w", err)
	}

	p.capture = c
	p.log.Info().Str("reason", reason).Int("ticks", ticks).Msg("profiling started")
	return nil
}

// IsCapturing returns true while a profile is being recorded
func (p *Profiler) IsCapturing() bool {
	return p.capture != nil
}

// StopCapture stops the running profile and trace, if any
func (p *Profiler) StopCapture() error {
	c := p.capture
	if c == nil {
		return nil
	}
	p.capture = nil

	trace.Stop()
	pprof.StopCPUProfile()
	if err := c.close(); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	p.log.Info().Str("profile", c.profilePath).Str("trace", c.tracePath).Msg("profile saved")
	return nil
}

type capture struct {
	profilePath string
	tracePath   string
	profileFile *os.File
	traceFile   *os.File

	// ticks still to record, 0 when the capture is stopped explicitly
	ticksLeft int
}

func (c *capture) close() error {
	err := c.profileFile.Close()
	if c.traceFile != nil {
		err = errors.Join(err, c.traceFile.Close())
	}
	return err
}
