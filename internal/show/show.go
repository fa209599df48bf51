// Package show runs the interactive countdown display: it owns the terminal,
// the frame cadence, and the wiring between keyboard, clock, simulation, and
// audio. Everything else in the repo is a passive library this loop drives.
package show

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/avensel/skyburst/internal/audio"
	"github.com/avensel/skyburst/internal/canvas"
	"github.com/avensel/skyburst/internal/config"
	"github.com/avensel/skyburst/internal/countdown"
	"github.com/avensel/skyburst/internal/glyphs"
	"github.com/avensel/skyburst/internal/pyro"
)

const (
	keySpace = ' '
	keyQuit  = 'q'
	keyCtrlC = 0x03
)

// Run drives the show until the user quits or the process is interrupted.
// The terminal is switched to raw mode on the alternate screen and restored
// on every exit path.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	target, err := cfg.Target(time.Now())
	if err != nil {
		return err
	}

	var engine *audio.Engine
	if cfg.Audio.Enabled {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		engine, err = audio.NewEngine(audio.Config{
			SampleRate: cfg.Audio.SampleRate,
			BlockSize:  cfg.Audio.BlockSize,
			MaxVoices:  cfg.Audio.MaxVoices,
			Gain:       cfg.Audio.Gain,
			Seed:       uint64(seed),
		})
		if err != nil {
			// The show runs silent rather than not at all.
			fmt.Fprintf(os.Stderr, "audio disabled: %v\n", err)
			engine = nil
		}
	}
	defer engine.Stop()

	termCtl := NewTerminal()
	cols, rows := termCtl.Size()
	if cfg.Display.Width > 0 {
		cols = cfg.Display.Width
	}
	if cfg.Display.Height > 0 {
		rows = cfg.Display.Height
	}
	// One column and one row are held back so the last cell never wraps.
	width := (cols - 1) * 2
	height := (rows - 1) * 4

	if err := termCtl.Raw(); err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer termCtl.Restore()
	os.Stdout.WriteString(enterScreen)
	defer os.Stdout.WriteString(leaveScreen)

	kb := &Keyboard{}
	go kb.Listen(os.Stdin)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world := pyro.NewWorld(width, height, cfg.Display.CameraSpeed, seed)
	cv := canvas.New(width, height, canvas.Palette(canvas.Black))
	clock := countdown.New(target)

	var snd pyro.SoundTrigger
	if engine != nil {
		snd = engine
	}

	// Spawn jitter uses its own stream so manual launches do not perturb the
	// simulation's randomness.
	spawnRng := rand.New(rand.NewSource(seed + 1))
	nextSpawn := cfg.Spawn.IdleMin + spawnRng.Float64()*(cfg.Spawn.IdleMax-cfg.Spawn.IdleMin)

	frameBudget := time.Second / time.Duration(cfg.Display.FPS)
	start := time.Now()
	last := start
	lastSpawn := 0.0

	for {
		now := time.Now()
		if d := now.Sub(last); d < frameBudget {
			time.Sleep(frameBudget - d)
			now = time.Now()
		}
		// Overruns are not compensated for: dt tracks wall clock, so a
		// starved loop renders fewer, correctly-timed frames.
		dt := now.Sub(last).Seconds()
		last = now
		elapsed := now.Sub(start).Seconds()

		select {
		case <-interrupt:
			return nil
		default:
		}

		if key, ok := kb.Poll(); ok {
			switch key {
			case keySpace:
				world.Spawn()
			case keyQuit, keyCtrlC:
				return nil
			}
		}

		display, open := clock.Status()

		world.Camera.Advance(dt)
		if open && elapsed-lastSpawn > nextSpawn {
			world.Spawn()
			lastSpawn = elapsed
			nextSpawn = cfg.Spawn.BurstMin + spawnRng.Float64()*(cfg.Spawn.BurstMax-cfg.Spawn.BurstMin)
		}
		world.Update(dt, snd)
		world.Cull()

		cv.Clear(canvas.Palette(canvas.Black))
		world.Draw(cv)

		overlay := canvas.Palette(canvas.White)
		if open {
			overlay = canvas.RGB(0, 255, 0)
		}
		glyphs.Overlay(cv, display, overlay)

		// Exactly one write per frame, cursor homed first.
		os.Stdout.WriteString(cursorHome + cv.Render())
	}
}
