package audio

import (
	"fmt"
	"time"

	"github.com/gordonklaus/portaudio"
)

// Config describes the audio path. Zero values fall back to defaults.
type Config struct {
	SampleRate int
	BlockSize  int
	MaxVoices  int
	Gain       float64
	Seed       uint64
}

func (c Config) withDefaults() Config {
	if c.SampleRate == 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.BlockSize == 0 {
		c.BlockSize = DefaultBlockSize
	}
	if c.MaxVoices == 0 {
		c.MaxVoices = 24
	}
	if c.Gain == 0 {
		c.Gain = 0.7
	}
	return c
}

// Engine owns the portaudio output stream. The mixer's Mix method runs on
// the backend's real-time thread; everything else runs on the caller's.
// Construction failure leaves the whole audio path disabled — the show never
// aborts over sound.
type Engine struct {
	mixer  *Mixer
	stream *portaudio.Stream
	open   bool
}

// NewClip synthesizes the base explosion clip without opening a stream.
// Used for offline inspection.
func NewClip(cfg Config) (*Clip, error) {
	cfg = cfg.withDefaults()
	return Synthesize(SynthConfig{
		SampleRate: cfg.SampleRate,
		Duration:   clipDuration,
		Seed:       cfg.Seed,
	})
}

// NewEngine synthesizes the clip and opens the default stereo output stream.
func NewEngine(cfg Config) (*Engine, error) {
	cfg = cfg.withDefaults()

	clip, err := Synthesize(SynthConfig{
		SampleRate: cfg.SampleRate,
		Duration:   clipDuration,
		Seed:       cfg.Seed,
	})
	if err != nil {
		return nil, err
	}
	e := &Engine{mixer: NewMixer(clip, cfg.MaxVoices, cfg.Gain)}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, float64(cfg.SampleRate), cfg.BlockSize, e.mixer.Mix)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("start stream: %w", err)
	}
	e.stream = stream
	e.open = true
	return e, nil
}

// Play triggers the explosion sound panned by screen position. Safe to call
// on a nil engine; fire-and-forget from the simulation's perspective.
func (e *Engine) Play(x float64, screenWidth int) {
	if e == nil || !e.open {
		return
	}
	e.mixer.Play(x, screenWidth)
}

// Clip exposes the synthesized base clip for offline inspection.
func (e *Engine) Clip() *Clip {
	if e == nil || e.mixer == nil {
		return nil
	}
	return e.mixer.clip
}

// Stop tears the stream down best-effort: it waits a bounded time for the
// backend to stop and proceeds regardless of whether the join succeeded.
func (e *Engine) Stop() {
	if e == nil || !e.open {
		return
	}
	e.open = false

	done := make(chan struct{})
	go func() {
		e.stream.Stop()
		e.stream.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
	}
	portaudio.Terminate()
}
