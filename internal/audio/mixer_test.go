package audio

import (
	"testing"

	. "github.com/onsi/gomega"
)

func testClip(t *testing.T, samples int) *Clip {
	t.Helper()
	sampleRate := 1000
	clip, err := Synthesize(SynthConfig{
		SampleRate: sampleRate,
		Duration:   float64(samples) / float64(sampleRate),
		Seed:       1,
	})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return clip
}

func stereoBlock(size int) [][]float32 {
	return [][]float32{make([]float32, size), make([]float32, size)}
}

func TestMixerCeilingDropsNotQueues(t *testing.T) {
	g := NewWithT(t)
	m := NewMixer(testClip(t, 100), 3, 1.0)

	for i := 0; i < 5; i++ {
		m.Play(50, 100)
	}

	g.Expect(m.ActiveVoices()).To(Equal(3))

	// Dropped triggers stay dropped: freeing a slot does not replay them.
	m.Mix(stereoBlock(200))
	g.Expect(m.ActiveVoices()).To(Equal(0))
}

func TestMixerMixAdvancesAndPrunes(t *testing.T) {
	g := NewWithT(t)
	m := NewMixer(testClip(t, 100), 8, 1.0)
	m.Play(50, 100)

	out := stereoBlock(64)
	m.Mix(out)
	g.Expect(m.ActiveVoices()).To(Equal(1), "64 of 100 samples consumed")

	m.Mix(out)
	g.Expect(m.ActiveVoices()).To(Equal(0), "voice exhausted mid-block must be pruned")
}

func TestMixerSilenceWithoutVoices(t *testing.T) {
	g := NewWithT(t)
	m := NewMixer(testClip(t, 100), 8, 1.0)

	out := stereoBlock(32)
	out[0][5] = 0.7 // stale data from the previous block
	out[1][9] = -0.3
	m.Mix(out)

	for ch := 0; ch < 2; ch++ {
		for _, s := range out[ch] {
			g.Expect(s).To(Equal(float32(0)))
		}
	}
}

func TestMixerSumsConcurrentVoices(t *testing.T) {
	g := NewWithT(t)
	clip := testClip(t, 100)
	m := NewMixer(clip, 8, 1.0)

	m.Play(50, 100) // center pan for both
	m.Play(50, 100)

	out := stereoBlock(10)
	m.Mix(out)

	v := clip.Variant(CenterVariant)
	for j := 0; j < 10; j++ {
		g.Expect(out[0][j]).To(BeNumerically("~", 2*v.L[j], 1e-6))
		g.Expect(out[1][j]).To(BeNumerically("~", 2*v.R[j], 1e-6))
	}
}

func TestMixerAppliesGain(t *testing.T) {
	g := NewWithT(t)
	clip := testClip(t, 100)
	m := NewMixer(clip, 8, 0.5)

	m.Play(50, 100)
	out := stereoBlock(10)
	m.Mix(out)

	v := clip.Variant(CenterVariant)
	for j := 0; j < 10; j++ {
		g.Expect(out[0][j]).To(BeNumerically("~", 0.5*v.L[j], 1e-6))
	}
}

func TestMixerPanSelection(t *testing.T) {
	g := NewWithT(t)
	m := NewMixer(testClip(t, 100), 8, 1.0)

	// Far left of the screen maps to the leftmost bucket: the right channel
	// carries effectively nothing.
	m.Play(0, 100)
	out := stereoBlock(100)
	m.Mix(out)

	var left, right float32
	for j := range out[0] {
		left += out[0][j] * out[0][j]
		right += out[1][j] * out[1][j]
	}
	g.Expect(right).To(BeNumerically("~", 0.0, 1e-9))
	g.Expect(left).To(BeNumerically(">", float32(0)))
}

func TestMixerIgnoresBadTriggers(t *testing.T) {
	g := NewWithT(t)
	m := NewMixer(testClip(t, 100), 8, 1.0)

	m.Play(50, 0)  // zero screen width
	m.Play(50, -3) // negative screen width

	g.Expect(m.ActiveVoices()).To(Equal(0))
}

func TestEngineConfigDefaults(t *testing.T) {
	g := NewWithT(t)

	cfg := Config{}.withDefaults()
	g.Expect(cfg.SampleRate).To(Equal(DefaultSampleRate))
	g.Expect(cfg.BlockSize).To(Equal(DefaultBlockSize))
	g.Expect(cfg.MaxVoices).To(Equal(24))
	g.Expect(cfg.Gain).To(Equal(0.7))
}

func TestEngineNilSafe(t *testing.T) {
	var e *Engine

	// Must not panic.
	e.Play(10, 100)
	e.Stop()
	if e.Clip() != nil {
		t.Error("nil engine returned a clip")
	}
}
