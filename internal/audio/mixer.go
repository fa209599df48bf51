package audio

import "sync"

// Voice is one in-flight playback of a clip variant.
type Voice struct {
	variant *Variant
	cursor  int
}

// Mixer keeps the active voices behind a single lock shared by the trigger
// path and the real-time callback. The voice count never exceeds maxVoices;
// triggers beyond the ceiling are dropped, not queued.
type Mixer struct {
	mu        sync.Mutex
	voices    []Voice
	clip      *Clip
	maxVoices int
	gain      float32
}

func NewMixer(clip *Clip, maxVoices int, gain float64) *Mixer {
	if maxVoices <= 0 {
		maxVoices = 1
	}
	return &Mixer{
		clip:      clip,
		voices:    make([]Voice, 0, maxVoices),
		maxVoices: maxVoices,
		gain:      float32(gain),
	}
}

// Play starts a voice panned by horizontal screen position. A missing pan
// bucket falls back to the center bucket; if even that is absent the trigger
// is dropped. Never blocks on the audio callback.
func (m *Mixer) Play(x float64, screenWidth int) {
	if m == nil || m.clip == nil || screenWidth <= 0 {
		return
	}
	pan := x/float64(screenWidth)*2 - 1
	if pan < -1 {
		pan = -1
	} else if pan > 1 {
		pan = 1
	}
	v := m.clip.Variant(PanIndex(pan))
	if v == nil {
		v = m.clip.Variant(CenterVariant)
		if v == nil {
			return
		}
	}

	m.mu.Lock()
	if len(m.voices) < m.maxVoices {
		m.voices = append(m.voices, Voice{variant: v})
	}
	m.mu.Unlock()
}

// ActiveVoices returns the number of voices currently playing.
func (m *Mixer) ActiveVoices() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Mix is the real-time callback: it zeroes the output, additively copies
// min(remaining, blockSize) samples per voice, advances cursors, and prunes
// exhausted voices. It allocates nothing; the in-place compaction reuses the
// voice slice's backing array.
func (m *Mixer) Mix(out [][]float32) {
	left, right := out[0], out[1]
	for i := range left {
		left[i] = 0
		right[i] = 0
	}

	m.mu.Lock()
	live := m.voices[:0]
	for _, v := range m.voices {
		n := len(v.variant.L) - v.cursor
		if n > len(left) {
			n = len(left)
		}
		for j := 0; j < n; j++ {
			left[j] += v.variant.L[v.cursor+j] * m.gain
			right[j] += v.variant.R[v.cursor+j] * m.gain
		}
		v.cursor += n
		if v.cursor < len(v.variant.L) {
			live = append(live, v)
		}
	}
	m.voices = live
	m.mu.Unlock()
}
