package audio

import (
	"fmt"
	"math"
)

const (
	DefaultSampleRate = 44100
	DefaultBlockSize  = 1024

	// NumPanVariants stereo renditions of the base clip are precomputed at
	// evenly spaced pan positions from -1.0 to +1.0.
	NumPanVariants = 17
	panStep        = 0.125
	CenterVariant  = NumPanVariants / 2

	clipDuration = 1.8
	fundamental  = 55.0 // Hz; first overtone rides at 2x
)

type SynthConfig struct {
	SampleRate int
	Duration   float64
	Seed       uint64
}

// Variant is the base clip rendered at one pan position.
type Variant struct {
	L, R []float32
}

// Clip is the immutable explosion sound: a mono base waveform plus its bank
// of pan variants. Built once at startup, read-only afterwards.
type Clip struct {
	SampleRate int
	Base       []float64
	variants   [NumPanVariants]Variant
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1 << 30)
}

// Synthesize builds the explosion clip: broadband noise over a low rumble
// tone, an exponential decay envelope, sparse crackle impulses, a symmetric
// moving-average lowpass, then a final clip-and-scale.
func Synthesize(cfg SynthConfig) (*Clip, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("synth: sample rate must be positive, got %d", cfg.SampleRate)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("synth: duration must be positive, got %f", cfg.Duration)
	}
	n := int(cfg.Duration * float64(cfg.SampleRate))
	if n <= 0 {
		return nil, fmt.Errorf("synth: empty clip (%d samples)", n)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	raw := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(cfg.SampleRate)
		p := float64(i) / float64(n)
		env := math.Exp(-p * 5.0)

		noise := lcg(&seed) * 0.8
		tone := math.Sin(2*math.Pi*fundamental*t)*0.5 +
			math.Sin(2*math.Pi*fundamental*2*t)*0.22

		// Sparse crackle: rare amplitude impulses under the same envelope.
		crackle := 0.0
		if (lcg(&seed)+1)/2 < 0.0018 {
			crackle = lcg(&seed) * 1.4
		}

		raw[i] = (noise + tone + crackle) * env
	}

	base := movingAverage(raw, 4)
	for i, s := range base {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		base[i] = s * 0.45
	}

	clip := &Clip{SampleRate: cfg.SampleRate, Base: base}
	for i := 0; i < NumPanVariants; i++ {
		l, r := panGains(PanValue(i))
		v := Variant{
			L: make([]float32, n),
			R: make([]float32, n),
		}
		for k, s := range base {
			v.L[k] = float32(s * l)
			v.R[k] = float32(s * r)
		}
		clip.variants[i] = v
	}
	return clip, nil
}

// movingAverage applies a symmetric box filter of the given radius, clamping
// the window at the clip edges.
func movingAverage(in []float64, radius int) []float64 {
	out := make([]float64, len(in))
	for i := range in {
		lo := i - radius
		if lo < 0 {
			lo = 0
		}
		hi := i + radius
		if hi >= len(in) {
			hi = len(in) - 1
		}
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += in[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}

// panGains maps pan in [-1,1] to constant-power stereo gains.
func panGains(pan float64) (l, r float64) {
	theta := (pan + 1) / 2 * math.Pi / 2
	return math.Cos(theta), math.Sin(theta)
}

// PanValue returns the pan position of bucket i.
func PanValue(i int) float64 {
	return -1.0 + float64(i)*panStep
}

// PanIndex quantizes a pan position to the nearest of the precomputed
// buckets. Ties resolve toward the lower bucket.
func PanIndex(pan float64) int {
	if pan < -1 {
		pan = -1
	} else if pan > 1 {
		pan = 1
	}
	idx := int(math.Ceil((pan+1)/panStep - 0.5))
	if idx < 0 {
		idx = 0
	} else if idx >= NumPanVariants {
		idx = NumPanVariants - 1
	}
	return idx
}

// Variant returns the rendition for a pan bucket, or nil when the bucket is
// out of range or was never built.
func (c *Clip) Variant(i int) *Variant {
	if c == nil || i < 0 || i >= NumPanVariants {
		return nil
	}
	v := &c.variants[i]
	if len(v.L) == 0 {
		return nil
	}
	return v
}
