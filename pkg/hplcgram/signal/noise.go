package signal

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sinusoid is one periodic baseline component: Amplitude*sin(Frequency*t + Phase).
type Sinusoid struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase"`
}

// Drift is an exponential approach to Amplitude with time constant Tau minutes.
// A zero Tau disables it.
type Drift struct {
	Amplitude float64 `yaml:"amplitude"`
	Tau       float64 `yaml:"tau"`
}

// RandomWalk is a smoothed cumulative sum of Gaussian steps.
// A zero Step disables it.
type RandomWalk struct {
	Step   float64 `yaml:"step"`
	Window int     `yaml:"window"`
}

// NoiseParams configures the baseline perturbation.
type NoiseParams struct {
	// WhiteSigma is the standard deviation of the white noise in mAU.
	WhiteSigma   float64    `yaml:"white_sigma"`
	Oscillations []Sinusoid `yaml:"oscillations"`
	Drift        Drift      `yaml:"drift"`
	RandomWalk   RandomWalk `yaml:"random_walk"`
}

// DefaultNoise returns a slow wander plus a faster ripple over 0.15 mAU white noise.
func DefaultNoise() NoiseParams {
	return NoiseParams{
		WhiteSigma: 0.15,
		Oscillations: []Sinusoid{
			{Amplitude: 0.25, Frequency: 1.5},
			{Amplitude: 0.15, Frequency: 12.0},
		},
	}
}

// Noise generates baseline perturbations.
type Noise struct {
	params NoiseParams
	src    rand.Source
}

// NewNoise creates a generator. A zero seed picks a random one so every
// render differs; any other seed repeats the same sequence.
func NewNoise(params NoiseParams, seed uint64) *Noise {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Noise{
		params: params,
		src:    rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
}

// Perturbation returns the additive noise for each grid time.
func (n *Noise) Perturbation(grid []float64) []float64 {
	out := make([]float64, len(grid))
	p := n.params

	if p.WhiteSigma > 0 {
		white := distuv.Normal{Mu: 0, Sigma: p.WhiteSigma, Src: n.src}
		for i := range out {
			out[i] = white.Rand()
		}
	}

	for _, s := range p.Oscillations {
		for i, t := range grid {
			out[i] += s.Amplitude * math.Sin(s.Frequency*t+s.Phase)
		}
	}

	if p.Drift.Tau > 0 {
		for i, t := range grid {
			out[i] += p.Drift.Amplitude * (1 - math.Exp(-t/p.Drift.Tau))
		}
	}

	if p.RandomWalk.Step > 0 && len(grid) > 0 {
		floats.Add(out, n.randomWalk(len(grid)))
	}
	return out
}

// randomWalk integrates Gaussian steps, smooths them with a centred moving
// average and removes the mean so the walk does not shift the baseline.
func (n *Noise) randomWalk(size int) []float64 {
	step := distuv.Normal{Mu: 0, Sigma: n.params.RandomWalk.Step, Src: n.src}
	steps := make([]float64, size)
	for i := range steps {
		steps[i] = step.Rand()
	}
	walk := floats.CumSum(make([]float64, size), steps)

	if w := n.params.RandomWalk.Window; w > 1 {
		walk = movingAverage(walk, w)
	}
	floats.AddConst(-floats.Sum(walk)/float64(size), walk)
	return walk
}

// movingAverage returns the centred mean over window samples, shrinking at the edges.
func movingAverage(s []float64, window int) []float64 {
	prefix := floats.CumSum(make([]float64, len(s)), s)
	out := make([]float64, len(s))
	half := window / 2
	for i := range s {
		lo := max(i-half, 0)
		hi := min(i+half, len(s)-1)
		sum := prefix[hi]
		if lo > 0 {
			sum -= prefix[lo-1]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}
