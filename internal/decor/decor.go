// Package decor describes the animated background as a pure function of
// elapsed time. The server renders the first frame and the motion
// continues in CSS using the same periods.
package decor

import (
	"math"
	"math/rand/v2"
	"time"
)

// Words float in the background of the hero section.
var Words = []string{"Go", "React", "Node.js", "SQL", "API", "UI/UX", "Git", "TypeScript"}

// Line drifts horizontally across the page.
type Line struct {
	Top    float64 // percent of viewport height
	Width  float64 // percent of viewport width
	Period time.Duration
	Delay  time.Duration
}

// Label is a floating word.
type Label struct {
	Text   string
	Left   float64
	Top    float64
	Period time.Duration
}

// Particle pulses in place.
type Particle struct {
	Left   float64
	Top    float64
	Size   float64 // px
	Period time.Duration
}

// Layer is the static description of the background.
type Layer struct {
	Lines     []Line
	Labels    []Label
	Particles []Particle
}

// NewLayer returns a layer laid out from seed. Equal seeds give equal
// layers.
func NewLayer(seed uint64) Layer {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var l Layer
	for i := 0; i < 8; i++ {
		l.Lines = append(l.Lines, Line{
			Top:    r.Float64() * 100,
			Width:  20 + r.Float64()*40,
			Period: time.Duration(8+r.IntN(8)) * time.Second,
			Delay:  time.Duration(r.IntN(4000)) * time.Millisecond,
		})
	}
	for _, w := range Words {
		l.Labels = append(l.Labels, Label{
			Text:   w,
			Left:   r.Float64() * 90,
			Top:    r.Float64() * 90,
			Period: time.Duration(6+r.IntN(6)) * time.Second,
		})
	}
	for i := 0; i < 24; i++ {
		l.Particles = append(l.Particles, Particle{
			Left:   r.Float64() * 100,
			Top:    r.Float64() * 100,
			Size:   2 + r.Float64()*4,
			Period: time.Duration(2+r.IntN(4)) * time.Second,
		})
	}
	return l
}

// LineState is a line's position at one instant.
type LineState struct {
	Line
	X float64 // percent, -Width..100
}

// LabelState is a label's position at one instant.
type LabelState struct {
	Label
	OffsetY float64 // px
	Opacity float64
}

// ParticleState is a particle's appearance at one instant.
type ParticleState struct {
	Particle
	Scale   float64
	Opacity float64
}

// Frame is the visual state of a layer at one instant.
type Frame struct {
	Lines     []LineState
	Labels    []LabelState
	Particles []ParticleState
}

// At computes the frame at elapsed. It has no side effects.
func (l Layer) At(elapsed time.Duration) Frame {
	f := Frame{
		Lines:     make([]LineState, len(l.Lines)),
		Labels:    make([]LabelState, len(l.Labels)),
		Particles: make([]ParticleState, len(l.Particles)),
	}
	for i, ln := range l.Lines {
		p := phase(elapsed-ln.Delay, ln.Period)
		f.Lines[i] = LineState{Line: ln, X: -ln.Width + p*(100+ln.Width)}
	}
	for i, lb := range l.Labels {
		w := wave(phase(elapsed, lb.Period))
		f.Labels[i] = LabelState{Label: lb, OffsetY: -20 * w, Opacity: 0.2 + 0.3*w}
	}
	for i, pt := range l.Particles {
		w := wave(phase(elapsed, pt.Period))
		f.Particles[i] = ParticleState{Particle: pt, Scale: 1 + 0.2*w, Opacity: 0.1 + 0.2*w}
	}
	return f
}

// phase maps t onto [0, 1) for a loop of length period.
func phase(t, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	m := t % period
	if m < 0 {
		m += period
	}
	return float64(m) / float64(period)
}

// wave is 0 at p=0, 1 at p=0.5 and back to 0 at p=1.
func wave(p float64) float64 {
	return (1 - math.Cos(2*math.Pi*p)) / 2
}
