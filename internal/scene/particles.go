package scene

import (
	"image/color"
	"math"
	"math/rand/v2"
)

const burstSize = 20

// Particle is one spark of a capture burst, in pixels.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
}

// Radius shrinks with the remaining life.
func (p Particle) Radius() float64 { return float64(p.Life) / 2 }

// Particles is a pool of live sparks.
type Particles struct {
	rng  *rand.Rand
	live []Particle
}

func NewParticles(rng *rand.Rand) *Particles {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Particles{rng: rng}
}

// Burst throws a ring of sparks out from (x, y).
func (ps *Particles) Burst(x, y float64) {
	for i := 0; i < burstSize; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 1 + ps.rng.Float64()*4
		ps.live = append(ps.live, Particle{
			X: x, Y: y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: 20 + ps.rng.IntN(21),
		})
	}
}

// Step moves every spark and drops the spent ones.
func (ps *Particles) Step() {
	kept := ps.live[:0]
	for _, p := range ps.live {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.live = kept
}

func (ps *Particles) Len() int { return len(ps.live) }

func (ps *Particles) Each(fn func(Particle)) {
	for _, p := range ps.live {
		fn(p)
	}
}

// Flicker picks a fresh ember colour for one spark.
func (ps *Particles) Flicker() color.RGBA {
	return color.RGBA{
		R: uint8(200 + ps.rng.IntN(56)),
		G: uint8(100 + ps.rng.IntN(101)),
		B: uint8(ps.rng.IntN(101)),
		A: 255,
	}
}

func (ps *Particles) Clear() { ps.live = ps.live[:0] }
