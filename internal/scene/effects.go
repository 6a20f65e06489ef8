package scene

import (
	"math/rand/v2"

	"github.com/dulchik/capture-chess/internal/board"
)

// Effects turns controller events into animation state. It satisfies
// game.Hooks.
type Effects struct {
	geo       Geometry
	tweens    map[int]*Tween
	particles *Particles
}

func NewEffects(geo Geometry, rng *rand.Rand) *Effects {
	return &Effects{
		geo:       geo,
		tweens:    make(map[int]*Tween),
		particles: NewParticles(rng),
	}
}

func (e *Effects) PieceCaptured(p board.Piece) {
	x, y := e.geo.Center(float64(p.Square.File), float64(p.Square.Rank))
	e.particles.Burst(x, y)
}

func (e *Effects) PieceMoveStarted(p board.Piece, from, to board.Square) {
	e.tweens[p.ID] = NewTween(from, to)
}

// Step advances every tween and spark by one frame.
func (e *Effects) Step() {
	for id, t := range e.tweens {
		if t.Step() {
			delete(e.tweens, id)
		}
	}
	e.particles.Step()
}

// Position is where p should be drawn this frame, in board units.
func (e *Effects) Position(p board.Piece) (float64, float64) {
	if t, ok := e.tweens[p.ID]; ok {
		return t.X, t.Y
	}
	return float64(p.Square.File), float64(p.Square.Rank)
}

// Moving reports whether the piece with the given ID is still sliding.
func (e *Effects) Moving(id int) bool {
	_, ok := e.tweens[id]
	return ok
}

func (e *Effects) Particles() *Particles { return e.particles }

// Clear drops all running animation, e.g. on restart.
func (e *Effects) Clear() {
	clear(e.tweens)
	e.particles.Clear()
}
