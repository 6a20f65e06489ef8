package scene

import (
	"math"

	"github.com/dulchik/capture-chess/internal/board"
)

const (
	tweenRate = 0.2
	tweenSnap = 0.5
)

// Tween eases a piece from one square to another, in board units.
type Tween struct {
	X, Y   float64
	TX, TY float64
}

func NewTween(from, to board.Square) *Tween {
	return &Tween{
		X: float64(from.File), Y: float64(from.Rank),
		TX: float64(to.File), TY: float64(to.Rank),
	}
}

// Step advances one frame and reports whether the tween is finished.
func (t *Tween) Step() bool {
	dx, dy := t.TX-t.X, t.TY-t.Y
	if math.Hypot(dx, dy) < tweenSnap {
		t.X, t.Y = t.TX, t.TY
		return true
	}
	t.X += dx * tweenRate
	t.Y += dy * tweenRate
	return false
}
