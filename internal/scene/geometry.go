// Package scene holds the display-side state that the renderer keeps
// between frames: pixel geometry, coordinate labels, piece figures, move
// tweens and capture particles. It has no dependency on the windowing
// library.
package scene

import "github.com/dulchik/capture-chess/internal/board"

// DefaultTile is the side of one square in pixels.
const DefaultTile = 80

// Geometry maps between board squares and screen pixels.
type Geometry struct {
	Tile int
}

func (g Geometry) tile() int {
	if g.Tile <= 0 {
		return DefaultTile
	}
	return g.Tile
}

// BoardSize is the width and height of the board in pixels.
func (g Geometry) BoardSize() int { return g.tile() * board.Size }

// SquareAt returns the square under pixel (x, y), or false when the
// pixel lies outside the board.
func (g Geometry) SquareAt(x, y int) (board.Square, bool) {
	if x < 0 || y < 0 || x >= g.BoardSize() || y >= g.BoardSize() {
		return board.Square{}, false
	}
	return board.Sq(x/g.tile(), y/g.tile()), true
}

// Corner is the top-left pixel of a (possibly fractional) board position.
func (g Geometry) Corner(file, rank float64) (float64, float64) {
	t := float64(g.tile())
	return file * t, rank * t
}

// Center is the middle pixel of a (possibly fractional) board position.
func (g Geometry) Center(file, rank float64) (float64, float64) {
	t := float64(g.tile())
	return file*t + t/2, rank*t + t/2
}

// Label is a coordinate caption drawn inside a square. Rank labels sit in
// the top-left corner, file labels in the bottom-right.
type Label struct {
	Text   string
	Square board.Square
	Rank   bool
}

// Labels lists rank numbers down the a-file then file letters along the
// bottom row.
func Labels() []Label {
	out := make([]Label, 0, 2*board.Size)
	for rank := 0; rank < board.Size; rank++ {
		sq := board.Sq(0, rank)
		out = append(out, Label{Text: sq.String()[1:], Square: sq, Rank: true})
	}
	for file := 0; file < board.Size; file++ {
		sq := board.Sq(file, board.Size-1)
		out = append(out, Label{Text: sq.String()[:1], Square: sq})
	}
	return out
}
