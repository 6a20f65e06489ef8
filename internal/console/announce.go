package console

import (
	"fmt"
	"io"

	"github.com/dulchik/capture-chess/internal/board"
)

// Announcer prints moves and captures as they happen. It satisfies
// game.Hooks.
type Announcer struct {
	W io.Writer
}

func (a Announcer) PieceCaptured(p board.Piece) {
	fmt.Fprintf(a.W, "%s %s captured on %s\n", p.Side, p.Kind, captureMrk.Sprint(p.Square))
}

func (a Announcer) PieceMoveStarted(p board.Piece, from, to board.Square) {
	fmt.Fprintf(a.W, "%s %s %s-%s\n", p.Side, p.Kind, from, to)
}
