package game

import (
	"log"

	"github.com/dulchik/capture-chess/internal/board"
)

// Hooks receives cosmetic events from the Controller. Implementations must
// return promptly; a panic inside a hook is recovered and logged.
type Hooks interface {
	PieceCaptured(p board.Piece)
	PieceMoveStarted(p board.Piece, from, to board.Square)
}

// NopHooks ignores every event.
type NopHooks struct{}

func (NopHooks) PieceCaptured(board.Piece)                                {}
func (NopHooks) PieceMoveStarted(board.Piece, board.Square, board.Square) {}

// MultiHooks fans events out to several Hooks in order.
type MultiHooks []Hooks

func (m MultiHooks) PieceCaptured(p board.Piece) {
	for _, h := range m {
		h.PieceCaptured(p)
	}
}

func (m MultiHooks) PieceMoveStarted(p board.Piece, from, to board.Square) {
	for _, h := range m {
		h.PieceMoveStarted(p, from, to)
	}
}

// LogHooks writes each event to a logger.
type LogHooks struct {
	Logger *log.Logger
}

func (l LogHooks) PieceCaptured(p board.Piece) {
	l.Logger.Printf("captured %s %s on %s", p.Side, p.Kind, p.Square)
}

func (l LogHooks) PieceMoveStarted(p board.Piece, from, to board.Square) {
	l.Logger.Printf("%s %s %s-%s", p.Side, p.Kind, from, to)
}
