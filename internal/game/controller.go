// Package game holds the turn and selection state machine that turns
// square clicks into moves.
package game

import (
	"fmt"
	"log"

	"github.com/dulchik/capture-chess/internal/board"
	"github.com/dulchik/capture-chess/internal/movegen"
)

// Outcome describes what a click did.
type Outcome int

const (
	// Ignored: nothing was selected and the click did not select anything.
	Ignored Outcome = iota
	// Selected: a piece of the side to move is now selected.
	Selected
	// Moved: the selected piece moved, possibly capturing.
	Moved
	// Deselected: the click was not a legal target and cleared the selection.
	Deselected
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Moved:
		return "moved"
	case Deselected:
		return "deselected"
	default:
		return "ignored"
	}
}

// Controller is either idle or has one piece of the side to move selected
// together with that piece's cached legal targets. It is not safe for
// concurrent use; the host loop feeds it one click at a time.
type Controller struct {
	board    *board.Board
	turn     board.Side
	selected int // piece ID, -1 when idle
	targets  board.SquareSet
	hooks    Hooks
	logger   *log.Logger
	debug    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithHooks sets the receiver of capture and move events.
func WithHooks(h Hooks) Option {
	return func(c *Controller) {
		if h != nil {
			c.hooks = h
		}
	}
}

// WithTurn sets the side to move first. The default is White.
func WithTurn(s board.Side) Option {
	return func(c *Controller) { c.turn = s }
}

// WithLogger sets where recovered hook panics are reported.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDebug makes the controller validate the board after every move and
// panic if two live pieces share a square.
func WithDebug(on bool) Option {
	return func(c *Controller) { c.debug = on }
}

// New returns an idle controller for b, White to move unless overridden.
func New(b *board.Board, opts ...Option) *Controller {
	c := &Controller{
		board:    b,
		turn:     board.White,
		selected: -1,
		hooks:    NopHooks{},
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset replaces the board and side to move and clears any selection.
func (c *Controller) Reset(b *board.Board, turn board.Side) {
	c.board = b
	c.turn = turn
	c.clearSelection()
}

func (c *Controller) Turn() board.Side { return c.turn }

// Selected returns a copy of the selected piece.
func (c *Controller) Selected() (board.Piece, bool) {
	if c.selected < 0 {
		return board.Piece{}, false
	}
	return c.board.Piece(c.selected)
}

// LegalTargets is the target set of the current selection, empty when idle.
func (c *Controller) LegalTargets() board.SquareSet { return c.targets }

// LegalMoves returns the targets of any piece on the current board.
func (c *Controller) LegalMoves(p board.Piece) board.SquareSet {
	return movegen.Generate(p, c.board)
}

// Pieces returns snapshots of every piece, captured ones included.
func (c *Controller) Pieces() []board.Piece { return c.board.Pieces() }

// Frame is a private copy of everything a renderer reads in one frame.
type Frame struct {
	Board    *board.Board
	Turn     board.Side
	Selected board.Piece
	Active   bool // a piece is selected
	Targets  board.SquareSet
}

// Frame snapshots the board, turn and selection so a reader can use them
// without seeing a half-applied click.
func (c *Controller) Frame() Frame {
	f := Frame{Board: c.board.Clone(), Turn: c.turn, Targets: c.targets}
	f.Selected, f.Active = c.Selected()
	return f
}

// Board exposes the board for read-only use such as saving.
func (c *Controller) Board() *board.Board { return c.board }

// Click feeds one board square into the state machine. Squares off the
// board are ignored and leave the state untouched.
func (c *Controller) Click(sq board.Square) Outcome {
	if !sq.InBounds() {
		return Ignored
	}
	if c.selected < 0 {
		return c.trySelect(sq)
	}
	if !c.targets.Has(sq) {
		// Any other click, including on the selected piece, deselects.
		c.clearSelection()
		return Deselected
	}
	c.apply(sq)
	return Moved
}

func (c *Controller) trySelect(sq board.Square) Outcome {
	p, ok := c.board.At(sq)
	if !ok || p.Side != c.turn {
		return Ignored
	}
	c.selected = p.ID
	c.targets = movegen.Generate(p, c.board)
	return Selected
}

func (c *Controller) apply(to board.Square) {
	mover, ok := c.board.Piece(c.selected)
	if !ok {
		panic(fmt.Sprintf("game: selected piece %d vanished", c.selected))
	}
	from := mover.Square

	if victim, ok := c.board.At(to); ok && victim.ID != mover.ID && victim.Side != mover.Side {
		if err := c.board.Capture(victim.ID); err != nil {
			panic(fmt.Sprintf("game: capture on %s: %v", to, err))
		}
		victim.Captured = true
		c.notify(func() { c.hooks.PieceCaptured(victim) })
	}
	if err := c.board.Move(mover.ID, to); err != nil {
		panic(fmt.Sprintf("game: move %s: %v", mover, err))
	}
	mover.Square = to
	c.notify(func() { c.hooks.PieceMoveStarted(mover, from, to) })

	if c.debug {
		if err := c.board.Validate(); err != nil {
			panic(fmt.Sprintf("game: board invariant broken after %s %s-%s: %v", mover.Kind, from, to, err))
		}
	}

	c.turn = c.turn.Other()
	c.clearSelection()
}

func (c *Controller) clearSelection() {
	c.selected = -1
	c.targets = 0
}

func (c *Controller) notify(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Printf("hook panic: %v", r)
		}
	}()
	fn()
}
