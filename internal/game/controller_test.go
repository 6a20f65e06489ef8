package game

import (
	"bytes"
	"log"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/dulchik/capture-chess/internal/board"
)

type event struct {
	kind     string
	piece    board.Piece
	from, to board.Square
}

type recorder struct{ events []event }

func (r *recorder) PieceCaptured(p board.Piece) {
	r.events = append(r.events, event{kind: "capture", piece: p})
}

func (r *recorder) PieceMoveStarted(p board.Piece, from, to board.Square) {
	r.events = append(r.events, event{kind: "move", piece: p, from: from, to: to})
}

func TestInitialState(t *testing.T) {
	c := New(board.Standard())
	if c.Turn() != board.White {
		t.Fatalf("turn %s, want white", c.Turn())
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected idle controller")
	}
	if !c.LegalTargets().Empty() {
		t.Fatalf("expected no targets")
	}
}

func TestSelectOnlyOwnPieces(t *testing.T) {
	c := New(board.Standard())
	tests := []struct {
		name string
		sq   board.Square
		want Outcome
	}{
		{"empty square", board.Sq(4, 4), Ignored},
		{"enemy piece", board.Sq(4, 1), Ignored},
		{"off board", board.Sq(8, 3), Ignored},
		{"negative", board.Sq(-1, 6), Ignored},
	}
	for _, tt := range tests {
		if got := c.Click(tt.sq); got != tt.want {
			t.Fatalf("%s: got %s, want %s", tt.name, got, tt.want)
		}
		if _, ok := c.Selected(); ok {
			t.Fatalf("%s: selection made", tt.name)
		}
	}

	if got := c.Click(board.Sq(4, 6)); got != Selected {
		t.Fatalf("select pawn: got %s", got)
	}
	p, ok := c.Selected()
	if !ok || p.Kind != board.Pawn || p.Square != board.Sq(4, 6) {
		t.Fatalf("selected %v", p)
	}
	if want := board.SetOf(board.Sq(4, 5), board.Sq(4, 4)); c.LegalTargets() != want {
		t.Fatalf("targets %s, want %s", c.LegalTargets(), want)
	}
}

func TestMoveFlipsTurnAndFiresHook(t *testing.T) {
	rec := &recorder{}
	b := board.Standard()
	c := New(b, WithHooks(rec))
	before := b.FEN()

	c.Click(board.Sq(4, 6))
	if got := c.Click(board.Sq(4, 4)); got != Moved {
		t.Fatalf("got %s, want moved", got)
	}
	if c.Turn() != board.Black {
		t.Fatalf("turn did not flip")
	}
	if _, ok := c.Selected(); ok || !c.LegalTargets().Empty() {
		t.Fatalf("selection not cleared after move")
	}
	if _, ok := b.At(board.Sq(4, 4)); !ok {
		t.Fatalf("pawn not on e4")
	}
	if _, ok := b.At(board.Sq(4, 6)); ok {
		t.Fatalf("e2 still occupied")
	}
	if after := b.FEN(); after == before {
		t.Fatalf("board unchanged")
	}
	if len(rec.events) != 1 || rec.events[0].kind != "move" ||
		rec.events[0].from != board.Sq(4, 6) || rec.events[0].to != board.Sq(4, 4) ||
		rec.events[0].piece.Square != board.Sq(4, 4) {
		t.Fatalf("unexpected events %+v", rec.events)
	}

	// White can no longer select.
	if got := c.Click(board.Sq(3, 6)); got != Ignored {
		t.Fatalf("white selected out of turn: %s", got)
	}
}

func TestCaptureFlagsExactlyOnePiece(t *testing.T) {
	rec := &recorder{}
	b := board.New()
	rook, _ := b.Add(board.Rook, board.White, board.Sq(0, 7))
	pawn, _ := b.Add(board.Pawn, board.Black, board.Sq(0, 3))
	b.Add(board.King, board.Black, board.Sq(7, 0))
	c := New(b, WithHooks(rec))

	c.Click(board.Sq(0, 7))
	before := c.Pieces()
	want := board.SetOf(board.Sq(0, 6), board.Sq(0, 5), board.Sq(0, 4), board.Sq(0, 3),
		board.Sq(1, 7), board.Sq(2, 7), board.Sq(3, 7), board.Sq(4, 7), board.Sq(5, 7), board.Sq(6, 7), board.Sq(7, 7))
	if c.LegalTargets() != want {
		t.Fatalf("targets %s, want %s", c.LegalTargets(), want)
	}
	if got := c.Click(board.Sq(0, 3)); got != Moved {
		t.Fatalf("got %s", got)
	}

	var moved, captured int
	for _, p := range c.Pieces() {
		if p.Captured {
			captured++
			if p.ID != pawn.ID {
				t.Fatalf("wrong piece captured: %s", p)
			}
		}
		if p.ID == rook.ID && p.Square == board.Sq(0, 3) {
			moved++
		}
	}
	if moved != 1 || captured != 1 {
		t.Fatalf("moved=%d captured=%d", moved, captured)
	}
	checkOneMove(t, before, c.Pieces(), rook.ID, board.Sq(0, 3))
	if len(rec.events) != 2 || rec.events[0].kind != "capture" || rec.events[1].kind != "move" {
		t.Fatalf("events %+v", rec.events)
	}
	if !rec.events[0].piece.Captured || rec.events[0].piece.ID != pawn.ID {
		t.Fatalf("capture event carried %v", rec.events[0].piece)
	}
	if c.Turn() != board.Black {
		t.Fatalf("turn did not flip")
	}
}

func TestReclickingSelectedPieceDeselects(t *testing.T) {
	rec := &recorder{}
	b := board.Standard()
	c := New(b, WithHooks(rec))
	before := b.FEN()

	if got := c.Click(board.Sq(4, 7)); got != Selected {
		t.Fatalf("select king: %s", got)
	}
	if got := c.Click(board.Sq(4, 7)); got != Deselected {
		t.Fatalf("reclick king: %s", got)
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("king still selected")
	}
	if c.Turn() != board.White {
		t.Fatalf("turn changed")
	}
	if b.FEN() != before || len(rec.events) != 0 {
		t.Fatalf("board changed on deselect")
	}
}

func TestNonLegalClickDeselectsEvenOnOwnPiece(t *testing.T) {
	b := board.Standard()
	c := New(b)
	c.Click(board.Sq(4, 6))
	if got := c.Click(board.Sq(3, 6)); got != Deselected {
		t.Fatalf("got %s, want deselected", got)
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("clicking another own piece must not reselect")
	}
	if got := c.Click(board.Sq(3, 6)); got != Selected {
		t.Fatalf("second click should select: %s", got)
	}
}

func TestSelectionWithNoTargets(t *testing.T) {
	c := New(board.Standard())
	if got := c.Click(board.Sq(0, 7)); got != Selected {
		t.Fatalf("rook: %s", got)
	}
	if !c.LegalTargets().Empty() {
		t.Fatalf("boxed-in rook has targets %s", c.LegalTargets())
	}
	if got := c.Click(board.Sq(0, 5)); got != Deselected {
		t.Fatalf("got %s", got)
	}
}

func TestOffBoardClickKeepsSelection(t *testing.T) {
	c := New(board.Standard())
	c.Click(board.Sq(1, 7))
	if got := c.Click(board.Sq(1, 9)); got != Ignored {
		t.Fatalf("got %s", got)
	}
	if _, ok := c.Selected(); !ok {
		t.Fatalf("off-board click cleared the selection")
	}
}

func TestResetAndWithTurn(t *testing.T) {
	c := New(board.Standard(), WithTurn(board.Black))
	if c.Turn() != board.Black {
		t.Fatalf("WithTurn ignored")
	}
	c.Click(board.Sq(1, 0))
	c.Reset(board.Standard(), board.White)
	if _, ok := c.Selected(); ok || c.Turn() != board.White {
		t.Fatalf("reset did not clear state")
	}
}

type panicky struct{}

func (panicky) PieceCaptured(board.Piece)                                {}
func (panicky) PieceMoveStarted(board.Piece, board.Square, board.Square) { panic("boom") }

func TestHookPanicIsRecovered(t *testing.T) {
	var buf bytes.Buffer
	c := New(board.Standard(), WithHooks(panicky{}), WithLogger(log.New(&buf, "", 0)), WithDebug(true))
	c.Click(board.Sq(6, 7))
	if got := c.Click(board.Sq(5, 5)); got != Moved {
		t.Fatalf("got %s", got)
	}
	if c.Turn() != board.Black {
		t.Fatalf("turn did not flip after hook panic")
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("panic not logged: %q", buf.String())
	}
}

func TestMultiHooks(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	c := New(board.Standard(), WithHooks(MultiHooks{a, b}))
	c.Click(board.Sq(0, 6))
	c.Click(board.Sq(0, 5))
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("fan-out failed: %d %d", len(a.events), len(b.events))
	}
}

func TestLegalMovesIsReadOnly(t *testing.T) {
	b := board.Standard()
	c := New(b)
	knight, _ := b.At(board.Sq(6, 0))
	want := board.SetOf(board.Sq(5, 2), board.Sq(7, 2))
	if got := c.LegalMoves(knight); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("LegalMoves changed selection")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	b := board.New()
	b.Add(board.Queen, board.White, board.Sq(3, 7))
	b.Add(board.Rook, board.Black, board.Sq(3, 0))
	c := New(b, WithHooks(LogHooks{Logger: log.New(&buf, "", 0)}))
	c.Click(board.Sq(3, 7))
	c.Click(board.Sq(3, 0))
	want := "captured black rook on d8\nwhite queen d1-d8\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestFrameIsACopy(t *testing.T) {
	c := New(board.Standard())
	c.Click(board.Sq(4, 6))
	f := c.Frame()
	if !f.Active || f.Selected.Square != board.Sq(4, 6) || f.Turn != board.White {
		t.Fatalf("frame %+v", f)
	}
	if f.Targets != c.LegalTargets() {
		t.Fatalf("targets %s, want %s", f.Targets, c.LegalTargets())
	}

	c.Click(board.Sq(4, 4))
	if _, ok := f.Board.At(board.Sq(4, 6)); !ok {
		t.Fatalf("move leaked into an earlier frame")
	}
	if g := c.Frame(); g.Active || g.Turn != board.Black {
		t.Fatalf("fresh frame %+v", g)
	}
}

// checkOneMove compares the piece lists either side of a move: only mover
// changes square, landing on to, and at most one other piece, the one that
// stood on to, becomes captured.
func checkOneMove(t *testing.T, before, after []board.Piece, mover int, to board.Square) {
	t.Helper()
	if len(before) != len(after) {
		t.Fatalf("piece count %d -> %d", len(before), len(after))
	}
	var moved, flipped int
	for i := range before {
		b, a := before[i], after[i]
		if b.ID != a.ID || b.Kind != a.Kind || b.Side != a.Side {
			t.Fatalf("piece %d changed identity: %s -> %s", i, b, a)
		}
		if b.Square != a.Square {
			moved++
			if a.ID != mover || a.Square != to || b.Captured {
				t.Fatalf("unexpected square change %s -> %s", b, a)
			}
		}
		if b.Captured != a.Captured {
			flipped++
			if !a.Captured || a.Square != to || a.Side == before[indexOf(before, mover)].Side {
				t.Fatalf("unexpected capture change %s -> %s", b, a)
			}
		}
	}
	if moved != 1 || flipped > 1 {
		t.Fatalf("moved=%d flipped=%d, want 1 and at most 1", moved, flipped)
	}
}

func indexOf(ps []board.Piece, id int) int {
	for i, p := range ps {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func randomBoard(r *rand.Rand, n int) *board.Board {
	b := board.New()
	for i := 0; i < n; i++ {
		sq := board.Sq(r.IntN(board.Size), r.IntN(board.Size))
		b.Add(board.Kind(r.IntN(6)), board.Side(r.IntN(2)), sq)
	}
	return b
}

func TestRandomGamesChangeOnePieceAtATime(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 200; round++ {
		c := New(randomBoard(r, 4+r.IntN(28)), WithTurn(board.Side(r.IntN(2))), WithDebug(true))

		for ply := 0; ply < 30; ply++ {
			var movable []board.Piece
			for _, p := range c.Board().Live() {
				if p.Side == c.Turn() && !c.LegalMoves(p).Empty() {
					movable = append(movable, p)
				}
			}
			if len(movable) == 0 {
				break
			}
			p := movable[r.IntN(len(movable))]
			if got := c.Click(p.Square); got != Selected {
				t.Fatalf("round %d: clicking %s gave %s", round, p, got)
			}
			targets := c.LegalTargets().Squares()
			to := targets[r.IntN(len(targets))]
			victim, capture := c.Board().At(to)

			turn := c.Turn()
			before := c.Pieces()
			if got := c.Click(to); got != Moved {
				t.Fatalf("round %d: %s to %s gave %s", round, p, to, got)
			}
			after := c.Pieces()
			checkOneMove(t, before, after, p.ID, to)

			if capture {
				if v, _ := c.Board().Piece(victim.ID); !v.Captured {
					t.Fatalf("round %d: %s not captured", round, victim)
				}
			}
			if c.Turn() != turn.Other() {
				t.Fatalf("round %d: turn stayed %s", round, turn)
			}
			if _, ok := c.Selected(); ok {
				t.Fatalf("round %d: selection survived a move", round)
			}
			if err := c.Board().Validate(); err != nil {
				t.Fatalf("round %d: %v", round, err)
			}
		}
	}
}
