package board

import "fmt"

// Occupancy answers "which live piece, if any, sits on this square".
// Captured pieces never occupy a square.
type Occupancy interface {
	At(sq Square) (Piece, bool)
}

// Board is the set of pieces in a game. Pieces are never removed: a
// capture only flags the piece. At most one live piece sits on a square.
type Board struct {
	pieces []*Piece
	nextID int
}

func New() *Board {
	return &Board{pieces: make([]*Piece, 0, 32)}
}

// Standard returns the opening position with Black on ranks 0-1 and White
// on ranks 6-7.
func Standard() *Board {
	b := New()
	backRank := [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < Size; file++ {
		b.mustAdd(Pawn, White, Sq(file, White.HomeRank()))
		b.mustAdd(Pawn, Black, Sq(file, Black.HomeRank()))
	}
	for file, k := range backRank {
		b.mustAdd(k, White, Sq(file, 7))
		b.mustAdd(k, Black, Sq(file, 0))
	}
	return b
}

func (b *Board) mustAdd(k Kind, s Side, sq Square) {
	if _, err := b.Add(k, s, sq); err != nil {
		panic(err)
	}
}

// Add places a new live piece. It fails if the square is off the board or
// already holds a live piece.
func (b *Board) Add(k Kind, s Side, sq Square) (Piece, error) {
	if !sq.InBounds() {
		return Piece{}, fmt.Errorf("add %s %s at %s: %w", s, k, sq, ErrOutOfBounds)
	}
	if p, ok := b.At(sq); ok {
		return Piece{}, fmt.Errorf("add %s %s at %s: %w by %s", s, k, sq, ErrOccupied, p)
	}
	p := &Piece{ID: b.nextID, Kind: k, Side: s, Square: sq}
	b.nextID++
	b.pieces = append(b.pieces, p)
	return *p, nil
}

// addCaptured restores a piece that is already out of play.
func (b *Board) addCaptured(k Kind, s Side, sq Square) {
	b.pieces = append(b.pieces, &Piece{ID: b.nextID, Kind: k, Side: s, Square: sq, Captured: true})
	b.nextID++
}

// At scans the live pieces for one on sq.
func (b *Board) At(sq Square) (Piece, bool) {
	if p := b.at(sq); p != nil {
		return *p, true
	}
	return Piece{}, false
}

func (b *Board) at(sq Square) *Piece {
	for _, p := range b.pieces {
		if !p.Captured && p.Square == sq {
			return p
		}
	}
	return nil
}

// Piece looks a piece up by ID, live or captured.
func (b *Board) Piece(id int) (Piece, bool) {
	if p := b.byID(id); p != nil {
		return *p, true
	}
	return Piece{}, false
}

func (b *Board) byID(id int) *Piece {
	for _, p := range b.pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Pieces returns copies of every piece in creation order.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, len(b.pieces))
	for i, p := range b.pieces {
		out[i] = *p
	}
	return out
}

// Live returns copies of the pieces still in play.
func (b *Board) Live() []Piece {
	out := make([]Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		if !p.Captured {
			out = append(out, *p)
		}
	}
	return out
}

// Move relocates a live piece. The destination must be empty; captures are
// applied with Capture first.
func (b *Board) Move(id int, to Square) error {
	p := b.byID(id)
	if p == nil || p.Captured {
		return fmt.Errorf("move piece %d: %w", id, ErrNoPiece)
	}
	if !to.InBounds() {
		return fmt.Errorf("move %s to %s: %w", p, to, ErrOutOfBounds)
	}
	if q := b.at(to); q != nil && q != p {
		return fmt.Errorf("move %s to %s: %w by %s", p, to, ErrOccupied, q)
	}
	p.Square = to
	return nil
}

// Capture takes a live piece out of play. The piece keeps its last square.
func (b *Board) Capture(id int) error {
	p := b.byID(id)
	if p == nil || p.Captured {
		return fmt.Errorf("capture piece %d: %w", id, ErrNoPiece)
	}
	p.Captured = true
	return nil
}

// Clone returns an independent copy with the same IDs.
func (b *Board) Clone() *Board {
	c := &Board{pieces: make([]*Piece, len(b.pieces)), nextID: b.nextID}
	for i, p := range b.pieces {
		cp := *p
		c.pieces[i] = &cp
	}
	return c
}

// Validate checks that every live piece is on the board and that no two
// live pieces share a square.
func (b *Board) Validate() error {
	var seen SquareSet
	for _, p := range b.pieces {
		if p.Captured {
			continue
		}
		if !p.Kind.Valid() {
			return fmt.Errorf("piece %d: invalid kind %d", p.ID, p.Kind)
		}
		if !p.Square.InBounds() {
			return fmt.Errorf("%s: %w", p, ErrOutOfBounds)
		}
		if seen.Has(p.Square) {
			return fmt.Errorf("%s: %w", p, ErrOccupied)
		}
		seen = seen.Add(p.Square)
	}
	return nil
}
