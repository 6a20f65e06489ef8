package board

import (
	"fmt"
	"sort"

	"github.com/corentings/chess/v2"
)

var kindToType = [...]chess.PieceType{
	Pawn:   chess.Pawn,
	Rook:   chess.Rook,
	Knight: chess.Knight,
	Bishop: chess.Bishop,
	Queen:  chess.Queen,
	King:   chess.King,
}

func toChessSquare(sq Square) chess.Square {
	return chess.Square(sq.File + Size*(Size-1-sq.Rank))
}

func fromChessSquare(sq chess.Square) Square {
	return Square{File: int(sq.File()), Rank: Size - 1 - int(sq.Rank())}
}

func toChessColor(s Side) chess.Color {
	if s == Black {
		return chess.Black
	}
	return chess.White
}

func fromChessPiece(p chess.Piece) (Kind, Side, bool) {
	side := White
	if p.Color() == chess.Black {
		side = Black
	}
	for k, t := range kindToType {
		if t == p.Type() {
			return Kind(k), side, true
		}
	}
	return 0, side, false
}

// FEN returns the piece-placement field of FEN for the live pieces,
// e.g. "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR".
func (b *Board) FEN() string {
	m := make(map[chess.Square]chess.Piece, len(b.pieces))
	for _, p := range b.pieces {
		if p.Captured {
			continue
		}
		m[toChessSquare(p.Square)] = chess.NewPiece(kindToType[p.Kind], toChessColor(p.Side))
	}
	return chess.NewBoard(m).String()
}

// ParseFEN builds a board from a FEN piece-placement field. Pieces are
// created in square order, rank 0 first.
func ParseFEN(placement string) (*Board, error) {
	var cb chess.Board
	if err := cb.UnmarshalText([]byte(placement)); err != nil {
		return nil, fmt.Errorf("%w: fen %q: %v", ErrBadSnapshot, placement, err)
	}
	type entry struct {
		sq   Square
		kind Kind
		side Side
	}
	entries := make([]entry, 0, 32)
	for csq, cp := range cb.SquareMap() {
		k, s, ok := fromChessPiece(cp)
		if !ok {
			return nil, fmt.Errorf("%w: fen %q: piece %v", ErrBadSnapshot, placement, cp)
		}
		entries = append(entries, entry{sq: fromChessSquare(csq), kind: k, side: s})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].sq.Index() < entries[j].sq.Index() })

	b := New()
	for _, e := range entries {
		if _, err := b.Add(e.kind, e.side, e.sq); err != nil {
			return nil, err
		}
	}
	return b, nil
}
