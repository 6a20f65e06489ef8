// Package movegen produces the squares a piece may move to. Check, pins,
// castling, en passant and promotion are not considered.
package movegen

import "github.com/dulchik/capture-chess/internal/board"

type offset struct{ df, dr int }

var (
	orthogonal = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royal      = append(append([]offset{}, orthogonal...), diagonal...)
	knightJump = []offset{
		{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
		{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
	}
)

type rule func(p board.Piece, occ board.Occupancy) board.SquareSet

var rules = [...]rule{
	board.Pawn:   pawnTargets,
	board.Rook:   rays(orthogonal),
	board.Knight: jumps(knightJump),
	board.Bishop: rays(diagonal),
	board.Queen:  rays(royal),
	board.King:   jumps(royal),
}

// Generate returns the legal targets of p on occ. It does not modify
// either argument. Captured pieces and unknown kinds have no targets.
func Generate(p board.Piece, occ board.Occupancy) board.SquareSet {
	if p.Captured || !p.Kind.Valid() || !p.Square.InBounds() {
		return 0
	}
	return rules[p.Kind](p, occ)
}

func pawnTargets(p board.Piece, occ board.Occupancy) board.SquareSet {
	var set board.SquareSet
	fwd := p.Side.Forward()

	one := p.Square.Offset(0, fwd)
	if one.InBounds() && empty(occ, one) {
		set = set.Add(one)
		two := p.Square.Offset(0, 2*fwd)
		if p.Square.Rank == p.Side.HomeRank() && empty(occ, two) {
			set = set.Add(two)
		}
	}

	for _, df := range [...]int{-1, 1} {
		diag := p.Square.Offset(df, fwd)
		if !diag.InBounds() {
			continue
		}
		if q, ok := occ.At(diag); ok && q.Side != p.Side {
			set = set.Add(diag)
		}
	}
	return set
}

// jumps is the single-step rule shared by knight and king.
func jumps(offsets []offset) rule {
	return func(p board.Piece, occ board.Occupancy) board.SquareSet {
		var set board.SquareSet
		for _, o := range offsets {
			to := p.Square.Offset(o.df, o.dr)
			if !to.InBounds() {
				continue
			}
			if q, ok := occ.At(to); ok && q.Side == p.Side {
				continue
			}
			set = set.Add(to)
		}
		return set
	}
}

// rays walks each direction until the edge or the first occupied square,
// which is a target only if it holds an enemy.
func rays(dirs []offset) rule {
	return func(p board.Piece, occ board.Occupancy) board.SquareSet {
		var set board.SquareSet
		for _, d := range dirs {
			for to := p.Square.Offset(d.df, d.dr); to.InBounds(); to = to.Offset(d.df, d.dr) {
				q, ok := occ.At(to)
				if !ok {
					set = set.Add(to)
					continue
				}
				if q.Side != p.Side {
					set = set.Add(to)
				}
				break
			}
		}
		return set
	}
}

func empty(occ board.Occupancy, sq board.Square) bool {
	_, ok := occ.At(sq)
	return !ok
}
