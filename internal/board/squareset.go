package board

import (
	"math/bits"
	"strings"
)

// SquareSet is a 64-bit set of squares, one bit per Index.
type SquareSet uint64

// SetOf builds a set from the given in-bounds squares.
func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.InBounds() {
		return s
	}
	return s | 1<<uint(sq.Index())
}

func (s SquareSet) Has(sq Square) bool {
	return sq.InBounds() && s&(1<<uint(sq.Index())) != 0
}

func (s SquareSet) Empty() bool { return s == 0 }

func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Squares lists the members in index order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for bb := uint64(s); bb != 0; bb &= bb - 1 {
		i := bits.TrailingZeros64(bb)
		out = append(out, Square{File: i % Size, Rank: i / Size})
	}
	return out
}

func (s SquareSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, sq := range s.Squares() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sq.String())
	}
	b.WriteByte('}')
	return b.String()
}
