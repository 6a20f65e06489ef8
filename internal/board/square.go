package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the number of files and ranks.
const Size = 8

// Square is a (file, rank) pair. Rank 0 is Black's back rank and is drawn
// at the top of the board; rank 7 is White's.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square { return Square{File: file, Rank: rank} }

// InBounds reports whether the square lies on the 8x8 board.
func (s Square) InBounds() bool {
	return s.File >= 0 && s.File < Size && s.Rank >= 0 && s.Rank < Size
}

// Offset returns the square df files and dr ranks away. The result may
// be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// Index maps an in-bounds square to 0..63.
func (s Square) Index() int { return s.Rank*Size + s.File }

// String renders the square in algebraic form, e.g. Sq(4, 6) is "e2".
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, Size-s.Rank)
}

// ParseSquare accepts algebraic notation ("e2") or a raw "file,rank" pair
// ("4,6").
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if f, r, ok := strings.Cut(s, ","); ok {
		file, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Square{}, fmt.Errorf("parse square %q: %w", s, err)
		}
		rank, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return Square{}, fmt.Errorf("parse square %q: %w", s, err)
		}
		sq := Sq(file, rank)
		if !sq.InBounds() {
			return Square{}, fmt.Errorf("parse square %q: %w", s, ErrOutOfBounds)
		}
		return sq, nil
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("parse square %q: %w", s, ErrOutOfBounds)
	}
	return Square{File: int(s[0] - 'a'), Rank: Size - int(s[1]-'0')}, nil
}
