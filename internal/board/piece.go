package board

import "fmt"

// Kind is one of the six fixed piece types.
type Kind uint8

const (
	Pawn Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

var kindNames = [...]string{
	Pawn:   "pawn",
	Rook:   "rook",
	Knight: "knight",
	Bishop: "bishop",
	Queen:  "queen",
	King:   "king",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

func (k Kind) Valid() bool { return k <= King }

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: kind %d", ErrBadSnapshot, k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown kind %q", ErrBadSnapshot, text)
}

// Side is one of the two players.
type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward is the rank delta of one pawn step. White advances toward
// rank 0, Black toward rank 7.
func (s Side) Forward() int {
	if s == White {
		return -1
	}
	return 1
}

// HomeRank is the rank a side's pawns start on.
func (s Side) HomeRank() int {
	if s == White {
		return 6
	}
	return 1
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*s = White
	case "black":
		*s = Black
	default:
		return fmt.Errorf("%w: unknown side %q", ErrBadSnapshot, text)
	}
	return nil
}

// Piece is a single chess man. Square is meaningful only while Captured
// is false. ID is assigned by the Board and stays fixed for the piece's
// lifetime.
type Piece struct {
	ID       int
	Kind     Kind
	Side     Side
	Square   Square
	Captured bool
}

func (p Piece) String() string {
	if p.Captured {
		return fmt.Sprintf("%s %s (captured)", p.Side, p.Kind)
	}
	return fmt.Sprintf("%s %s %s", p.Side, p.Kind, p.Square)
}
