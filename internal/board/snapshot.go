package board

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the saved form of a game: live piece placement as FEN, the
// captured pieces, and whose turn it is.
type Snapshot struct {
	Turn     Side           `json:"turn"`
	Board    string         `json:"board"`
	Captured []CapturedMark `json:"captured,omitempty"`
}

// CapturedMark records a piece that is out of play and where it fell.
type CapturedMark struct {
	Kind   Kind   `json:"kind"`
	Side   Side   `json:"side"`
	Square string `json:"square"`
}

// Encode serialises b together with the side to move.
func Encode(b *Board, turn Side) ([]byte, error) {
	snap := Snapshot{Turn: turn, Board: b.FEN()}
	for _, p := range b.pieces {
		if p.Captured {
			snap.Captured = append(snap.Captured, CapturedMark{Kind: p.Kind, Side: p.Side, Square: p.Square.String()})
		}
	}
	return json.MarshalIndent(snap, "", "  ")
}

// Decode restores a board and side to move written by Encode.
func Decode(data []byte) (*Board, Side, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, White, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	b, err := ParseFEN(snap.Board)
	if err != nil {
		return nil, White, err
	}
	for _, c := range snap.Captured {
		sq, err := ParseSquare(c.Square)
		if err != nil {
			return nil, White, fmt.Errorf("%w: captured %s %s: %v", ErrBadSnapshot, c.Side, c.Kind, err)
		}
		b.addCaptured(c.Kind, c.Side, sq)
	}
	if err := b.Validate(); err != nil {
		return nil, White, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	return b, snap.Turn, nil
}
