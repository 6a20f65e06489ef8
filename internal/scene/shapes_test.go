package scene

import (
	"testing"

	"github.com/dulchik/capture-chess/internal/board"
)

var allKinds = []board.Kind{board.Pawn, board.Rook, board.Knight, board.Bishop, board.Queen, board.King}

func TestFigureEndsWithOutlineRing(t *testing.T) {
	for _, k := range allKinds {
		shapes := Figure(k, 40, 40, 20)
		if len(shapes) < 2 {
			t.Fatalf("%s: only %d shapes", k, len(shapes))
		}
		last := shapes[len(shapes)-1]
		if last.Kind != Ring || last.Paint != Outline || last.R != 20 || last.C != (Point{40, 40}) {
			t.Errorf("%s: last shape %+v is not the outline ring", k, last)
		}
	}
}

func TestFiguresDiffer(t *testing.T) {
	// Sample a grid around the centre and compare coverage masks.
	mask := func(k board.Kind) [24][24]bool {
		var m [24][24]bool
		for _, s := range Figure(k, 40, 40, 20) {
			for y := 0; y < 24; y++ {
				for x := 0; x < 24; x++ {
					if s.Contains(float64(16+x*2), float64(10+y*2)) {
						m[y][x] = true
					}
				}
			}
		}
		return m
	}
	seen := make(map[[24][24]bool]board.Kind)
	for _, k := range allKinds {
		m := mask(k)
		if other, dup := seen[m]; dup {
			t.Fatalf("%s and %s draw the same figure", k, other)
		}
		seen[m] = k
	}
}

func TestOnlyQueenHasJewel(t *testing.T) {
	for _, k := range allKinds {
		jewels := 0
		for _, s := range Figure(k, 0, 0, 30) {
			if s.Paint == Jewel {
				jewels++
			}
		}
		want := 0
		if k == board.Queen {
			want = 1
		}
		if jewels != want {
			t.Errorf("%s: %d jewels, want %d", k, jewels, want)
		}
	}
}

func TestFiguresStayInsideTile(t *testing.T) {
	const tile = 60.0
	r := tile / 3
	for _, k := range allKinds {
		for _, s := range Figure(k, tile/2, tile/2, r) {
			for y := -10.0; y < tile+10; y++ {
				for x := -10.0; x < tile+10; x++ {
					inTile := x >= 0 && x < tile && y >= 0 && y < tile
					if !inTile && s.Contains(x+0.5, y+0.5) {
						t.Fatalf("%s: shape %d spills to (%v,%v)", k, s.Kind, x, y)
					}
				}
			}
		}
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		s    Shape
		x, y float64
		want bool
	}{
		{"circle centre", Shape{Kind: Circle, C: Point{5, 5}, R: 2}, 5, 5, true},
		{"circle outside", Shape{Kind: Circle, C: Point{5, 5}, R: 2}, 8, 5, false},
		{"ring edge", Shape{Kind: Ring, C: Point{0, 0}, R: 10, Width: 2}, 10.5, 0, true},
		{"ring hole", Shape{Kind: Ring, C: Point{0, 0}, R: 10, Width: 2}, 0, 0, false},
		{"rect inside", Shape{Kind: Rect, X: 1, Y: 1, W: 4, H: 2}, 2, 2, true},
		{"rect below", Shape{Kind: Rect, X: 1, Y: 1, W: 4, H: 2}, 2, 3.5, false},
		{"triangle inside", poly(Point{0, 0}, Point{10, 0}, Point{0, 10}), 2, 2, true},
		{"triangle outside", poly(Point{0, 0}, Point{10, 0}, Point{0, 10}), 8, 8, false},
		{"line on", line(0, 0, 10, 0), 5, 0.5, true},
		{"line past end", line(0, 0, 10, 0), 12, 0, false},
	}
	for _, tt := range tests {
		if got := tt.s.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
