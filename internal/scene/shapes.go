package scene

import (
	"math"

	"github.com/dulchik/capture-chess/internal/board"
)

// Primitive is the geometry of one piece of a figure.
type Primitive int

const (
	Circle  Primitive = iota // filled disc at C with radius R
	Rect                     // filled axis-aligned box at X, Y sized W x H
	Polygon                  // filled convex polygon through Points
	Line                     // segment Points[0]-Points[1], Width thick
	Ring                     // circle outline at C with radius R, Width thick
)

// Paint selects the colour a shape is filled with.
type Paint int

const (
	Body    Paint = iota // the side's piece colour
	Outline              // dark trim
	Jewel                // queen's gem: gold for White, red for Black
)

type Point struct{ X, Y float64 }

// Shape is one primitive of a piece figure, in pixels.
type Shape struct {
	Kind       Primitive
	Paint      Paint
	C          Point
	R          float64
	X, Y, W, H float64
	Points     []Point
	Width      float64
}

type figure func(cx, cy, r float64) []Shape

var figures = [...]figure{
	board.Pawn:   pawnFigure,
	board.Rook:   rookFigure,
	board.Knight: knightFigure,
	board.Bishop: bishopFigure,
	board.Queen:  queenFigure,
	board.King:   kingFigure,
}

// Figure returns the shapes for a piece of kind k centred on (cx, cy), in
// drawing order. r is a third of the tile. Every figure ends with an
// outline ring of radius r.
func Figure(k board.Kind, cx, cy, r float64) []Shape {
	var shapes []Shape
	if k.Valid() {
		shapes = figures[k](cx, cy, r)
	}
	return append(shapes, Shape{Kind: Ring, Paint: Outline, C: Point{cx, cy}, R: r, Width: 2})
}

func disc(x, y, r float64, p Paint) Shape {
	return Shape{Kind: Circle, Paint: p, C: Point{x, y}, R: r}
}

func box(x, y, w, h float64) Shape {
	return Shape{Kind: Rect, Paint: Body, X: x, Y: y, W: w, H: h}
}

func poly(pts ...Point) Shape {
	return Shape{Kind: Polygon, Paint: Body, Points: pts}
}

func line(x0, y0, x1, y1 float64) Shape {
	return Shape{Kind: Line, Paint: Outline, Points: []Point{{x0, y0}, {x1, y1}}, Width: 2}
}

// ellipse approximates the ellipse inscribed in the given box.
func ellipse(x, y, w, h float64) Shape {
	const segments = 24
	cx, cy := x+w/2, y+h/2
	pts := make([]Point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = Point{cx + w/2*math.Cos(a), cy + h/2*math.Sin(a)}
	}
	return poly(pts...)
}

// crown is the tall triangle shared by queen and king.
func crown(cx, cy, r float64) Shape {
	return poly(Point{cx, cy - r*1.3}, Point{cx - r, cy}, Point{cx + r, cy})
}

func pawnFigure(cx, cy, r float64) []Shape {
	return []Shape{
		disc(cx, cy+r/3, r, Body),
		poly(Point{cx, cy - r}, Point{cx - r/1.5, cy + r/3}, Point{cx + r/1.5, cy + r/3}),
	}
}

func rookFigure(cx, cy, r float64) []Shape {
	shapes := []Shape{box(cx-r, cy-r/2, r*2, r*1.5)}
	for i := 0; i < 3; i++ {
		shapes = append(shapes, box(cx-r+float64(i)*r, cy-r, r/2, r/2))
	}
	return shapes
}

func knightFigure(cx, cy, r float64) []Shape {
	return []Shape{
		ellipse(cx-r, cy-r/2, r*2, r*1.5),
		poly(Point{cx - r/2, cy - r}, Point{cx, cy - r*1.3}, Point{cx + r/2, cy - r}),
		disc(cx-r/3, cy-r*1.1, r/4, Body), // ear
	}
}

func bishopFigure(cx, cy, r float64) []Shape {
	return []Shape{
		ellipse(cx-r/1.5, cy, r*1.5, r),
		poly(Point{cx, cy - r*1.2}, Point{cx - r, cy}, Point{cx + r, cy}),
		line(cx, cy-r*1.2, cx, cy-r/2),
		line(cx-r/3, cy-r/1.5, cx+r/3, cy-r/1.5),
	}
}

func queenFigure(cx, cy, r float64) []Shape {
	small := r / 2
	shapes := []Shape{disc(cx, cy-r/3, small, Body), crown(cx, cy, r)}
	for i := 0; i < 3; i++ {
		x := cx - r + float64(i)*r
		shapes = append(shapes, poly(Point{x, cy - r/2}, Point{x + r/2, cy}, Point{x - r/2, cy}))
	}
	return append(shapes, disc(cx, cy-r/3, small/2, Jewel))
}

func kingFigure(cx, cy, r float64) []Shape {
	return []Shape{
		disc(cx, cy-r/3, r/2, Body),
		crown(cx, cy, r),
		box(cx-r/6, cy-r*1.5, r/3, r*1.2),
		box(cx-r/2, cy-r, r, r/3),
	}
}

// Contains reports whether pixel-space point (x, y) is covered by s.
func (s Shape) Contains(x, y float64) bool {
	switch s.Kind {
	case Circle:
		return math.Hypot(x-s.C.X, y-s.C.Y) <= s.R
	case Ring:
		return math.Abs(math.Hypot(x-s.C.X, y-s.C.Y)-s.R) <= s.Width/2
	case Rect:
		return x >= s.X && x < s.X+s.W && y >= s.Y && y < s.Y+s.H
	case Line:
		return segmentDistance(Point{x, y}, s.Points[0], s.Points[1]) <= s.Width/2
	case Polygon:
		return insidePolygon(Point{x, y}, s.Points)
	}
	return false
}

func segmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	t := 0.0
	if l := dx*dx + dy*dy; l > 0 {
		t = math.Max(0, math.Min(1, ((p.X-a.X)*dx+(p.Y-a.Y)*dy)/l))
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// insidePolygon is the even-odd crossing test.
func insidePolygon(p Point, pts []Point) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}
