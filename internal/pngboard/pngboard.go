// Package pngboard draws a position to a PNG image without a window.
package pngboard

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/dulchik/capture-chess/internal/board"
	"github.com/dulchik/capture-chess/internal/scene"
)

var (
	lightSquare = color.RGBA{R: 240, G: 217, B: 181, A: 255}
	darkSquare  = color.RGBA{R: 181, G: 136, B: 99, A: 255}
	selected    = color.NRGBA{R: 247, G: 247, B: 105, A: 150}
	quiet       = color.NRGBA{R: 106, G: 168, B: 79, A: 150}
	capture     = color.NRGBA{R: 255, G: 50, B: 50, A: 150}
	outline     = color.RGBA{R: 70, G: 70, B: 70, A: 255}
)

var fill = [2]color.RGBA{
	board.White: {R: 230, G: 230, B: 230, A: 255},
	board.Black: {R: 50, G: 50, B: 50, A: 255},
}

var jewel = [2]color.RGBA{
	board.White: {R: 255, G: 215, A: 255},
	board.Black: {R: 200, A: 255},
}

// Options controls what is drawn besides the pieces.
type Options struct {
	Tile     int
	Selected *board.Square
	Targets  board.SquareSet
}

// Render draws the live pieces onto a new image.
func Render(pieces []board.Piece, opt Options) *image.RGBA {
	tile := opt.Tile
	if tile <= 0 {
		tile = 60
	}
	side := tile * board.Size
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	uniform := &image.Uniform{}

	occupied := make(map[board.Square]bool, len(pieces))
	for _, p := range pieces {
		if !p.Captured {
			occupied[p.Square] = true
		}
	}

	for s := 0; s < board.Size*board.Size; s++ {
		sq := board.Sq(s%board.Size, s/board.Size)
		rect := squareRect(sq, tile)

		uniform.C = lightSquare
		if (sq.File+sq.Rank)%2 == 1 {
			uniform.C = darkSquare
		}
		draw.Draw(img, rect, uniform, image.Point{}, draw.Src)

		switch {
		case opt.Selected != nil && *opt.Selected == sq:
			uniform.C = selected
		case opt.Targets.Has(sq) && occupied[sq]:
			uniform.C = capture
		case opt.Targets.Has(sq):
			uniform.C = quiet
		default:
			continue
		}
		draw.Draw(img, rect, uniform, image.Point{}, draw.Over)
	}

	for _, p := range pieces {
		if !p.Captured {
			drawPiece(img, p, tile)
		}
	}
	return img
}

func squareRect(sq board.Square, tile int) image.Rectangle {
	x0, y0 := sq.File*tile, sq.Rank*tile
	return image.Rect(x0, y0, x0+tile, y0+tile)
}

// drawPiece rasterises the piece's figure, sampling each pixel at its
// centre. Later shapes paint over earlier ones.
func drawPiece(img *image.RGBA, p board.Piece, tile int) {
	x0, y0 := p.Square.File*tile, p.Square.Rank*tile
	cx, cy := float64(x0)+float64(tile)/2, float64(y0)+float64(tile)/2
	for _, s := range scene.Figure(p.Kind, cx, cy, float64(tile)/3) {
		c := paint(s.Paint, p.Side)
		for y := y0; y < y0+tile; y++ {
			for x := x0; x < x0+tile; x++ {
				if s.Contains(float64(x)+0.5, float64(y)+0.5) {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
}

func paint(p scene.Paint, side board.Side) color.RGBA {
	switch p {
	case scene.Outline:
		return outline
	case scene.Jewel:
		return jewel[side]
	}
	return fill[side]
}

// Encode writes the rendered position as PNG.
func Encode(w io.Writer, pieces []board.Piece, opt Options) error {
	return png.Encode(w, Render(pieces, opt))
}

// WriteFile renders the position into a PNG file at path.
func WriteFile(path string, pieces []board.Piece, opt Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := Encode(f, pieces, opt); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
