package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dulchik/capture-chess/internal/board"
	"github.com/dulchik/capture-chess/internal/scene"
)

var boardColors = [2]color.Color{
	color.RGBA{240, 217, 181, 255}, // light
	color.RGBA{181, 136, 99, 255},  // dark
}

var (
	selectedColor = color.RGBA{247, 247, 105, 150}
	captureColor  = color.RGBA{255, 50, 50, 150}
	moveColor     = color.RGBA{106, 168, 79, 150}
	outlineColor  = color.RGBA{70, 70, 70, 255}
	turnColor     = color.Black
)

var pieceColors = [2]color.RGBA{
	board.White: {230, 230, 230, 255},
	board.Black: {50, 50, 50, 255},
}

var jewelColors = [2]color.RGBA{
	board.White: {255, 215, 0, 255},
	board.Black: {200, 0, 0, 255},
}

func paintColor(p scene.Paint, side board.Side) color.RGBA {
	switch p {
	case scene.Outline:
		return outlineColor
	case scene.Jewel:
		return jewelColors[side]
	}
	return pieceColors[side]
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// glyphs are the Unicode chess symbols, indexed by side then kind.
var glyphs = [2][6]string{
	board.White: {board.Pawn: "♙", board.Rook: "♖", board.Knight: "♘", board.Bishop: "♗", board.Queen: "♕", board.King: "♔"},
	board.Black: {board.Pawn: "♟", board.Rook: "♜", board.Knight: "♞", board.Bishop: "♝", board.Queen: "♛", board.King: "♚"},
}
