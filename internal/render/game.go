// Package render draws the board with ebiten and feeds mouse clicks to the
// game controller.
package render

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/dulchik/capture-chess/internal/board"
	"github.com/dulchik/capture-chess/internal/game"
	"github.com/dulchik/capture-chess/internal/scene"
)

// Game implements ebiten.Game. It only reads controller state when
// drawing; Update is the single place clicks reach the controller.
type Game struct {
	ctrl   *game.Controller
	fx     *scene.Effects
	geo    scene.Geometry
	faces  Faces
	logger *log.Logger
}

func New(ctrl *game.Controller, fx *scene.Effects, geo scene.Geometry, faces Faces, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{ctrl: ctrl, fx: fx, geo: geo, faces: faces, logger: logger}
}

func (g *Game) resetGame() {
	g.ctrl.Reset(board.Standard(), board.White)
	g.fx.Clear()
	g.logger.Println("new game")
}

func (g *Game) Update() error {
	// restart the game with R
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetGame()
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if sq, ok := g.geo.SquareAt(x, y); ok {
			g.ctrl.Click(sq)
		}
	}

	g.fx.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.ctrl.Frame()
	g.drawBoard(screen)
	g.drawHighlights(screen, f)
	g.drawCoordinates(screen)
	g.drawParticles(screen)

	// sliding pieces go on top of resting ones
	live := f.Board.Live()
	for _, p := range live {
		if !g.fx.Moving(p.ID) {
			g.drawPiece(screen, p)
		}
	}
	for _, p := range live {
		if g.fx.Moving(p.ID) {
			g.drawPiece(screen, p)
		}
	}
	g.drawTurn(screen, f.Turn)
}

func (g *Game) tile() float64 { return float64(g.geo.BoardSize() / board.Size) }

func (g *Game) drawBoard(screen *ebiten.Image) {
	tile := g.tile()
	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			x, y := g.geo.Corner(float64(file), float64(rank))
			ebitenutil.DrawRect(screen, x, y, tile, tile, boardColors[(file+rank)%2])
		}
	}
}

func (g *Game) drawHighlights(screen *ebiten.Image, f game.Frame) {
	if !f.Active {
		return
	}
	tile := g.tile()
	x, y := g.geo.Corner(float64(f.Selected.Square.File), float64(f.Selected.Square.Rank))
	ebitenutil.DrawRect(screen, x, y, tile, tile, selectedColor)

	for _, sq := range f.Targets.Squares() {
		col := moveColor
		if _, occupied := f.Board.At(sq); occupied {
			col = captureColor
		}
		x, y := g.geo.Corner(float64(sq.File), float64(sq.Rank))
		ebitenutil.DrawRect(screen, x, y, tile, tile, col)
	}
}

// drawCoordinates writes each label in the colour of the opposite square.
func (g *Game) drawCoordinates(screen *ebiten.Image) {
	face := g.labelFace()
	tile := int(g.tile())
	ascent := face.Metrics().Ascent.Ceil()
	for _, l := range scene.Labels() {
		col := boardColors[1-(l.Square.File+l.Square.Rank)%2]
		fx, fy := g.geo.Corner(float64(l.Square.File), float64(l.Square.Rank))
		x, y := int(fx), int(fy)
		if l.Rank {
			text.Draw(screen, l.Text, face, x+3, y+ascent+2, col)
			continue
		}
		w := font.MeasureString(face, l.Text).Ceil()
		text.Draw(screen, l.Text, face, x+tile-w-3, y+tile-4, col)
	}
}

func (g *Game) labelFace() font.Face {
	if g.faces.Label != nil {
		return g.faces.Label
	}
	return basicfont.Face7x13
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	ps := g.fx.Particles()
	ps.Each(func(p scene.Particle) {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius()), ps.Flicker(), true)
	})
}

func (g *Game) drawPiece(screen *ebiten.Image, p board.Piece) {
	file, rank := g.fx.Position(p)
	cx, cy := g.geo.Center(file, rank)

	if g.faces.Piece != nil {
		glyph := glyphs[p.Side][p.Kind]
		bounds := text.BoundString(g.faces.Piece, glyph)
		x := int(cx) - bounds.Dx()/2 - bounds.Min.X
		y := int(cy) - bounds.Dy()/2 - bounds.Min.Y
		text.Draw(screen, glyph, g.faces.Piece, x, y, color.Black)
		return
	}

	for _, s := range scene.Figure(p.Kind, cx, cy, g.tile()/3) {
		drawShape(screen, s, paintColor(s.Paint, p.Side))
	}
}

func drawShape(screen *ebiten.Image, s scene.Shape, clr color.RGBA) {
	switch s.Kind {
	case scene.Circle:
		vector.DrawFilledCircle(screen, float32(s.C.X), float32(s.C.Y), float32(s.R), clr, true)
	case scene.Ring:
		vector.StrokeCircle(screen, float32(s.C.X), float32(s.C.Y), float32(s.R), float32(s.Width), clr, true)
	case scene.Rect:
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), clr, true)
	case scene.Line:
		a, b := s.Points[0], s.Points[1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(s.Width), clr, true)
	case scene.Polygon:
		fillPolygon(screen, s.Points, clr)
	}
}

// fillPolygon draws a convex polygon as a triangle fan.
func fillPolygon(screen *ebiten.Image, pts []scene.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	is := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

func (g *Game) drawTurn(screen *ebiten.Image, turn board.Side) {
	label := fmt.Sprintf("Turn: %s", sideTitle(turn))
	if g.faces.Label != nil {
		text.Draw(screen, label, g.faces.Label, 16, 30, turnColor)
		return
	}
	text.Draw(screen, label, basicfont.Face7x13, 16, 20, turnColor)
}

func sideTitle(s board.Side) string {
	if s == board.Black {
		return "Black"
	}
	return "White"
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.geo.BoardSize(), g.geo.BoardSize()
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.geo.BoardSize(), g.geo.BoardSize())
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}
