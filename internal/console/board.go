package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dulchik/capture-chess/internal/board"
	"github.com/dulchik/capture-chess/internal/game"
)

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgHiCyan, color.Bold)
	quietMark  = color.New(color.FgGreen)
	captureMrk = color.New(color.FgHiRed, color.Bold)
	selectMark = color.New(color.FgBlack, color.BgYellow)
	dim        = color.New(color.Faint)
)

var letters = [6]byte{
	board.Pawn: 'p', board.Rook: 'r', board.Knight: 'n',
	board.Bishop: 'b', board.Queen: 'q', board.King: 'k',
}

// Letter is the FEN letter for p: upper case for White.
func Letter(p board.Piece) string {
	l := string(letters[p.Kind])
	if p.Side == board.White {
		return strings.ToUpper(l)
	}
	return l
}

// PrintBoard writes the position with rank 8 at the top. The selected
// piece is boxed, quiet targets are shown as '*' and captures as 'x'.
func PrintBoard(w io.Writer, ctrl *game.Controller) {
	f := ctrl.Frame()
	var cells [board.Size][board.Size]string
	for _, p := range f.Board.Live() {
		cells[p.Square.Rank][p.Square.File] = paint(p)
	}
	targets, sel, selected := f.Targets, f.Selected, f.Active

	for rank := 0; rank < board.Size; rank++ {
		fmt.Fprintf(w, "%d ", board.Size-rank)
		for file := 0; file < board.Size; file++ {
			sq := board.Sq(file, rank)
			cell := cells[rank][file]
			switch {
			case selected && sq == sel.Square:
				cell = selectMark.Sprint("[" + Letter(sel) + "]")
			case targets.Has(sq) && cell != "":
				cell = captureMrk.Sprint("x") + cell + captureMrk.Sprint(" ")
			case targets.Has(sq):
				cell = quietMark.Sprint(" * ")
			case cell != "":
				cell = " " + cell + " "
			default:
				cell = dim.Sprint(" . ")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
}

func paint(p board.Piece) string {
	if p.Side == board.White {
		return whitePiece.Sprint(Letter(p))
	}
	return blackPiece.Sprint(Letter(p))
}
