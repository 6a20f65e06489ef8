// Package console is a terminal front end: it prints the board and reads
// one square per line, feeding each to the controller as a click.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dulchik/capture-chess/internal/board"
	"github.com/dulchik/capture-chess/internal/game"
	"github.com/dulchik/capture-chess/internal/pngboard"
)

const help = `commands:
  <square>     click a square, e.g. e2 or 4,6
  fen          print the piece placement
  save <file>  write the game to a JSON file
  png <file>   write a picture of the board
  reset        start a new game
  quit         leave`

// Console runs the read-click-print loop.
type Console struct {
	ctrl   *game.Controller
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
}

func New(ctrl *game.Controller, in io.Reader, out io.Writer, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.Default()
	}
	return &Console{ctrl: ctrl, in: bufio.NewScanner(in), out: out, logger: logger}
}

// Run loops until quit or end of input.
func (c *Console) Run() error {
	for {
		PrintBoard(c.out, c.ctrl)
		fmt.Fprintf(c.out, "%s's move: ", c.ctrl.Turn())
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		quit, err := c.handle(c.in.Text())
		if err != nil {
			fmt.Fprintln(c.out, "Error:", err)
		}
		if quit {
			return nil
		}
	}
}

func (c *Console) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch fields[0] {
	case "quit", "q", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(c.out, help)
		return false, nil
	case "reset":
		c.ctrl.Reset(board.Standard(), board.White)
		c.logger.Println("new game")
		return false, nil
	case "fen":
		fmt.Fprintln(c.out, c.ctrl.Board().FEN())
		return false, nil
	case "save":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: save <file>")
		}
		return false, Save(fields[1], c.ctrl)
	case "png":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: png <file>")
		}
		return false, Snapshot(fields[1], c.ctrl, 0)
	}

	sq, err := board.ParseSquare(fields[0])
	if err != nil {
		return false, err
	}
	if out := c.ctrl.Click(sq); out == game.Ignored {
		fmt.Fprintf(c.out, "nothing to select on %s\n", sq)
	}
	return false, nil
}

// Save writes the controller's board and side to move to path.
func Save(path string, ctrl *game.Controller) error {
	data, err := board.Encode(ctrl.Board(), ctrl.Turn())
	if err != nil {
		return fmt.Errorf("encode game: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// Snapshot draws the board with the current selection and its targets
// into a PNG file. tile <= 0 picks the default square size.
func Snapshot(path string, ctrl *game.Controller, tile int) error {
	f := ctrl.Frame()
	opt := pngboard.Options{Tile: tile, Targets: f.Targets}
	if f.Active {
		opt.Selected = &f.Selected.Square
	}
	return pngboard.WriteFile(path, f.Board.Pieces(), opt)
}

// Load reads a game written by Save.
func Load(path string) (*board.Board, board.Side, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, board.White, fmt.Errorf("load game: %w", err)
	}
	return board.Decode(data)
}
