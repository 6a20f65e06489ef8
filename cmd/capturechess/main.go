package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dulchik/capture-chess/internal/board"
	"github.com/dulchik/capture-chess/internal/console"
	"github.com/dulchik/capture-chess/internal/game"
	"github.com/dulchik/capture-chess/internal/render"
	"github.com/dulchik/capture-chess/internal/scene"
)

const windowTitle = "Capture Chess"

func main() {
	mode := flag.String("mode", "gui", "front end: gui or tty")
	tile := flag.Int("tile", scene.DefaultTile, "square size in pixels")
	pieceFont := flag.String("piece-font", "", "TrueType font with chess glyphs")
	labelFont := flag.String("font", "", "TrueType font for labels")
	logPath := flag.String("log", "", "append log output to this file")
	verbose := flag.Bool("v", false, "log every move and capture")
	debug := flag.Bool("debug", false, "check board invariants after every move")
	load := flag.String("load", "", "start from a saved game")
	pngPath := flag.String("png", "", "write the starting position as PNG and exit")
	flag.Parse()

	if *logPath != "" {
		initLog(*logPath, "CHESS: ")
	}

	b, turn := board.Standard(), board.White
	if *load != "" {
		var err error
		if b, turn, err = console.Load(*load); err != nil {
			log.Fatal(err)
		}
		log.Printf("loaded %s, %s to move", *load, turn)
	}

	if *pngPath != "" {
		if err := console.Snapshot(*pngPath, game.New(b, game.WithTurn(turn)), *tile); err != nil {
			log.Fatal(err)
		}
		return
	}

	var hooks game.MultiHooks
	if *verbose {
		hooks = append(hooks, game.LogHooks{Logger: log.Default()})
	}
	opts := func(extra ...game.Hooks) []game.Option {
		return []game.Option{
			game.WithTurn(turn),
			game.WithDebug(*debug),
			game.WithHooks(append(hooks, extra...)),
		}
	}

	switch *mode {
	case "gui":
		geo := scene.Geometry{Tile: *tile}
		faces, err := render.LoadFaces(*pieceFont, *labelFont, *tile)
		if err != nil {
			log.Fatal(err)
		}
		fx := scene.NewEffects(geo, nil)
		ctrl := game.New(b, opts(fx)...)
		if err := render.Run(render.New(ctrl, fx, geo, faces, log.Default()), windowTitle); err != nil {
			log.Fatal(err)
		}
	case "tty":
		ctrl := game.New(b, opts(console.Announcer{W: os.Stdout})...)
		if err := console.New(ctrl, os.Stdin, os.Stdout, log.Default()).Run(); err != nil {
			log.Fatal(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}

func initLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
