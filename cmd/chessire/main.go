package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ondono/chessire-utils/board"
	"github.com/ondono/chessire-utils/game"
	"github.com/ondono/chessire-utils/position"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	flip      = flag.Bool("flip", false, "render the board from Black's perspective")
	highlight = flag.String("highlight", "", "comma-separated squares to highlight, e.g. e4,e5")
	emitFEN   = flag.Bool("printfen", false, "re-encode and print the position as FEN")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	g := game.NewGame()
	if len(args) > 0 {
		var err error
		g, err = game.NewGameFromFEN(strings.Join(args, " "))
		if err != nil {
			return err
		}
	}

	if *flip {
		g.Board.Perspective = board.SideBlack
	}

	if *highlight != "" {
		tiles, err := parseHighlight(*highlight)
		if err != nil {
			return err
		}
		g.Board.AddSelection(board.NewSelection(tiles, board.NewSelectionColor(60, 160, 60)))
	}

	fmt.Println(g)
	if *emitFEN {
		fmt.Println(g.FEN())
	}
	return nil
}

func parseHighlight(spec string) ([]position.Tile, error) {
	var tiles []position.Tile
	for _, square := range strings.Split(spec, ",") {
		coord, err := position.ParseCoord(strings.TrimSpace(square))
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, coord.Tile())
	}
	return tiles, nil
}
