package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ondono/chessire-utils/position"
)

// Dump renders a plain ASCII grid with FEN letters, always from
// White's perspective. Selections are ignored.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for rank := Height - 1; rank >= 0; rank-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", position.NotationComponentRank(rank)))
		for file := 0; file < Width; file++ {
			sym := b.AtCoord(position.NewCoord(file, rank)).SymbolFEN()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for file := 0; file < Width; file++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentFile(file)))
	}
	return builder.String()
}

// tileShade is the checkerboard base color of a tile, light or dark.
func tileShade(file, rank int) uint8 {
	if (file+rank)&0x01 == 1 {
		return 200
	}
	return 100
}

// selectionShade blends a selection color against the tile's base
// shade so the checkerboard stays visible under the highlight.
func selectionShade(c SelectionColor, base uint8) (int, int, int) {
	blend := func(component uint8) int {
		return (int(component) + int(base)) / 2
	}
	return blend(c.Red), blend(c.Green), blend(c.Blue)
}

// Draw renders the board with colored tiles and unicode pieces,
// honoring the board's perspective and tinting selected tiles. The
// result targets a terminal; it is presentation only.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	ranks := make([]int, 0, Height)
	if b.Perspective == SideWhite {
		for rank := Height - 1; rank >= 0; rank-- {
			ranks = append(ranks, rank)
		}
	} else {
		for rank := 0; rank < Height; rank++ {
			ranks = append(ranks, rank)
		}
	}
	for _, rank := range ranks {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", position.NotationComponentRank(rank)))
		for file := 0; file < Width; file++ {
			coord := position.NewCoord(file, rank)
			base := tileShade(file, rank)
			bgR, bgG, bgB := int(base), int(base), int(base)
			for _, sel := range b.selections {
				for _, t := range sel.Tiles {
					if t == coord.Tile() {
						bgR, bgG, bgB = selectionShade(sel.Color, base)
					}
				}
			}
			piece := b.AtCoord(coord)
			sym := piece.SymbolUnicode()
			if sym == "" {
				sym = " "
			}
			fg := color.RGB(255, 255, 255)
			if piece.Side == SideBlack {
				fg = color.RGB(0, 0, 0)
			}
			_, _ = builder.WriteString(fg.AddBgRGB(bgR, bgG, bgB).Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for file := 0; file < Width; file++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", position.NotationComponentFile(file)))
	}
	return builder.String()
}
