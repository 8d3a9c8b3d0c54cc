// Package board holds an easy to inspect representation of the board.
// It is meant as a shared source of truth for GUIs, inspectors, and
// test harnesses, never as a representation to compute on.
package board

import (
	"github.com/ondono/chessire-utils/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalTiles = position.TotalTiles
)

// SelectionColor is an RGB color attached to a selection overlay.
type SelectionColor struct {
	Red, Green, Blue uint8
}

func NewSelectionColor(red, green, blue uint8) SelectionColor {
	return SelectionColor{Red: red, Green: green, Blue: blue}
}

// Selection is a cosmetic highlight over a set of tiles. Selections are
// presentation-only: they never affect equality, FEN encoding, or any
// move semantics.
type Selection struct {
	Tiles []position.Tile
	Color SelectionColor
}

func NewSelection(tiles []position.Tile, color SelectionColor) Selection {
	return Selection{Tiles: tiles, Color: color}
}

// Board is a 64-slot mailbox grid of pieces. Perspective marks the side
// the board is rendered from; it carries no game semantics.
type Board struct {
	squares     [TotalTiles]Piece
	selections  []Selection
	Perspective Side
}

// New returns an empty board, White's perspective, no selections.
func New() *Board {
	return &Board{}
}

// At returns the piece on a tile. Out-of-range tiles panic: Tile and
// Coord are bounded at construction, so a bad index is a programming
// error, not an input error.
func (b *Board) At(t position.Tile) Piece {
	return b.squares[t]
}

func (b *Board) Put(t position.Tile, p Piece) {
	b.squares[t] = p
}

func (b *Board) AtCoord(c position.Coord) Piece {
	return b.squares[c.Tile()]
}

func (b *Board) PutCoord(c position.Coord, p Piece) {
	b.squares[c.Tile()] = p
}

// Clear empties every square, drops all selections, and resets the
// perspective to White.
func (b *Board) Clear() {
	b.squares = [TotalTiles]Piece{}
	b.selections = nil
	b.Perspective = SideWhite
}

func (b *Board) AddSelection(sel Selection) {
	b.selections = append(b.selections, sel)
}

func (b *Board) ClearSelections() {
	b.selections = nil
}

func (b *Board) Selections() []Selection {
	return b.selections
}

func (b *Board) Clone() *Board {
	clone := &Board{
		squares:     b.squares,
		Perspective: b.Perspective,
	}
	for _, sel := range b.selections {
		tiles := make([]position.Tile, len(sel.Tiles))
		copy(tiles, sel.Tiles)
		clone.selections = append(clone.selections, Selection{Tiles: tiles, Color: sel.Color})
	}
	return clone
}
