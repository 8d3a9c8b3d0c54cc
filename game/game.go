// Package game composes the board, castling rights, side to move,
// en-passant target, and move clocks into a full position, and owns the
// 6-field FEN codec for it.
package game

import (
	"fmt"
	"strings"

	"github.com/ondono/chessire-utils/board"
	"github.com/ondono/chessire-utils/position"
)

// Game is the aggregate position. Fields are exported so that
// presentation and move-generation collaborators can read them
// directly; they must not mutate them.
//
// EnPassantTarget is nil when no en-passant capture is available.
type Game struct {
	Board           *board.Board
	CastlingRights  board.CastlingRights
	SideToMove      board.Side
	EnPassantTarget *position.Coord
	HalfmoveClock   uint32
	FullmoveClock   uint32
}

func newEmpty() *Game {
	return &Game{
		Board:          board.New(),
		CastlingRights: board.NewCastlingRights(),
		SideToMove:     board.SideWhite,
		HalfmoveClock:  0,
		FullmoveClock:  1,
	}
}

// NewGame returns a game set up in the standard starting position.
func NewGame() *Game {
	g := newEmpty()
	if err := g.ApplyFEN(StartingFEN); err != nil {
		// The starting FEN is a fixed constant; failing to decode it is
		// an invariant violation, not an input error.
		panic(fmt.Sprintf("game: starting position rejected: %v", err))
	}
	return g
}

// NewGameFromFEN returns a game decoded from an arbitrary FEN record.
func NewGameFromFEN(fen string) (*Game, error) {
	g := newEmpty()
	if err := g.ApplyFEN(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// Clear wipes the pieces off the board. Castling rights, side to move,
// en-passant target, and the clocks keep their values: the caller is
// clearing the board to set up a new arrangement, not resetting the
// game metadata.
func (g *Game) Clear() {
	g.Board.Clear()
}

// SetPiece places a piece on a square, replacing whatever was there.
func (g *Game) SetPiece(c position.Coord, p board.Piece) {
	g.Board.PutCoord(c, p)
}

func (g *Game) String() string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(fmt.Sprintf("side to move: %s\tcastling rights: %s\n", g.SideToMove, g.CastlingRights))
	if g.EnPassantTarget != nil {
		_, _ = builder.WriteString(fmt.Sprintf("en passant square: %s\n", g.EnPassantTarget))
	} else {
		_, _ = builder.WriteString("en passant square: None\n")
	}
	_, _ = builder.WriteString(fmt.Sprintf("halfmove clock: %d\tfullmove clock: %d\n", g.HalfmoveClock, g.FullmoveClock))
	_, _ = builder.WriteString(g.Board.Draw())
	return builder.String()
}
