package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ondono/chessire-utils/board"
	"github.com/ondono/chessire-utils/position"
)

// StartingFEN is the standard opening position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ApplyFEN decodes a full 6-field FEN record into the game, replacing
// the current position.
//
// The record must hold exactly 6 whitespace-separated fields; that
// check happens before any mutation. The piece-placement field and the
// en-passant field fail hard on malformed input, while the side-to-move
// field and the two clocks substitute defaults instead (White and 0
// respectively). The split is inherited behavior and is covered by
// tests; callers wanting strictness must validate beforehand.
//
// A failed ApplyFEN is not atomic: the board is cleared before the
// placement field is decoded, so the game may be left with an empty or
// partially placed board.
func (g *Game) ApplyFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fmt.Errorf("%w: want 6 fields, got %d", board.ErrInvalidFEN, len(fields))
	}

	g.Board.Clear()
	if err := g.Board.SetPositionFromFEN(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w", "W":
		g.SideToMove = board.SideWhite
	case "b", "B":
		g.SideToMove = board.SideBlack
	default:
		g.SideToMove = board.SideWhite
	}

	g.CastlingRights = board.CastlingRights{
		WhiteKingSide:  strings.ContainsRune(fields[2], 'K'),
		WhiteQueenSide: strings.ContainsRune(fields[2], 'Q'),
		BlackKingSide:  strings.ContainsRune(fields[2], 'k'),
		BlackQueenSide: strings.ContainsRune(fields[2], 'q'),
	}

	if fields[3] == "-" {
		g.EnPassantTarget = nil
	} else {
		target, err := position.ParseCoord(fields[3])
		if err != nil {
			return fmt.Errorf("%w: bad en passant square: %v", board.ErrInvalidFEN, err)
		}
		// Only the ranks reachable by a double pawn push qualify.
		if r := target.Rank; r != 2 && r != 5 {
			return fmt.Errorf("%w: en passant square %s on impossible rank", board.ErrInvalidFEN, target)
		}
		g.EnPassantTarget = &target
	}

	g.HalfmoveClock = parseClock(fields[4])
	g.FullmoveClock = parseClock(fields[5])

	return nil
}

// parseClock reads an unsigned clock field, substituting 0 for
// anything unparsable.
func parseClock(s string) uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// FEN encodes the position as a full 6-field FEN record. For any record
// ApplyFEN accepts without substituting defaults, FEN is its exact
// inverse.
func (g *Game) FEN() string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(g.Board.PlacementFEN())

	if g.SideToMove == board.SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(g.CastlingRights.String())
	_, _ = builder.WriteRune(' ')

	if g.EnPassantTarget != nil {
		_, _ = builder.WriteString(g.EnPassantTarget.String())
	} else {
		_, _ = builder.WriteRune('-')
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", g.HalfmoveClock, g.FullmoveClock))

	return builder.String()
}
