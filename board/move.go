package board

import (
	"fmt"
	"strings"

	"github.com/ondono/chessire-utils/position"
)

// Move describes a single ply: where the mover came from, where it
// lands, and how. Piece is the moving piece, never the captured one.
// Promotion is the zero Piece when the move does not promote.
//
// Moves are plain values. The With* setters return updated copies, so a
// chain of setters can never alias stale flags into a caller's copy.
// The flags are not cross-validated against each other or the board;
// producing sensible combinations is the move generator's job.
type Move struct {
	Source    position.Coord
	Target    position.Coord
	Piece     Piece
	Promotion Piece

	Capture    bool
	DoublePush bool
	EnPassant  bool
	Castling   bool
}

func NewMove(source, target position.Coord, piece, promotion Piece) Move {
	return Move{
		Source:    source,
		Target:    target,
		Piece:     piece,
		Promotion: promotion,
	}
}

func (m Move) WithCapture(capture bool) Move {
	m.Capture = capture
	return m
}

func (m Move) WithDoublePush(doublePush bool) Move {
	m.DoublePush = doublePush
	return m
}

func (m Move) WithEnPassant(enPassant bool) Move {
	m.EnPassant = enPassant
	return m
}

func (m Move) WithCastling(castling bool) Move {
	m.Castling = castling
	return m
}

// forward steps one rank in the mover's forward direction, staying put
// at the board edge.
func forward(s Side, c position.Coord) position.Coord {
	var next position.Coord
	var ok bool
	if s == SideWhite {
		next, ok = c.Up()
	} else {
		next, ok = c.Down()
	}
	if !ok {
		return c
	}
	return next
}

// NewPawnPush builds a single pawn push from source in the mover's
// forward direction.
func NewPawnPush(s Side, source position.Coord) Move {
	return NewMove(source, forward(s, source), NewPiece(KindPawn, s), Piece{})
}

// NewPawnDoublePush builds a two-rank pawn push from source. At the
// board edge the target saturates towards source instead of leaving the
// board; correct callers never start a double push there, but the
// constructor must not panic when they do.
func NewPawnDoublePush(s Side, source position.Coord) Move {
	target := forward(s, forward(s, source))
	return NewMove(source, target, NewPiece(KindPawn, s), Piece{}).WithDoublePush(true)
}

// NewPromotion builds a promoting pawn push one rank forward. The
// promotion piece is mandatory.
func NewPromotion(s Side, source position.Coord, promotion Piece) Move {
	return NewMove(source, forward(s, source), NewPiece(KindPawn, s), promotion)
}

func NewKnightMove(source, target position.Coord, s Side, capture bool) Move {
	return NewMove(source, target, NewPiece(KindKnight, s), Piece{}).WithCapture(capture)
}

func NewBishopMove(source, target position.Coord, s Side, capture bool) Move {
	return NewMove(source, target, NewPiece(KindBishop, s), Piece{}).WithCapture(capture)
}

func NewRookMove(source, target position.Coord, s Side, capture bool) Move {
	return NewMove(source, target, NewPiece(KindRook, s), Piece{}).WithCapture(capture)
}

// NewCastling builds the king's own two-square shift of a castling
// move. Only the castling flag is set.
func NewCastling(source, target position.Coord, s Side) Move {
	return NewMove(source, target, NewPiece(KindKing, s), Piece{}).WithCastling(true)
}

// String renders a tab-separated diagnostic row: squares, piece,
// promotion (or "None"), then the four flags. Meant for logs and tests,
// not a wire format.
func (m Move) String() string {
	return fmt.Sprintf("%s%s\t%s\t%s\t%t\t%t\t%t\t%t",
		m.Source, m.Target, m.Piece, m.Promotion,
		m.Capture, m.DoublePush, m.EnPassant, m.Castling)
}

// FormatMoveList renders a header row followed by one diagnostic row
// per move.
func FormatMoveList(moves []Move) string {
	builder := strings.Builder{}
	_, _ = builder.WriteString("move\tpiece\tprom.\tcapture\tdouble\tenpass.\tcastling\n")
	for _, m := range moves {
		_, _ = builder.WriteString(m.String())
		_, _ = builder.WriteString("\n")
	}
	return builder.String()
}

// MoveRecord pairs a textual move identifier with an occurrence count.
// It is a plain lookup/aggregation value for external tooling.
type MoveRecord struct {
	Name  string
	Count uint64
}
