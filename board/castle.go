package board

import "strings"

// CastlingRights tracks the four castling availabilities independently.
// No cross-validation against board state happens here: revoking rights
// when a king or rook moves is the move-application collaborator's job.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// NewCastlingRights returns all four rights granted, matching the
// standard opening position.
func NewCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingSide:  true,
		WhiteQueenSide: true,
		BlackKingSide:  true,
		BlackQueenSide: true,
	}
}

// String serializes the rights as a FEN fragment: the granted rights in
// KQkq order, or "-" when none remain.
func (c CastlingRights) String() string {
	builder := strings.Builder{}
	if c.WhiteKingSide {
		_, _ = builder.WriteRune('K')
	}
	if c.WhiteQueenSide {
		_, _ = builder.WriteRune('Q')
	}
	if c.BlackKingSide {
		_, _ = builder.WriteRune('k')
	}
	if c.BlackQueenSide {
		_, _ = builder.WriteRune('q')
	}
	if builder.Len() == 0 {
		return "-"
	}
	return builder.String()
}

func (c CastlingRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c.WhiteKingSide || c.WhiteQueenSide
	}
	return c.BlackKingSide || c.BlackQueenSide
}
