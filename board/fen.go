package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ondono/chessire-utils/position"
)

var (
	// ErrInvalidFEN represents a malformed FEN input error.
	ErrInvalidFEN = errors.New("invalid fen")
)

// DefaultPiecePlacement is the piece-placement field of the standard
// starting position.
const DefaultPiecePlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// SetPositionFromFEN places pieces from a FEN piece-placement field on
// top of the current board contents. The field must hold exactly 8
// slash-separated rank groups, rank 8 first. Digits advance the file
// cursor; recognized piece letters place a piece; any other character
// is skipped. Underfull ranks are tolerated and leave their trailing
// squares untouched, but overflowing a rank past the h file is an
// error, whether by digit run or by piece placement: in a flat grid an
// unchecked overflow would spill onto the next rank.
func (b *Board) SetPositionFromFEN(piecePlacement string) error {
	ranks := strings.Split(piecePlacement, "/")
	if len(ranks) != Height {
		return fmt.Errorf("%w: want %d rank groups, got %d", ErrInvalidFEN, Height, len(ranks))
	}
	for i, rankString := range ranks {
		rank := Height - 1 - i
		file := 0
		for j := 0; j < len(rankString); j++ {
			c := rankString[j]
			if '0' <= c && c <= '9' {
				file += int(c - '0')
				if file > Width {
					return fmt.Errorf("%w: rank %s overflows at %q", ErrInvalidFEN, position.NotationComponentRank(rank), string(c))
				}
				continue
			}
			piece, ok := PieceFromFEN(c)
			if !ok {
				continue
			}
			if file >= Width {
				return fmt.Errorf("%w: rank %s overflows at %q", ErrInvalidFEN, position.NotationComponentRank(rank), string(c))
			}
			b.PutCoord(position.NewCoord(file, rank), piece)
			file++
		}
	}
	return nil
}

// PlacementFEN encodes the board contents as a FEN piece-placement
// field, the exact inverse of SetPositionFromFEN for well-formed
// boards. Perspective and selections do not participate.
func (b *Board) PlacementFEN() string {
	builder := strings.Builder{}
	for rank := Height - 1; rank >= 0; rank-- {
		skip := 0
		for file := 0; file < Width; file++ {
			piece := b.AtCoord(position.NewCoord(file, rank))
			if piece.IsEmpty() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(piece.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune('0' + skip))
		}
		if rank > 0 {
			_, _ = builder.WriteRune('/')
		}
	}
	return builder.String()
}
