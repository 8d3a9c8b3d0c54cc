package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the number of files and ranks on the board.
	MaxComponentScalar = 8

	// TotalTiles is the number of squares on the board.
	TotalTiles = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidNotation represents an invalid algebraic notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Tile is a flat square index. a1 is 0, h8 is 63.
type Tile = int

// Coord addresses a single square by file and rank, both zero-based.
// The zero value is a1.
type Coord struct {
	File int
	Rank int
}

func NewCoord(file, rank int) Coord {
	return Coord{File: file, Rank: rank}
}

func CoordFromTile(t Tile) Coord {
	return Coord{
		File: t % MaxComponentScalar,
		Rank: t / MaxComponentScalar,
	}
}

// ParseCoord decodes a two-character algebraic square, e.g. "e4".
// The file letter is accepted case-insensitively.
func ParseCoord(n string) (Coord, error) {
	if len(n) != 2 {
		return Coord{}, fmt.Errorf("%w: want 2 characters, got %q", ErrInvalidNotation, n)
	}
	file := n[0] | 0x20 // lowercase
	if file < 'a' || 'a'+MaxComponentScalar <= file {
		return Coord{}, fmt.Errorf("%w: unknown file %q", ErrInvalidNotation, string(n[0]))
	}
	rank := n[1]
	if rank < '1' || '1'+MaxComponentScalar <= rank {
		return Coord{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidNotation, string(n[1]))
	}
	return Coord{File: int(file - 'a'), Rank: int(rank - '1')}, nil
}

func (c Coord) Tile() Tile {
	return c.File + c.Rank*MaxComponentScalar
}

// String renders the square in algebraic notation, lowercase.
func (c Coord) String() string {
	if c.File < 0 || MaxComponentScalar <= c.File || c.Rank < 0 || MaxComponentScalar <= c.Rank {
		return ""
	}
	return string(rune('a'+c.File)) + string(rune('1'+c.Rank))
}

// Up returns the square one rank towards rank 8. The second return is
// false when the step would leave the board.
func (c Coord) Up() (Coord, bool) {
	if c.Rank+1 >= MaxComponentScalar {
		return c, false
	}
	return Coord{File: c.File, Rank: c.Rank + 1}, true
}

// Down returns the square one rank towards rank 1.
func (c Coord) Down() (Coord, bool) {
	if c.Rank-1 < 0 {
		return c, false
	}
	return Coord{File: c.File, Rank: c.Rank - 1}, true
}

// Left returns the square one file towards the a file.
func (c Coord) Left() (Coord, bool) {
	if c.File-1 < 0 {
		return c, false
	}
	return Coord{File: c.File - 1, Rank: c.Rank}, true
}

// Right returns the square one file towards the h file.
func (c Coord) Right() (Coord, bool) {
	if c.File+1 >= MaxComponentScalar {
		return c, false
	}
	return Coord{File: c.File + 1, Rank: c.Rank}, true
}

// NotationComponentFile renders a zero-based file index as its letter.
func NotationComponentFile(file int) string {
	if file < 0 || MaxComponentScalar <= file {
		return ""
	}
	return string(rune('a' + file))
}

// NotationComponentRank renders a zero-based rank index as its digit.
func NotationComponentRank(rank int) string {
	if rank < 0 || MaxComponentScalar <= rank {
		return ""
	}
	return string(rune('1' + rank))
}
