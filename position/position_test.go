package position

import (
	"errors"
	"strings"
	"testing"
)

func TestCoordTileRoundTrip(t *testing.T) {
	t.Parallel()
	for tile := 0; tile < TotalTiles; tile++ {
		if got := CoordFromTile(tile).Tile(); got != tile {
			t.Errorf("unexpected tile: got=%d want=%d", got, tile)
		}
	}
}

func TestParseCoord(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Coord
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     Coord{File: 4, Rank: 3},
		},
		{
			name:     "ok 2",
			notation: "a1",
			want:     Coord{File: 0, Rank: 0},
		},
		{
			name:     "ok 3",
			notation: "h8",
			want:     Coord{File: 7, Rank: 7},
		},
		{
			name:     "ok uppercase file",
			notation: "E4",
			want:     Coord{File: 4, Rank: 3},
		},
		{
			name:     "bad empty",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad short",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad long",
			notation: "a11",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad file",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad rank high",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad rank zero",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCoord(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%+v want=%+v", got, tt.want)
			}
		})
	}
}

func TestNotationRoundTrip(t *testing.T) {
	t.Parallel()
	for tile := 0; tile < TotalTiles; tile++ {
		n := CoordFromTile(tile).String()
		got, err := ParseCoord(n)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", n, err)
		}
		if got.Tile() != tile {
			t.Errorf("unexpected round trip: got=%d want=%d", got.Tile(), tile)
		}
		if upper := strings.ToUpper(n); upper != n {
			gotUpper, err := ParseCoord(upper)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", upper, err)
			}
			if gotUpper != got {
				t.Errorf("case-insensitive parse mismatch for %q", upper)
			}
		}
	}
}

func TestCoordNeighbors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		start  string
		step   func(Coord) (Coord, bool)
		want   string
		wantOK bool
	}{
		{name: "up interior", start: "e4", step: Coord.Up, want: "e5", wantOK: true},
		{name: "down interior", start: "e4", step: Coord.Down, want: "e3", wantOK: true},
		{name: "left interior", start: "e4", step: Coord.Left, want: "d4", wantOK: true},
		{name: "right interior", start: "e4", step: Coord.Right, want: "f4", wantOK: true},
		{name: "up at edge", start: "h8", step: Coord.Up, wantOK: false},
		{name: "right at edge", start: "h8", step: Coord.Right, wantOK: false},
		{name: "down at edge", start: "a1", step: Coord.Down, wantOK: false},
		{name: "left at edge", start: "a1", step: Coord.Left, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, err := ParseCoord(tt.start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, ok := tt.step(start)
			if ok != tt.wantOK {
				t.Fatalf("unexpected ok: got=%t want=%t", ok, tt.wantOK)
			}
			if !ok {
				if got != start {
					t.Errorf("failed step must return the start square: got=%s", got)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("unexpected neighbor: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestCoordStringOutOfRange(t *testing.T) {
	t.Parallel()
	if got := (Coord{File: 8, Rank: 0}).String(); got != "" {
		t.Errorf("unexpected notation: got=%q want=%q", got, "")
	}
	if got := (Coord{File: 0, Rank: -1}).String(); got != "" {
		t.Errorf("unexpected notation: got=%q want=%q", got, "")
	}
}
