package board

// Kind identifies one of the six piece kinds. KindNone marks an empty
// square.
type Kind uint8

const (
	KindNone Kind = iota
	KindKing
	KindQueen
	KindRook
	KindBishop
	KindKnight
	KindPawn
)

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindKing:
		return "King"
	case KindQueen:
		return "Queen"
	case KindRook:
		return "Rook"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindPawn:
		return "Pawn"
	default:
		return ""
	}
}

// Piece is a piece kind together with the side owning it. A piece is
// never sideless; the zero value represents an empty square.
type Piece struct {
	Kind Kind
	Side Side
}

func NewPiece(k Kind, s Side) Piece {
	return Piece{Kind: k, Side: s}
}

// PieceFromFEN maps a FEN letter to a piece. Uppercase letters are
// White, lowercase Black. The second return is false for any other
// character.
func PieceFromFEN(c byte) (Piece, bool) {
	s := SideWhite
	if 'a' <= c && c <= 'z' {
		s = SideBlack
		c &^= 0x20 // uppercase
	}
	var k Kind
	switch c {
	case 'K':
		k = KindKing
	case 'Q':
		k = KindQueen
	case 'R':
		k = KindRook
	case 'B':
		k = KindBishop
	case 'N':
		k = KindKnight
	case 'P':
		k = KindPawn
	default:
		return Piece{}, false
	}
	return Piece{Kind: k, Side: s}, true
}

func (p Piece) IsEmpty() bool {
	return p.Kind == KindNone
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "None"
	}
	return p.Side.String() + " " + p.Kind.Name()
}

// SymbolFEN returns the piece's FEN letter, uppercase for White and
// lowercase for Black, or "" for an empty square.
func (p Piece) SymbolFEN() string {
	var sym rune
	switch p.Kind {
	case KindKing:
		sym = 'K'
	case KindQueen:
		sym = 'Q'
	case KindRook:
		sym = 'R'
	case KindBishop:
		sym = 'B'
	case KindKnight:
		sym = 'N'
	case KindPawn:
		sym = 'P'
	default:
		return ""
	}
	if p.Side == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode() string {
	switch p.Side {
	case SideWhite:
		switch p.Kind {
		case KindKing:
			return "♔"
		case KindQueen:
			return "♕"
		case KindRook:
			return "♖"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindPawn:
			return "♙"
		}
	case SideBlack:
		switch p.Kind {
		case KindKing:
			return "♚"
		case KindQueen:
			return "♛"
		case KindRook:
			return "♜"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindPawn:
			return "♟"
		}
	}
	return ""
}
