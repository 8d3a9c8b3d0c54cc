package board

// Side identifies one of the two players. White is 0 and Black is 1 so
// that a Side can index a two-element array directly.
type Side uint8

const (
	SideWhite Side = iota
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	if s == SideWhite {
		return SideBlack
	}
	return SideWhite
}
