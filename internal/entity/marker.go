package entity

// Marker is the symbol a player places on a board square.
type Marker uint8

const (
	MarkerEmpty Marker = iota
	MarkerX
	MarkerO
)

func (that Marker) String() string {
	switch that {
	case MarkerX:
		return "X"
	case MarkerO:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's marker. Empty has no opponent.
func (that Marker) Opponent() Marker {
	switch that {
	case MarkerX:
		return MarkerO
	case MarkerO:
		return MarkerX
	default:
		return MarkerEmpty
	}
}
