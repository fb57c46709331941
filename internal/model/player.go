package model

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

func (c PlayerColor) Opponent() PlayerColor {
	if c == PlayerColorWhite {
		return PlayerColorBlack
	}
	return PlayerColorWhite
}

// tag is the one letter marker used in move list labels.
func (c PlayerColor) tag() string {
	if c == PlayerColorWhite {
		return "W"
	}
	return "B"
}

// pawnDirection is the row delta of a forward pawn step.
func (c PlayerColor) pawnDirection() int {
	if c == PlayerColorWhite {
		return -1
	}
	return 1
}

func (c PlayerColor) pawnStartRow() int {
	if c == PlayerColorWhite {
		return 6
	}
	return 1
}

func (c PlayerColor) promotionRow() int {
	if c == PlayerColorWhite {
		return 0
	}
	return 7
}
