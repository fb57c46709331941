package model

// Move is a candidate move. Capture records whether the destination held an
// enemy piece when the move was generated.
type Move struct {
	From    Position `json:"from"`
	To      Position `json:"to"`
	Capture bool     `json:"capture"`
}

// String formats the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// WSMove is the payload of a move command.
type WSMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// WSSquare is the payload of select and click commands.
type WSSquare struct {
	Square Position `json:"square"`
}
