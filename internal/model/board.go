package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// getPieceNotation returns the upper case FEN letter of the piece type.
func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

type Piece struct {
	Type  PieceType   `json:"type"`
	Color PlayerColor `json:"color"`
}

// IsEmpty reports whether p is the zero Piece, which marks an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

var pieceSymbols = map[Piece]string{
	{Type: Pawn, Color: PlayerColorWhite}:   "♙",
	{Type: Rook, Color: PlayerColorWhite}:   "♖",
	{Type: Knight, Color: PlayerColorWhite}: "♘",
	{Type: Bishop, Color: PlayerColorWhite}: "♗",
	{Type: Queen, Color: PlayerColorWhite}:  "♕",
	{Type: King, Color: PlayerColorWhite}:   "♔",
	{Type: Pawn, Color: PlayerColorBlack}:   "♟",
	{Type: Rook, Color: PlayerColorBlack}:   "♜",
	{Type: Knight, Color: PlayerColorBlack}: "♞",
	{Type: Bishop, Color: PlayerColorBlack}: "♝",
	{Type: Queen, Color: PlayerColorBlack}:  "♛",
	{Type: King, Color: PlayerColorBlack}:   "♚",
}

// Symbol returns the Unicode chess glyph used in move labels.
func (p Piece) Symbol() string {
	if s, ok := pieceSymbols[p]; ok {
		return s
	}
	return "?"
}

// fenLetter returns the piece letter, upper case for white and lower case for black.
func (p Piece) fenLetter() string {
	letter := p.Type.getPieceNotation()
	if p.Color == PlayerColorBlack {
		return strings.ToLower(letter)
	}
	return letter
}

// Position addresses a square. X is the file (0 = a), Y is the row where
// row 0 is rank 8 and row 7 is rank 1.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) getSquareNotation() string {
	return fmt.Sprintf("%c%d", p.X+97, 8-p.Y)
}

func (p Position) String() string {
	if !boundaryCheck(p) {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return p.getSquareNotation()
}

func (p Position) add(dir Position) Position {
	return Position{X: p.X + dir.X, Y: p.Y + dir.Y}
}

// ParseSquare reads an algebraic square such as "e4".
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Position{X: int(s[0] - 'a'), Y: 7 - int(s[1]-'1')}, nil
}

// UnmarshalJSON accepts either {"x":4,"y":6} or "e2".
func (p *Position) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		pos, err := ParseSquare(s)
		if err != nil {
			return err
		}
		*p = pos
		return nil
	}
	type plain Position
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Position(v)
	return nil
}

func boundaryCheck(position Position) bool {
	return position.X >= 0 && position.X < 8 && position.Y >= 0 && position.Y < 8
}

// Board is indexed [row][file]. The zero Piece marks an empty square, so a
// Board copies by plain assignment.
type Board [8][8]Piece

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var board Board
	for i := 0; i < 8; i++ {
		board[0][i] = Piece{Type: backRank[i], Color: PlayerColorBlack}
		board[1][i] = Piece{Type: Pawn, Color: PlayerColorBlack}
		board[6][i] = Piece{Type: Pawn, Color: PlayerColorWhite}
		board[7][i] = Piece{Type: backRank[i], Color: PlayerColorWhite}
	}
	return board
}

// At returns the piece on position, or the empty Piece.
func (b *Board) At(position Position) Piece {
	return b[position.Y][position.X]
}

func (b *Board) set(position Position, piece Piece) {
	b[position.Y][position.X] = piece
}

// KingPosition finds the king of color by scanning the board.
func (b *Board) KingPosition(color PlayerColor) (Position, bool) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if b[y][x].Type == King && b[y][x].Color == color {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// MarshalJSON writes the board as rows of pieces with null for empty squares.
func (b Board) MarshalJSON() ([]byte, error) {
	rows := make([][]*Piece, 8)
	for y := 0; y < 8; y++ {
		rows[y] = make([]*Piece, 8)
		for x := 0; x < 8; x++ {
			if !b[y][x].IsEmpty() {
				piece := b[y][x]
				rows[y][x] = &piece
			}
		}
	}
	return json.Marshal(rows)
}

// String draws the board as ASCII, rank 8 first. Useful in test output.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < 8; y++ {
		fmt.Fprintf(&sb, "%d ", 8-y)
		for x := 0; x < 8; x++ {
			if b[y][x].IsEmpty() {
				sb.WriteString(". ")
				continue
			}
			sb.WriteString(b[y][x].fenLetter())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
