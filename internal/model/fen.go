package model

import (
	"fmt"
	"strings"
)

const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

var fenPieceTypes = map[rune]PieceType{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

// ParseFEN reads the placement and active colour fields of a FEN string.
// Castling, en passant and clock fields may be present and are ignored.
// Each side must have exactly one king.
func ParseFEN(fen string) (Board, PlayerColor, error) {
	var board Board
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return board, "", fmt.Errorf("%w: empty", ErrInvalidFEN)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return board, "", fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	kings := map[PlayerColor]int{}
	for y, rank := range ranks {
		x := 0
		for _, r := range rank {
			if r >= '1' && r <= '8' {
				x += int(r - '0')
				continue
			}
			color := PlayerColorWhite
			lower := r
			if r >= 'a' && r <= 'z' {
				color = PlayerColorBlack
			} else {
				lower = r + ('a' - 'A')
			}
			pieceType, ok := fenPieceTypes[lower]
			if !ok {
				return board, "", fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, r)
			}
			if x >= 8 {
				return board, "", fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, 8-y)
			}
			board[y][x] = Piece{Type: pieceType, Color: color}
			if pieceType == King {
				kings[color]++
			}
			x++
		}
		if x != 8 {
			return board, "", fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, 8-y, x)
		}
	}
	if kings[PlayerColorWhite] != 1 || kings[PlayerColorBlack] != 1 {
		return board, "", fmt.Errorf("%w: need one king per side", ErrInvalidFEN)
	}

	toMove := PlayerColorWhite
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			toMove = PlayerColorBlack
		default:
			return board, "", fmt.Errorf("%w: bad active colour %q", ErrInvalidFEN, fields[1])
		}
	}
	return board, toMove, nil
}

// FEN writes the board with castling and en passant fields always "-".
func (b Board) FEN(toMove PlayerColor, fullMove int) string {
	var sb strings.Builder
	for y := 0; y < 8; y++ {
		empty := 0
		for x := 0; x < 8; x++ {
			if b[y][x].IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteString(b[y][x].fenLetter())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if y < 7 {
			sb.WriteByte('/')
		}
	}
	active := "w"
	if toMove == PlayerColorBlack {
		active = "b"
	}
	fmt.Fprintf(&sb, " %s - - 0 %d", active, fullMove)
	return sb.String()
}
