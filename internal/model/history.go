package model

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// HistoryRecord holds enough to reverse one executed move. Piece is the
// identity before any promotion.
type HistoryRecord struct {
	From     Position    `json:"from"`
	To       Position    `json:"to"`
	Piece    Piece       `json:"piece"`
	Captured *Piece      `json:"capturedPiece"`
	Color    PlayerColor `json:"color"`
	Notation string      `json:"notation"`
	Label    string      `json:"label"`

	// index of Captured in the capturing side's list, -1 without a capture
	captureIndex int
}

// Promoted reports whether the move turned a pawn into a queen.
func (r HistoryRecord) Promoted() bool {
	return promotes(r.Piece, r.To)
}

func getNotation(piece Piece, from, to Position) string {
	return fmt.Sprintf("%s %s→%s", piece.Symbol(), from.getSquareNotation(), to.getSquareNotation())
}

func getLabel(number int, color PlayerColor, notation string) string {
	return fmt.Sprintf("%d. (%s) %s", number, color.tag(), notation)
}

// CapturedPieces lists pieces by the side that captured them.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

func (c *CapturedPieces) listFor(capturer PlayerColor) *[]Piece {
	if capturer == PlayerColorWhite {
		return &c.White
	}
	return &c.Black
}

// add appends piece to the capturer's list and returns its index.
func (c *CapturedPieces) add(capturer PlayerColor, piece Piece) int {
	list := c.listFor(capturer)
	*list = append(*list, piece)
	return len(*list) - 1
}

// remove drops the entry recorded at index. If the list no longer holds piece
// there, the last entry equal to piece is removed instead.
func (c *CapturedPieces) remove(capturer PlayerColor, index int, piece Piece) {
	list := c.listFor(capturer)
	if index < 0 || index >= len(*list) || (*list)[index] != piece {
		index = -1
		for i := len(*list) - 1; i >= 0; i-- {
			if (*list)[i] == piece {
				index = i
				break
			}
		}
		if index < 0 {
			return
		}
	}
	*list = slices.Delete(*list, index, index+1)
}

func (c CapturedPieces) clone() CapturedPieces {
	return CapturedPieces{
		White: append(make([]Piece, 0, len(c.White)), c.White...),
		Black: append(make([]Piece, 0, len(c.Black)), c.Black...),
	}
}
