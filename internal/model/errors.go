package model

import "errors"

var (
	ErrOutOfBounds   = errors.New("square out of bounds")
	ErrInvalidSquare = errors.New("invalid square")
	ErrEmptySquare   = errors.New("no piece at from square")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrIllegalMove   = errors.New("invalid move, not legal")
	ErrInvalidFEN    = errors.New("invalid FEN")
)
