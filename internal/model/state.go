package model

import (
	"errors"

	"golang.org/x/exp/slices"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCheckmate  Status = "checkmate"
	StatusStalemate  Status = "stalemate"
)

// GameState is one hot-seat game: the board, whose turn it is, the move
// history and the current selection. It is not safe for concurrent use;
// Game wraps it with a mutex.
type GameState struct {
	Board          Board           `json:"boardState"`
	ToMove         PlayerColor     `json:"toMove"`
	MoveHistory    []HistoryRecord `json:"moveHistory"`
	CapturedPieces CapturedPieces  `json:"capturedPieces"`
	IsCheck        bool            `json:"isCheck"`
	Status         Status          `json:"status"`
	SelectedSquare *Position       `json:"selectedSquare"`
	LegalMoves     []Move          `json:"legalMoves"`
	LastMove       *Move           `json:"lastMove"`
}

func NewGameState() GameState {
	return newGameStateFrom(NewBoard(), PlayerColorWhite)
}

// NewGameStateFromFEN sets up a game from a FEN position.
func NewGameStateFromFEN(fen string) (GameState, error) {
	board, toMove, err := ParseFEN(fen)
	if err != nil {
		return GameState{}, err
	}
	return newGameStateFrom(board, toMove), nil
}

func newGameStateFrom(board Board, toMove PlayerColor) GameState {
	s := GameState{
		Board:          board,
		ToMove:         toMove,
		MoveHistory:    make([]HistoryRecord, 0),
		CapturedPieces: newCapturedPieces(),
		LegalMoves:     make([]Move, 0),
	}
	s.refresh()
	return s
}

// ApplyMove plays from→to without checking turn or legality; callers must
// pass a move taken from LegalMoves. The only check is that from holds a
// piece. The captured piece goes to the mover's capture list, a pawn on the
// far row becomes a queen, a history record is appended and the turn flips.
func (s *GameState) ApplyMove(from, to Position) (HistoryRecord, error) {
	if !boundaryCheck(from) || !boundaryCheck(to) {
		return HistoryRecord{}, ErrOutOfBounds
	}
	piece := s.Board.At(from)
	if piece.IsEmpty() {
		return HistoryRecord{}, ErrEmptySquare
	}

	record := HistoryRecord{
		From:         from,
		To:           to,
		Piece:        piece,
		Color:        piece.Color,
		Notation:     getNotation(piece, from, to),
		captureIndex: -1,
	}
	if target := s.Board.At(to); !target.IsEmpty() {
		record.Captured = &target
		record.captureIndex = s.CapturedPieces.add(piece.Color, target)
	}

	s.Board.movePiece(from, to)

	record.Label = getLabel(len(s.MoveHistory)+1, record.Color, record.Notation)
	s.MoveHistory = append(s.MoveHistory, record)
	s.LastMove = &Move{From: from, To: to, Capture: record.Captured != nil}
	s.switchTurn()
	s.clearSelection()
	s.refresh()
	return record, nil
}

// Move is the checked entry point: the piece must belong to the side to move
// and to must be one of its legal destinations.
func (s *GameState) Move(from, to Position) (HistoryRecord, error) {
	if !boundaryCheck(from) || !boundaryCheck(to) {
		return HistoryRecord{}, ErrOutOfBounds
	}
	piece := s.Board.At(from)
	if piece.IsEmpty() {
		return HistoryRecord{}, ErrEmptySquare
	}
	if piece.Color != s.ToMove {
		return HistoryRecord{}, ErrNotYourTurn
	}
	if !containsDestination(s.Board.LegalMoves(from), to) {
		return HistoryRecord{}, ErrIllegalMove
	}
	return s.ApplyMove(from, to)
}

// Undo reverses the last move. It returns false when there is nothing to undo.
func (s *GameState) Undo() bool {
	if len(s.MoveHistory) == 0 {
		return false
	}
	last := s.MoveHistory[len(s.MoveHistory)-1]
	s.MoveHistory = s.MoveHistory[:len(s.MoveHistory)-1]

	s.Board.set(last.From, last.Piece)
	if last.Captured != nil {
		s.Board.set(last.To, *last.Captured)
		s.CapturedPieces.remove(last.Color, last.captureIndex, *last.Captured)
	} else {
		s.Board.set(last.To, Piece{})
	}

	s.LastMove = nil
	if n := len(s.MoveHistory); n > 0 {
		prev := s.MoveHistory[n-1]
		s.LastMove = &Move{From: prev.From, To: prev.To, Capture: prev.Captured != nil}
	}
	s.switchTurn()
	s.clearSelection()
	s.refresh()
	return true
}

// Select makes pos the selected square and caches its legal moves. Any
// failure clears the selection.
func (s *GameState) Select(pos Position) ([]Move, error) {
	s.clearSelection()
	if !boundaryCheck(pos) {
		return nil, ErrOutOfBounds
	}
	piece := s.Board.At(pos)
	if piece.IsEmpty() {
		return nil, ErrEmptySquare
	}
	if piece.Color != s.ToMove {
		return nil, ErrNotYourTurn
	}
	s.SelectedSquare = &pos
	s.LegalMoves = s.Board.LegalMoves(pos)
	return s.LegalMoves, nil
}

// Click handles a click on pos. A click on a legal destination of the
// selected piece plays the move and returns its record; any other click
// (re)selects, and a click on an empty or enemy square only drops the
// selection.
func (s *GameState) Click(pos Position) (*HistoryRecord, error) {
	if s.SelectedSquare != nil && containsDestination(s.LegalMoves, pos) {
		record, err := s.Move(*s.SelectedSquare, pos)
		if err != nil {
			return nil, err
		}
		return &record, nil
	}
	if _, err := s.Select(pos); err != nil && !errors.Is(err, ErrEmptySquare) && !errors.Is(err, ErrNotYourTurn) {
		return nil, err
	}
	return nil, nil
}

// Restart resets to the standard starting position.
func (s *GameState) Restart() {
	*s = NewGameState()
}

// GameStatus derives the game status from the side to move. Play continues
// regardless of the result.
func (s *GameState) GameStatus() Status {
	if len(s.Board.LegalMovesForColor(s.ToMove)) > 0 {
		return StatusInProgress
	}
	if s.Board.IsInCheck(s.ToMove) {
		return StatusCheckmate
	}
	return StatusStalemate
}

// FEN writes the current position.
func (s *GameState) FEN() string {
	return s.Board.FEN(s.ToMove, len(s.MoveHistory)/2+1)
}

func (s *GameState) switchTurn() {
	s.ToMove = s.ToMove.Opponent()
}

func (s *GameState) clearSelection() {
	s.SelectedSquare = nil
	s.LegalMoves = make([]Move, 0)
}

func (s *GameState) refresh() {
	s.IsCheck = s.Board.IsInCheck(s.ToMove)
	s.Status = s.GameStatus()
}

// clone copies the state so it can be read without holding the game lock.
func (s GameState) clone() GameState {
	out := s
	out.MoveHistory = slices.Clone(s.MoveHistory)
	out.CapturedPieces = s.CapturedPieces.clone()
	out.LegalMoves = slices.Clone(s.LegalMoves)
	if s.SelectedSquare != nil {
		selected := *s.SelectedSquare
		out.SelectedSquare = &selected
	}
	if s.LastMove != nil {
		last := *s.LastMove
		out.LastMove = &last
	}
	return out
}

func containsDestination(moves []Move, to Position) bool {
	return slices.IndexFunc(moves, func(m Move) bool { return m.To == to }) >= 0
}
