package service

import (
	"fmt"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/benbeisheim/chessboard-backend/internal/ws"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame starts a game owned by clientID, from fen when it is not empty.
func (gs *GameService) CreateGame(clientID string, fen string) (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID, clientID, fen); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) DeleteGame(gameID string, clientID string) error {
	return gs.gameManager.DeleteGame(gameID, clientID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) GetFEN(gameID string) (string, error) {
	return gs.gameManager.GetFEN(gameID)
}

func (gs *GameService) LegalMoves(gameID string, square model.Position) ([]model.Move, error) {
	moves, err := gs.gameManager.LegalMoves(gameID, square)
	if err != nil {
		return nil, fmt.Errorf("legal moves from %s: %w", square, err)
	}
	return moves, nil
}

func (gs *GameService) HandleSelect(gameID string, clientID string, square model.Position) ([]model.Move, error) {
	moves, err := gs.gameManager.Select(gameID, clientID, square)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", square, err)
	}
	return moves, nil
}

func (gs *GameService) HandleClick(gameID string, clientID string, square model.Position) (*model.HistoryRecord, error) {
	record, err := gs.gameManager.Click(gameID, clientID, square)
	if err != nil {
		return nil, fmt.Errorf("click %s: %w", square, err)
	}
	return record, nil
}

func (gs *GameService) HandleMove(gameID string, clientID string, move model.WSMove) (model.HistoryRecord, error) {
	record, err := gs.gameManager.MakeMove(gameID, clientID, move)
	if err != nil {
		return model.HistoryRecord{}, fmt.Errorf("move %s%s: %w", move.From, move.To, err)
	}
	return record, nil
}

func (gs *GameService) HandleUndo(gameID string, clientID string) (bool, error) {
	return gs.gameManager.Undo(gameID, clientID)
}

func (gs *GameService) HandleRestart(gameID string, clientID string) error {
	return gs.gameManager.Restart(gameID, clientID)
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn model.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string, conn model.Conn) {
	gs.gameManager.UnregisterConnection(gameID, clientID, conn)
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.GameIDs()
}

func (gs *GameService) SendMessage(gameID string, clientID string, msg ws.Message) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.SendTo(clientID, msg)
}

// GameExists reports whether gameID names a live game.
func (gs *GameService) GameExists(gameID string) bool {
	_, err := gs.gameManager.GetGame(gameID)
	return err == nil
}
