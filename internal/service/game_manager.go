// service/game_manager.go
package service

import (
	"errors"
	"sync"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/exp/maps"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrTooManyGames = errors.New("too many games")
	ErrNotOwner     = errors.New("only the game owner can do that")
)

// GameManager owns every live game. Its lock only guards the map; each game
// serializes its own state changes.
type GameManager struct {
	games    map[string]*model.Game
	maxGames int
	mu       sync.RWMutex
}

// NewGameManager creates a manager holding at most maxGames games; zero or
// less means no limit.
func NewGameManager(maxGames int) *GameManager {
	return &GameManager{
		games:    make(map[string]*model.Game),
		maxGames: maxGames,
	}
}

// CreateGame registers a new game. An empty fen means the standard start.
func (gm *GameManager) CreateGame(gameID string, ownerID string, fen string) error {
	game := model.NewGame(gameID, ownerID)
	if fen != "" {
		var err error
		game, err = model.NewGameFromFEN(gameID, ownerID, fen)
		if err != nil {
			return err
		}
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}
	if gm.maxGames > 0 && len(gm.games) >= gm.maxGames {
		return ErrTooManyGames
	}
	gm.games[gameID] = game
	log.Infof("created game %s for client %s (%d live)", gameID, ownerID, len(gm.games))
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

// ownedGame looks up a game and checks that clientID may change it.
func (gm *GameManager) ownedGame(gameID string, clientID string) (*model.Game, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsOwner(clientID) {
		return nil, ErrNotOwner
	}
	return game, nil
}

func (gm *GameManager) DeleteGame(gameID string, clientID string) error {
	game, err := gm.ownedGame(gameID, clientID)
	if err != nil {
		return err
	}

	gm.mu.Lock()
	delete(gm.games, gameID)
	gm.mu.Unlock()

	game.Close()
	log.Infof("deleted game %s", gameID)
	return nil
}

// GameIDs lists the IDs of all live games.
func (gm *GameManager) GameIDs() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	return maps.Keys(gm.games)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) GetFEN(gameID string) (string, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.FEN(), nil
}

func (gm *GameManager) LegalMoves(gameID string, square model.Position) ([]model.Move, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(square)
}

func (gm *GameManager) Select(gameID string, clientID string, square model.Position) ([]model.Move, error) {
	game, err := gm.ownedGame(gameID, clientID)
	if err != nil {
		return nil, err
	}
	return game.Select(square)
}

func (gm *GameManager) Click(gameID string, clientID string, square model.Position) (*model.HistoryRecord, error) {
	game, err := gm.ownedGame(gameID, clientID)
	if err != nil {
		return nil, err
	}
	return game.Click(square)
}

func (gm *GameManager) MakeMove(gameID string, clientID string, move model.WSMove) (model.HistoryRecord, error) {
	game, err := gm.ownedGame(gameID, clientID)
	if err != nil {
		return model.HistoryRecord{}, err
	}
	return game.MakeMove(move)
}

func (gm *GameManager) Undo(gameID string, clientID string) (bool, error) {
	game, err := gm.ownedGame(gameID, clientID)
	if err != nil {
		return false, err
	}
	return game.Undo(), nil
}

func (gm *GameManager) Restart(gameID string, clientID string) error {
	game, err := gm.ownedGame(gameID, clientID)
	if err != nil {
		return err
	}
	game.Restart()
	return nil
}

func (gm *GameManager) RegisterConnection(gameID string, clientID string, conn model.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(clientID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, clientID string, conn model.Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(clientID, conn)
}
