package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessboard-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// Conn is the part of a websocket connection a game writes to.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections watching a specific game
type GameConnections struct {
	connections map[string]Conn // clientID -> connection
	mu          sync.Mutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// The Game struct guards a single game's state and its observers. The owner
// is the client that created it; only the owner may change the state.
type Game struct {
	ID          string
	OwnerID     string
	mu          sync.Mutex
	state       GameState
	connections *GameConnections
}

func NewGame(id string, ownerID string) *Game {
	return &Game{
		ID:          id,
		OwnerID:     ownerID,
		state:       NewGameState(),
		connections: NewGameConnections(),
	}
}

// NewGameFromFEN creates a game that starts from a custom position.
func NewGameFromFEN(id string, ownerID string, fen string) (*Game, error) {
	state, err := NewGameStateFromFEN(fen)
	if err != nil {
		return nil, err
	}
	game := NewGame(id, ownerID)
	game.state = state
	return game, nil
}

func (g *Game) IsOwner(clientID string) bool {
	return clientID != "" && g.OwnerID == clientID
}

// GetState returns a copy of the current state.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.clone()
}

func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.FEN()
}

// LegalMoves lists the legal moves from pos without touching the selection.
func (g *Game) LegalMoves(pos Position) ([]Move, error) {
	if !boundaryCheck(pos) {
		return nil, ErrOutOfBounds
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.Board.LegalMoves(pos), nil
}

func (g *Game) Select(pos Position) ([]Move, error) {
	g.mu.Lock()
	moves, err := g.state.Select(pos)
	state := g.state.clone()
	g.mu.Unlock()

	g.broadcastState(state)
	return moves, err
}

func (g *Game) Click(pos Position) (*HistoryRecord, error) {
	g.mu.Lock()
	record, err := g.state.Click(pos)
	state := g.state.clone()
	g.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if record != nil {
		log.Infof("game %s: %s", g.ID, record.Label)
	}
	g.broadcastState(state)
	return record, nil
}

func (g *Game) MakeMove(move WSMove) (HistoryRecord, error) {
	g.mu.Lock()
	record, err := g.state.Move(move.From, move.To)
	state := g.state.clone()
	g.mu.Unlock()

	if err != nil {
		return HistoryRecord{}, err
	}
	log.Infof("game %s: %s", g.ID, record.Label)
	g.broadcastState(state)
	return record, nil
}

// Undo takes back the last move and reports whether there was one.
func (g *Game) Undo() bool {
	g.mu.Lock()
	undone := g.state.Undo()
	state := g.state.clone()
	g.mu.Unlock()

	if undone {
		log.Infof("game %s: undo, %s to move", g.ID, state.ToMove)
		g.broadcastState(state)
	}
	return undone
}

func (g *Game) Restart() {
	g.mu.Lock()
	g.state.Restart()
	state := g.state.clone()
	g.mu.Unlock()

	log.Infof("game %s: restarted", g.ID)
	g.broadcastState(state)
}

func (g *Game) RegisterConnection(clientID string, conn Conn) error {
	connID := fmt.Sprintf("%p", conn)
	log.Debugf("registering connection %s for client %s in game %s", connID, clientID, g.ID)

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		// Keep the existing connection and reject the new one
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return errors.New("connection already exists")
	}
	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()
	log.Infof("registered connection %s for client %s in game %s", connID, clientID, g.ID)

	// Send initial state
	g.broadcastState(g.GetState())
	return nil
}

// UnregisterConnection removes the client's connection, but only if it is
// still conn; a newer connection for the same client is left alone.
func (g *Game) UnregisterConnection(clientID string, conn Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[clientID]; exists && current == conn {
		log.Infof("unregistering connection %p for client %s in game %s", conn, clientID, g.ID)
		delete(g.connections.connections, clientID)
	}
}

// Close disconnects every watcher.
func (g *Game) Close() {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	for clientID, conn := range g.connections.connections {
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "game closed"),
		)
		conn.Close()
		delete(g.connections.connections, clientID)
	}
}

// SendTo writes msg to the connection of clientID.
func (g *Game) SendTo(clientID string, msg ws.Message) error {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	conn, exists := g.connections.connections[clientID]
	if !exists {
		return fmt.Errorf("no connection for client %s", clientID)
	}
	return conn.WriteJSON(msg)
}

// ConnectionCount returns the number of registered watchers.
func (g *Game) ConnectionCount() int {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	return len(g.connections.connections)
}

// broadcastState sends state to every connection. Writes happen under the
// connections mutex so a connection never sees concurrent writers.
func (g *Game) broadcastState(state GameState) {
	jsonGameState, err := json.Marshal(state)
	if err != nil {
		log.Errorf("failed to marshal state of game %s: %v", g.ID, err)
		return
	}
	msg := ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(jsonGameState),
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for clientID, conn := range g.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("failed to send state of game %s to client %s: %v", g.ID, clientID, err)
			delete(g.connections.connections, clientID)
			continue
		}
	}
}
