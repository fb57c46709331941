package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/benbeisheim/chessboard-backend/internal/service"
	"github.com/benbeisheim/chessboard-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	// Extract game ID and client ID stored by the upgrade middleware
	gameID, _ := c.Locals("wsGameID").(string)
	clientID, _ := c.Locals("wsClientID").(string)

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, clientID, c); err != nil {
		log.Warnf("failed to register connection for game %s: %v", gameID, err)
		c.WriteJSON(ws.ErrorMessage(err.Error()))
		c.Close()
		return
	}

	// Start message handling loop
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error in game %s: %v", gameID, err)
			break
		}

		if messageType != websocket.TextMessage {
			continue
		}
		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugf("parse error in game %s: %v", gameID, err)
			wsc.sendError(gameID, clientID, err.Error())
			continue
		}

		if err := wsc.handleMessage(gameID, clientID, msg); err != nil {
			log.Debugf("handle error in game %s: %v", gameID, err)
			wsc.sendError(gameID, clientID, err.Error())
		}
	}

	// Clean up when connection closes
	wsc.gameService.UnregisterConnection(gameID, clientID, c)
}

// handleMessage dispatches one client command. The resulting state reaches
// the client through the game's broadcast.
func (wsc *WebSocketController) handleMessage(gameID, clientID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeSelect:
		var square model.WSSquare
		if err := json.Unmarshal(msg.Payload, &square); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleSelect(gameID, clientID, square.Square)
		return err

	case ws.MessageTypeClick:
		var square model.WSSquare
		if err := json.Unmarshal(msg.Payload, &square); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleClick(gameID, clientID, square.Square)
		return err

	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleMove(gameID, clientID, move)
		return err

	case ws.MessageTypeUndo:
		undone, err := wsc.gameService.HandleUndo(gameID, clientID)
		if err != nil {
			return err
		}
		if !undone {
			return fmt.Errorf("nothing to undo")
		}
		return nil

	case ws.MessageTypeRestart:
		return wsc.gameService.HandleRestart(gameID, clientID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// Helper method to send error messages. The write goes through the game so
// it never races a broadcast on the same connection.
func (wsc *WebSocketController) sendError(gameID, clientID string, errorMsg string) {
	if err := wsc.gameService.SendMessage(gameID, clientID, ws.ErrorMessage(errorMsg)); err != nil {
		log.Debugf("failed to send error frame: %v", err)
	}
}
