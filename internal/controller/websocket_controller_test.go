package controller

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/benbeisheim/chessboard-backend/internal/service"
	"github.com/benbeisheim/chessboard-backend/internal/ws"
)

func TestHandleMessage(t *testing.T) {
	gameService := service.NewGameService(service.NewGameManager(0))
	wsc := NewWebSocketController(gameService)
	id, err := gameService.CreateGame("alice", "")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		clientID string
		msg      string
		wantErr  error
		failing  bool
	}{
		{name: "select", clientID: "alice", msg: `{"type":"select","payload":{"square":"e2"}}`},
		{name: "click destination", clientID: "alice", msg: `{"type":"click","payload":{"square":"e4"}}`},
		{name: "move out of turn", clientID: "alice", msg: `{"type":"move","payload":{"from":"d2","to":"d4"}}`, wantErr: model.ErrNotYourTurn},
		{name: "move", clientID: "alice", msg: `{"type":"move","payload":{"from":"e7","to":"e5"}}`},
		{name: "watcher cannot move", clientID: "bob", msg: `{"type":"move","payload":{"from":"d2","to":"d4"}}`, wantErr: service.ErrNotOwner},
		{name: "bad payload", clientID: "alice", msg: `{"type":"move","payload":{"from":"x1","to":"d4"}}`, wantErr: model.ErrInvalidSquare},
		{name: "undo", clientID: "alice", msg: `{"type":"undo"}`},
		{name: "restart", clientID: "alice", msg: `{"type":"restart"}`},
		{name: "nothing to undo", clientID: "alice", msg: `{"type":"undo"}`, failing: true},
		{name: "unknown type", clientID: "alice", msg: `{"type":"resign"}`, failing: true},
	}
	for _, c := range cases {
		var msg ws.Message
		if err := json.Unmarshal([]byte(c.msg), &msg); err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		err := wsc.handleMessage(id, c.clientID, msg)
		switch {
		case c.wantErr != nil:
			if !errors.Is(err, c.wantErr) {
				t.Errorf("%s: want %v got %v", c.name, c.wantErr, err)
			}
		case c.failing:
			if err == nil {
				t.Errorf("%s: want an error", c.name)
			}
		case err != nil:
			t.Errorf("%s: %v", c.name, err)
		}
	}

	fen, err := gameService.GetFEN(id)
	if err != nil {
		t.Fatal(err)
	}
	if fen != model.FENStartPos {
		t.Errorf("want start position after restart, got %s", fen)
	}
}
