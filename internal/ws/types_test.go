package ws

import (
	"encoding/json"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	msg := ErrorMessage(`bad "move"`)
	b, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"error","payload":"bad \"move\""}`
	if string(b) != want {
		t.Errorf("want %s got %s", want, b)
	}
}

func TestMessage_OmitsEmptyPayload(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"type":"undo"}`), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != MessageTypeUndo || msg.Payload != nil {
		t.Errorf("unexpected message %+v", msg)
	}
	b, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"type":"undo"}` {
		t.Errorf("unexpected encoding %s", b)
	}
}
