package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// helper: parse a FEN position
func boardFromFEN(t *testing.T, fen string) Board {
	t.Helper()
	board, _, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return board
}

func sq(t *testing.T, s string) Position {
	t.Helper()
	pos, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return pos
}

func TestNewBoard(t *testing.T) {
	board := NewBoard()

	if got := board[7][4]; got != (Piece{Type: King, Color: PlayerColorWhite}) {
		t.Errorf("e1: want white king, got %+v", got)
	}
	if got := board[0][3]; got != (Piece{Type: Queen, Color: PlayerColorBlack}) {
		t.Errorf("d8: want black queen, got %+v", got)
	}
	for x := 0; x < 8; x++ {
		if board[6][x] != (Piece{Type: Pawn, Color: PlayerColorWhite}) {
			t.Errorf("row 6 col %d: want white pawn, got %+v", x, board[6][x])
		}
		if board[1][x] != (Piece{Type: Pawn, Color: PlayerColorBlack}) {
			t.Errorf("row 1 col %d: want black pawn, got %+v", x, board[1][x])
		}
		for y := 2; y < 6; y++ {
			if !board[y][x].IsEmpty() {
				t.Errorf("row %d col %d: want empty, got %+v", y, x, board[y][x])
			}
		}
	}
	if got := board.FEN(PlayerColorWhite, 1); got != FENStartPos {
		t.Errorf("FEN: want %q got %q", FENStartPos, got)
	}
}

func TestParseSquare(t *testing.T) {
	cases := []struct {
		in   string
		want Position
	}{
		{in: "a8", want: Position{X: 0, Y: 0}},
		{in: "h1", want: Position{X: 7, Y: 7}},
		{in: "e2", want: Position{X: 4, Y: 6}},
		{in: "e4", want: Position{X: 4, Y: 4}},
	}
	for _, c := range cases {
		got, err := ParseSquare(c.in)
		if err != nil {
			t.Fatalf("%s: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("%s: want %+v got %+v", c.in, c.want, got)
		}
		if got.String() != c.in {
			t.Errorf("String: want %s got %s", c.in, got.String())
		}
	}

	for _, bad := range []string{"", "e", "e9", "i1", "E2", "e22"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("%q: want ErrInvalidSquare, got %v", bad, err)
		}
	}
}

func TestPositionUnmarshalJSON(t *testing.T) {
	var move WSMove
	if err := json.Unmarshal([]byte(`{"from":"e2","to":{"x":4,"y":4}}`), &move); err != nil {
		t.Fatal(err)
	}
	want := WSMove{From: Position{X: 4, Y: 6}, To: Position{X: 4, Y: 4}}
	if move != want {
		t.Errorf("want %+v got %+v", want, move)
	}

	if err := json.Unmarshal([]byte(`{"square":"z9"}`), &WSSquare{}); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("want ErrInvalidSquare, got %v", err)
	}
}

func TestBoardMarshalJSON(t *testing.T) {
	board := NewBoard()
	b, err := json.Marshal(board)
	if err != nil {
		t.Fatal(err)
	}
	var rows [][]*Piece
	if err := json.Unmarshal(b, &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 8 || len(rows[0]) != 8 {
		t.Fatalf("want 8x8 rows, got %s", b)
	}
	if rows[4][4] != nil {
		t.Errorf("e4: want null, got %+v", rows[4][4])
	}
	if rows[7][4] == nil || *rows[7][4] != (Piece{Type: King, Color: PlayerColorWhite}) {
		t.Errorf("e1: want white king, got %s", spew.Sdump(rows[7][4]))
	}
}

func TestParseFEN(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1"
	board, toMove, err := ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	if toMove != PlayerColorBlack {
		t.Errorf("want black to move, got %s", toMove)
	}
	if got := board.At(sq(t, "e7")); got != (Piece{Type: Queen, Color: PlayerColorBlack}) {
		t.Errorf("e7: want black queen, got %+v", got)
	}
	if got := board.At(sq(t, "e5")); got != (Piece{Type: Knight, Color: PlayerColorWhite}) {
		t.Errorf("e5: want white knight, got %+v", got)
	}
	want := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 7"
	if got := board.FEN(toMove, 7); got != want {
		t.Errorf("FEN: want %q got %q", want, got)
	}
}

func TestParseFEN_Invalid(t *testing.T) {
	cases := []string{
		"",
		"8/8/8/8/8/8/8 w",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQXBNR w",
		"8/8/8/8/8/8/8/4K3 w",
		"k7/8/8/8/8/8/8/KK6 w",
		"k7/8/8/8/8/8/8/K7 x",
	}
	for _, fen := range cases {
		if _, _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("%q: want ErrInvalidFEN, got %v", fen, err)
		}
	}
}
