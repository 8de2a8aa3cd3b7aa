package actions

import (
	"encoding/json"
	"testing"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/engine/handlers"
	"github.com/expenses/snowy/pkg/api"
)

// fakeWorld запоминает вызовы
type fakeWorld struct {
	allowMove bool
	moves     []domain.Direction
	turns     int
	zooms     []bool
	pans      []domain.Direction
}

func (f *fakeWorld) TryToMovePlayer(dir domain.Direction) bool {
	f.moves = append(f.moves, dir)
	return f.allowMove || dir == domain.StandStill
}
func (f *fakeWorld) RunTurn()                       { f.turns++ }
func (f *fakeWorld) ZoomCamera(in bool)             { f.zooms = append(f.zooms, in) }
func (f *fakeWorld) PanCamera(dir domain.Direction) { f.pans = append(f.pans, dir) }

func TestHandleMove(t *testing.T) {
	tests := []struct {
		name      string
		allow     bool
		wantTurns int
		accepted  bool
	}{
		{"Accepted move runs a turn", true, 1, true},
		{"Rejected move leaves the world alone", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWorld{allowMove: tt.allow}
			res, err := HandleMove(handlers.Context{World: w}, api.DirectionPayload{Direction: "UP_LEFT"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w.turns != tt.wantTurns {
				t.Errorf("turns = %d, want %d", w.turns, tt.wantTurns)
			}
			if res.Accepted != tt.accepted || res.TurnAdvanced != tt.accepted {
				t.Errorf("result = %+v", res)
			}
			if res.Msg != "" {
				t.Errorf("move should not produce a log message, got %q", res.Msg)
			}
			if res.Direction != domain.UpLeft {
				t.Errorf("Direction = %v, want UP_LEFT", res.Direction)
			}
		})
	}
}

func TestHandleWait(t *testing.T) {
	w := &fakeWorld{}
	res, err := HandleWait(handlers.Context{World: w})
	if err != nil {
		t.Fatal(err)
	}
	if w.turns != 1 || !res.TurnAdvanced {
		t.Errorf("wait should run exactly one turn, got %d", w.turns)
	}
	if len(w.moves) != 1 || w.moves[0] != domain.StandStill {
		t.Errorf("wait should try STAND_STILL, got %v", w.moves)
	}
}

func TestCameraHandlers_DoNotAdvanceTurn(t *testing.T) {
	w := &fakeWorld{}
	ctx := handlers.Context{World: w}

	zoom := handlers.WithPayload(HandleZoom)
	if _, err := zoom(ctx, json.RawMessage(`{"in":true}`)); err != nil {
		t.Fatal(err)
	}
	pan := handlers.WithPayload(HandlePan)
	if _, err := pan(ctx, json.RawMessage(`{"direction":"LEFT"}`)); err != nil {
		t.Fatal(err)
	}

	if w.turns != 0 {
		t.Errorf("camera must not run turns, got %d", w.turns)
	}
	if len(w.zooms) != 1 || !w.zooms[0] {
		t.Errorf("zooms = %v", w.zooms)
	}
	if len(w.pans) != 1 || w.pans[0] != domain.Left {
		t.Errorf("pans = %v", w.pans)
	}
}

func TestWithPayload_Errors(t *testing.T) {
	h := handlers.WithPayload(HandleMove)
	ctx := handlers.Context{World: &fakeWorld{allowMove: true}}

	cases := map[string]json.RawMessage{
		"missing":   nil,
		"malformed": json.RawMessage(`{"direction":`),
		"invalid":   json.RawMessage(`{"direction":"NORTH"}`),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := h(ctx, raw); err == nil {
				t.Error("expected error")
			}
		})
	}
}
