package service

import (
	"errors"
	"testing"

	"github.com/AprajitaMaan/CIs17C-Project2-BoardGame/internal/model"
)

func TestCreateAndJoinGame(t *testing.T) {
	gm := NewGameManager()

	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := gm.CreateGame("g1"); err == nil {
		t.Fatal("duplicate game ID must be rejected")
	}

	color, err := gm.AddPlayerToGame("g1", "alice")
	if err != nil || color != model.White {
		t.Fatalf("first join: color %s, err %v", color, err)
	}
	color, err = gm.AddPlayerToGame("g1", "bob")
	if err != nil || color != model.Black {
		t.Fatalf("second join: color %s, err %v", color, err)
	}
	if _, err := gm.AddPlayerToGame("g1", "carol"); err == nil {
		t.Fatal("a full game must reject a third player")
	}

	if _, err := gm.AddPlayerToGame("missing", "dave"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestMakeMoveThroughManager(t *testing.T) {
	gm := NewGameManager()
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := gm.AddPlayerToGame("g1", "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := gm.AddPlayerToGame("g1", "bob"); err != nil {
		t.Fatalf("join: %v", err)
	}

	if err := gm.MakeMove("g1", "alice", model.WSMove{From: "e2", To: "e4"}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := gm.MakeMove("missing", "alice", model.WSMove{From: "e2", To: "e4"}); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}

	state, err := gm.GetGameState("g1")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.ToMove != model.Black {
		t.Fatalf("toMove = %s, want black", state.ToMove)
	}
}

func TestGameServiceCreateAssignsID(t *testing.T) {
	gs := NewGameService(NewGameManager())

	id, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("created game must get an ID")
	}
	if _, err := gs.GetGameState(id); err != nil {
		t.Fatalf("state for %s: %v", id, err)
	}
}
