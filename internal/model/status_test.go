package model

import (
	"errors"
	"maps"
	"testing"
)

func foolsMateBoard(t *testing.T) *BoardState {
	t.Helper()
	b := NewBoardState()
	for _, m := range [][2]string{
		{"f2", "f3"}, {"e7", "e6"},
		{"g2", "g4"}, {"d8", "h4"},
	} {
		if !b.ApplyMove(at(t, m[0]), at(t, m[1])) {
			t.Fatalf("setup move %s%s failed", m[0], m[1])
		}
	}
	return b
}

func TestIsInCheck(t *testing.T) {
	b := testBoard(
		pc(King, White, "e1"), pc(King, Black, "a8"),
		pc(Rook, Black, "e8"),
	)

	inCheck, err := b.IsInCheck(White)
	if err != nil {
		t.Fatalf("IsInCheck(White): %v", err)
	}
	if !inCheck {
		t.Fatal("the e8 rook checks the e1 king")
	}

	inCheck, err = b.IsInCheck(Black)
	if err != nil {
		t.Fatalf("IsInCheck(Black): %v", err)
	}
	if inCheck {
		t.Fatal("nothing attacks the black king")
	}
}

func TestIsInCheckMissingKing(t *testing.T) {
	b := testBoard(pc(Rook, Black, "e8"))

	if _, err := b.IsInCheck(White); !errors.Is(err, ErrKingMissing) {
		t.Fatalf("expected ErrKingMissing, got %v", err)
	}
	if _, err := b.IsCheckmate(White); !errors.Is(err, ErrKingMissing) {
		t.Fatalf("expected ErrKingMissing from IsCheckmate, got %v", err)
	}
	if _, err := b.IsStalemate(White); !errors.Is(err, ErrKingMissing) {
		t.Fatalf("expected ErrKingMissing from IsStalemate, got %v", err)
	}
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	b := foolsMateBoard(t)

	mate, err := b.IsCheckmate(White)
	if err != nil {
		t.Fatalf("IsCheckmate: %v", err)
	}
	if !mate {
		t.Fatal("fool's mate is checkmate for White")
	}

	stale, err := b.IsStalemate(White)
	if err != nil {
		t.Fatalf("IsStalemate: %v", err)
	}
	if stale {
		t.Fatal("a mated side is not stalemated")
	}
}

func TestCheckmateFalseWhenEscapeExists(t *testing.T) {
	b := foolsMateBoard(t)

	// Opening e2 gives the king a flight square off the h4-e1 diagonal.
	delete(b.pieces, at(t, "e2"))

	mate, err := b.IsCheckmate(White)
	if err != nil {
		t.Fatalf("IsCheckmate: %v", err)
	}
	if mate {
		t.Fatal("with Ke2 available this is not checkmate")
	}
}

func TestStalemate(t *testing.T) {
	b := testBoard(
		pc(King, Black, "a8"),
		pc(King, White, "b6"), pc(Queen, White, "c7"),
	)

	stale, err := b.IsStalemate(Black)
	if err != nil {
		t.Fatalf("IsStalemate: %v", err)
	}
	if !stale {
		t.Fatal("the cornered king with no safe square is stalemated")
	}

	mate, err := b.IsCheckmate(Black)
	if err != nil {
		t.Fatalf("IsCheckmate: %v", err)
	}
	if mate {
		t.Fatal("the king is not in check, so this cannot be checkmate")
	}

	// Any one free move flips the verdict.
	b.place(pc(Pawn, Black, "h5"))
	stale, err = b.IsStalemate(Black)
	if err != nil {
		t.Fatalf("IsStalemate: %v", err)
	}
	if stale {
		t.Fatal("the pawn push h5h4 is a legal move")
	}
}

// Repeated status queries must agree with each other and leave the board
// exactly as it was, which exercises the trial-move revert paths.
func TestStatusQueriesAreIdempotent(t *testing.T) {
	b := foolsMateBoard(t)
	before := maps.Clone(b.pieces)

	for i := 0; i < 3; i++ {
		mate, err := b.IsCheckmate(White)
		if err != nil {
			t.Fatalf("IsCheckmate: %v", err)
		}
		if !mate {
			t.Fatalf("IsCheckmate flipped on query %d", i)
		}
		stale, err := b.IsStalemate(Black)
		if err != nil {
			t.Fatalf("IsStalemate: %v", err)
		}
		if stale {
			t.Fatalf("IsStalemate flipped on query %d", i)
		}
	}

	if !maps.Equal(before, b.pieces) {
		t.Fatal("status queries mutated occupancy")
	}
}

func TestMoveLeavesKingInCheckReverts(t *testing.T) {
	b := testBoard(
		pc(King, White, "e1"), pc(Bishop, White, "e2"),
		pc(King, Black, "a8"), pc(Rook, Black, "e8"),
	)
	before := maps.Clone(b.pieces)

	leaves, err := b.moveLeavesKingInCheck(at(t, "e2"), at(t, "d3"), White)
	if err != nil {
		t.Fatalf("moveLeavesKingInCheck: %v", err)
	}
	if !leaves {
		t.Fatal("moving the pinned bishop exposes the king")
	}
	if !maps.Equal(before, b.pieces) {
		t.Fatal("trial move was not reverted")
	}

	leaves, err = b.moveLeavesKingInCheck(at(t, "e2"), at(t, "e5"), White)
	if err != nil {
		t.Fatalf("moveLeavesKingInCheck: %v", err)
	}
	if leaves {
		t.Fatal("e5 keeps the bishop on the pinned file")
	}
}
