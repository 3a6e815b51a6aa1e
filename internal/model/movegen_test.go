package model

import (
	"sort"
	"testing"
)

func assertMoves(t *testing.T, got []Coordinate, want ...string) {
	t.Helper()
	gotTokens := make([]string, 0, len(got))
	for _, c := range got {
		gotTokens = append(gotTokens, c.String())
	}
	sort.Strings(gotTokens)
	sort.Strings(want)

	if len(gotTokens) != len(want) {
		t.Fatalf("got moves %v, want %v", gotTokens, want)
	}
	for i := range want {
		if gotTokens[i] != want[i] {
			t.Fatalf("got moves %v, want %v", gotTokens, want)
		}
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name   string
		pieces []Piece
		from   string
		want   []string
	}{
		{
			name:   "unmoved pawn offers single and double step",
			pieces: []Piece{pc(Pawn, White, "e2")},
			from:   "e2",
			want:   []string{"e3", "e4"},
		},
		{
			name:   "blocked immediately, no moves",
			pieces: []Piece{pc(Pawn, White, "e2"), pc(Knight, Black, "e3")},
			from:   "e2",
			want:   nil,
		},
		{
			name:   "double step blocked by far square",
			pieces: []Piece{pc(Pawn, White, "e2"), pc(Knight, Black, "e4")},
			from:   "e2",
			want:   []string{"e3"},
		},
		{
			name:   "moved pawn loses the double step",
			pieces: []Piece{movedPc(Pawn, White, "e3")},
			from:   "e3",
			want:   []string{"e4"},
		},
		{
			name:   "diagonal captures on enemies only",
			pieces: []Piece{pc(Pawn, White, "e4"), pc(Pawn, Black, "d5"), pc(Pawn, White, "f5"), pc(Pawn, Black, "e5")},
			from:   "e4",
			want:   []string{"d5"},
		},
		{
			name:   "black pawn advances toward rank 1",
			pieces: []Piece{pc(Pawn, Black, "e7")},
			from:   "e7",
			want:   []string{"e6", "e5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBoard(tt.pieces...)
			assertMoves(t, b.pseudoLegalMoves(at(t, tt.from)), tt.want...)
		})
	}
}

func TestPawnEnPassantGeneration(t *testing.T) {
	// Black just pushed d7d5 beside the white pawn on e5.
	b := testBoard(movedPc(Pawn, White, "e5"), movedPc(Pawn, Black, "d5"))
	b.lastMove = at(t, "d5")
	b.enPassantAvailable = true

	assertMoves(t, b.pseudoLegalMoves(at(t, "e5")), "e6", "d6")

	// The window is a single move wide.
	b.enPassantAvailable = false
	assertMoves(t, b.pseudoLegalMoves(at(t, "e5")), "e6")
}

func TestKnightMoves(t *testing.T) {
	t.Run("corner offsets filtered to bounds", func(t *testing.T) {
		b := testBoard(pc(Knight, White, "a1"))
		assertMoves(t, b.pseudoLegalMoves(at(t, "a1")), "b3", "c2")
	})

	t.Run("same color squares excluded, enemies are captures", func(t *testing.T) {
		b := testBoard(pc(Knight, White, "d4"), pc(Pawn, White, "e6"), pc(Pawn, Black, "c6"))
		assertMoves(t, b.pseudoLegalMoves(at(t, "d4")),
			"c6", "b5", "b3", "c2", "e2", "f3", "f5")
	})
}

func TestRayMoves(t *testing.T) {
	t.Run("rook ray stops at own piece, excludes it", func(t *testing.T) {
		b := testBoard(pc(Rook, White, "d4"), pc(Pawn, White, "d6"))
		assertMoves(t, b.pseudoLegalMoves(at(t, "d4")),
			"d5", "d3", "d2", "d1",
			"a4", "b4", "c4", "e4", "f4", "g4", "h4")
	})

	t.Run("rook ray includes first enemy as capture, stops there", func(t *testing.T) {
		b := testBoard(pc(Rook, White, "d4"), pc(Pawn, Black, "d6"))
		assertMoves(t, b.pseudoLegalMoves(at(t, "d4")),
			"d5", "d6", "d3", "d2", "d1",
			"a4", "b4", "c4", "e4", "f4", "g4", "h4")
	})

	t.Run("bishop diagonals", func(t *testing.T) {
		b := testBoard(pc(Bishop, White, "c1"), pc(Pawn, White, "e3"), pc(Pawn, Black, "a3"))
		assertMoves(t, b.pseudoLegalMoves(at(t, "c1")), "b2", "a3", "d2")
	})

	t.Run("queen combines both ray sets", func(t *testing.T) {
		b := testBoard(pc(Queen, White, "a1"), pc(Pawn, Black, "a3"), pc(Pawn, White, "c3"), pc(Pawn, Black, "b1"))
		assertMoves(t, b.pseudoLegalMoves(at(t, "a1")), "a2", "a3", "b1", "b2")
	})
}

func TestKingMoves(t *testing.T) {
	b := testBoard(pc(King, White, "e4"), pc(Pawn, White, "e5"), pc(Pawn, Black, "d5"))
	assertMoves(t, b.pseudoLegalMoves(at(t, "e4")),
		"d5", "d4", "d3", "e3", "f3", "f4", "f5")
}

func TestIsSquareAttacked(t *testing.T) {
	b := testBoard(pc(Rook, Black, "e8"), pc(Pawn, White, "e4"))

	if !b.isSquareAttacked(at(t, "e5"), Black) {
		t.Error("rook attacks down the open file")
	}
	if b.isSquareAttacked(at(t, "e3"), Black) {
		t.Error("the white pawn blocks the rook past e4")
	}
	if b.isSquareAttacked(at(t, "d5"), Black) {
		t.Error("no black piece reaches d5")
	}
}
