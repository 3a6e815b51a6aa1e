package model

// Move generation produces pseudo-legal destinations: squares reachable by a
// piece's movement pattern and occupancy rules, without regard to whether
// the mover's own king is left in check. King safety is filtered at the
// status/session level.

var (
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	kingDirs   = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// pseudoLegalMoves dispatches on the variant of the piece at from. It never
// mutates the board and returns nil when the square is empty.
func (b *BoardState) pseudoLegalMoves(from Coordinate) []Coordinate {
	piece, ok := b.pieces[from]
	if !ok {
		return nil
	}
	switch piece.Type {
	case Pawn:
		return b.pawnMoves(piece)
	case Knight:
		return b.stepMoves(piece, knightDirs[:])
	case Bishop:
		return b.rayMoves(piece, bishopDirs[:])
	case Rook:
		return b.rayMoves(piece, rookDirs[:])
	case Queen:
		return append(b.rayMoves(piece, bishopDirs[:]), b.rayMoves(piece, rookDirs[:])...)
	case King:
		return b.stepMoves(piece, kingDirs[:])
	}
	return nil
}

func (b *BoardState) pawnMoves(piece Piece) []Coordinate {
	var moves []Coordinate
	dir := 1
	if piece.Color == Black {
		dir = -1
	}
	pos := piece.Position

	oneStep := pos.offset(0, dir)
	if _, occupied := b.pieces[oneStep]; !occupied && oneStep.InBounds() {
		moves = append(moves, oneStep)
		twoStep := pos.offset(0, 2*dir)
		if _, occupied := b.pieces[twoStep]; !occupied && !piece.HasMoved && twoStep.InBounds() {
			moves = append(moves, twoStep)
		}
	}

	for _, df := range []int{-1, 1} {
		capture := pos.offset(df, dir)
		if target, ok := b.pieces[capture]; ok && target.Color != piece.Color {
			moves = append(moves, capture)
		}
	}

	// En passant: the previous move must have been a double pawn push
	// landing beside this pawn; the capture lands behind that pawn.
	if b.enPassantAvailable {
		for _, df := range []int{-1, 1} {
			beside := pos.offset(df, 0)
			if b.lastMove != beside {
				continue
			}
			if target, ok := b.pieces[beside]; ok && target.Type == Pawn && target.Color != piece.Color {
				moves = append(moves, Coordinate{File: beside.File, Rank: pos.Rank + dir})
			}
		}
	}

	return moves
}

// stepMoves serves knights and kings: fixed offsets filtered to the board,
// excluding squares held by a same color piece.
func (b *BoardState) stepMoves(piece Piece, dirs [][2]int) []Coordinate {
	var moves []Coordinate
	for _, d := range dirs {
		target := piece.Position.offset(d[0], d[1])
		if !target.InBounds() {
			continue
		}
		if occupant, ok := b.pieces[target]; ok && occupant.Color == piece.Color {
			continue
		}
		moves = append(moves, target)
	}
	return moves
}

// rayMoves walks each direction one square at a time. Empty squares are
// reachable; the first occupied square stops the ray and is reachable only
// when it holds an opposing piece.
func (b *BoardState) rayMoves(piece Piece, dirs [][2]int) []Coordinate {
	var moves []Coordinate
	for _, d := range dirs {
		for target := piece.Position.offset(d[0], d[1]); target.InBounds(); target = target.offset(d[0], d[1]) {
			occupant, occupied := b.pieces[target]
			if !occupied {
				moves = append(moves, target)
				continue
			}
			if occupant.Color != piece.Color {
				moves = append(moves, target)
			}
			break
		}
	}
	return moves
}

// isSquareAttacked reports whether any piece of the attacking color has the
// target square in its pseudo-legal move set.
func (b *BoardState) isSquareAttacked(target Coordinate, attacker Color) bool {
	for sq, p := range b.pieces {
		if p.Color != attacker {
			continue
		}
		if containsCoord(b.pseudoLegalMoves(sq), target) {
			return true
		}
	}
	return false
}

func containsCoord(moves []Coordinate, c Coordinate) bool {
	for _, m := range moves {
		if m == c {
			return true
		}
	}
	return false
}
