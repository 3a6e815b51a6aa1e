package model

// Check, checkmate and stalemate are answered by trial-applying candidate
// moves and re-running check detection. Trial mutations are reverted on
// every exit path, so repeated status queries leave occupancy untouched.

func (b *BoardState) findKing(color Color) (Coordinate, error) {
	for sq, p := range b.pieces {
		if p.Type == King && p.Color == color {
			return sq, nil
		}
	}
	return Coordinate{}, ErrKingMissing
}

// IsInCheck reports whether color's king square is attacked by any opposing
// piece. It fails with ErrKingMissing when no king of that color is on the
// board.
func (b *BoardState) IsInCheck(color Color) (bool, error) {
	kingPos, err := b.findKing(color)
	if err != nil {
		return false, err
	}
	return b.isSquareAttacked(kingPos, color.Opponent()), nil
}

// IsCheckmate reports whether color is in check with no trial move that
// escapes it.
func (b *BoardState) IsCheckmate(color Color) (bool, error) {
	inCheck, err := b.IsInCheck(color)
	if err != nil {
		return false, err
	}
	if !inCheck {
		return false, nil
	}
	escape, err := b.hasSafeMove(color)
	if err != nil {
		return false, err
	}
	return !escape, nil
}

// IsStalemate reports whether color is not in check yet has no move that
// avoids self-check.
func (b *BoardState) IsStalemate(color Color) (bool, error) {
	inCheck, err := b.IsInCheck(color)
	if err != nil {
		return false, err
	}
	if inCheck {
		return false, nil
	}
	escape, err := b.hasSafeMove(color)
	if err != nil {
		return false, err
	}
	return !escape, nil
}

func (b *BoardState) hasSafeMove(color Color) (bool, error) {
	// Trial moves mutate the occupancy map, so gather the candidate
	// squares before iterating.
	var own []Coordinate
	for sq, p := range b.pieces {
		if p.Color == color {
			own = append(own, sq)
		}
	}
	for _, sq := range own {
		for _, to := range b.pseudoLegalMoves(sq) {
			leavesCheck, err := b.moveLeavesKingInCheck(sq, to, color)
			if err != nil {
				return false, err
			}
			if !leavesCheck {
				return true, nil
			}
		}
	}
	return false, nil
}

// moveLeavesKingInCheck trial-applies from→to, evaluates check for color,
// and restores the mover and any overwritten occupant before returning.
func (b *BoardState) moveLeavesKingInCheck(from, to Coordinate, color Color) (bool, error) {
	piece, ok := b.pieces[from]
	if !ok {
		return false, ErrIllegalMove
	}
	captured, hadCaptured := b.pieces[to]

	moved := piece
	moved.Position = to
	delete(b.pieces, from)
	b.pieces[to] = moved

	defer func() {
		b.pieces[from] = piece
		if hadCaptured {
			b.pieces[to] = captured
		} else {
			delete(b.pieces, to)
		}
	}()

	return b.IsInCheck(color)
}
