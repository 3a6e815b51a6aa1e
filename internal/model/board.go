package model

// BoardState exclusively owns all live pieces, keyed by square. It also
// tracks whose turn it is, the destination square of the previous move,
// whether an en passant capture is available to the side to move, and the
// four castling rights.
type BoardState struct {
	pieces             map[Coordinate]Piece
	turn               Color
	lastMove           Coordinate
	enPassantAvailable bool

	whiteCastleKingSide  bool
	whiteCastleQueenSide bool
	blackCastleKingSide  bool
	blackCastleQueenSide bool
}

// NewBoardState sets up the standard 32 piece starting position with White
// to move.
func NewBoardState() *BoardState {
	b := &BoardState{
		pieces:               make(map[Coordinate]Piece, 32),
		turn:                 White,
		lastMove:             Coordinate{File: 'a', Rank: 1},
		whiteCastleKingSide:  true,
		whiteCastleQueenSide: true,
		blackCastleKingSide:  true,
		blackCastleQueenSide: true,
	}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i, t := range backRank {
		file := byte('a' + i)
		b.place(Piece{Type: t, Color: White, Position: Coordinate{File: file, Rank: 1}})
		b.place(Piece{Type: t, Color: Black, Position: Coordinate{File: file, Rank: 8}})
	}
	for file := byte('a'); file <= 'h'; file++ {
		b.place(Piece{Type: Pawn, Color: White, Position: Coordinate{File: file, Rank: 2}})
		b.place(Piece{Type: Pawn, Color: Black, Position: Coordinate{File: file, Rank: 7}})
	}
	return b
}

func (b *BoardState) place(p Piece) {
	b.pieces[p.Position] = p
}

func (b *BoardState) Turn() Color { return b.turn }

func (b *BoardState) LastMove() Coordinate { return b.lastMove }

func (b *BoardState) EnPassantAvailable() bool { return b.enPassantAvailable }

func (b *BoardState) PieceAt(c Coordinate) (Piece, bool) {
	p, ok := b.pieces[c]
	return p, ok
}

func (b *BoardState) CanCastleKingSide(color Color) bool {
	if color == White {
		return b.whiteCastleKingSide
	}
	return b.blackCastleKingSide
}

func (b *BoardState) CanCastleQueenSide(color Color) bool {
	if color == White {
		return b.whiteCastleQueenSide
	}
	return b.blackCastleQueenSide
}

// Snapshot returns a read-only copy of the occupancy as one letter symbols,
// for rendering.
func (b *BoardState) Snapshot() map[Coordinate]string {
	out := make(map[Coordinate]string, len(b.pieces))
	for sq, p := range b.pieces {
		out[sq] = p.Symbol()
	}
	return out
}

// Grid lays the snapshot out as rows with rank 8 first, empty squares as "".
func (b *BoardState) Grid() [8][8]string {
	var grid [8][8]string
	for sq, p := range b.pieces {
		grid[8-sq.Rank][sq.File-'a'] = p.Symbol()
	}
	return grid
}

// ApplyMove validates and executes a single move. It returns false, leaving
// the board untouched, when no piece occupies from or the destination is not
// reachable. Castling is requested by moving the king two files toward a
// rook and is either executed in full (king and rook together) or rejected.
func (b *BoardState) ApplyMove(from, to Coordinate) bool {
	piece, ok := b.pieces[from]
	if !ok {
		return false
	}

	if piece.Type == King && from.Rank == to.Rank && abs(int(to.File)-int(from.File)) == 2 {
		return b.castle(piece, from, to)
	}

	if !containsCoord(b.pseudoLegalMoves(from), to) {
		return false
	}

	enPassantCapture := false
	nextEnPassant := false
	if piece.Type == Pawn {
		// En passant lands on an empty square; the victim sits behind it
		// on the mover's origin rank.
		behind := Coordinate{File: to.File, Rank: from.Rank}
		if _, occupied := b.pieces[to]; !occupied && b.enPassantAvailable && b.lastMove == behind {
			if victim, ok := b.pieces[behind]; ok && victim.Type == Pawn && victim.Color != piece.Color {
				enPassantCapture = true
			}
		}
		nextEnPassant = abs(to.Rank-from.Rank) == 2
	}

	if enPassantCapture {
		delete(b.pieces, Coordinate{File: to.File, Rank: from.Rank})
	}

	if captured, ok := b.pieces[to]; ok && captured.Type == Rook {
		b.revokeRookRight(captured.Color, to)
	}

	switch piece.Type {
	case King:
		b.revokeCastling(piece.Color)
	case Rook:
		b.revokeRookRight(piece.Color, from)
	}

	piece.Position = to
	piece.HasMoved = true
	delete(b.pieces, from)
	b.pieces[to] = piece

	b.lastMove = to
	b.enPassantAvailable = nextEnPassant
	b.turn = b.turn.Opponent()
	return true
}

// castle executes a fully validated castle or rejects the move outright. The
// rights flag, the rook, the empty span between the pieces, and the safety
// of the king's current, transit and destination squares are all required.
func (b *BoardState) castle(king Piece, from, to Coordinate) bool {
	kingSide := to.File > from.File

	if kingSide && !b.CanCastleKingSide(king.Color) {
		return false
	}
	if !kingSide && !b.CanCastleQueenSide(king.Color) {
		return false
	}

	rookFile := byte('h')
	rookTo := Coordinate{File: 'f', Rank: from.Rank}
	between := []byte{'f', 'g'}
	transit := []byte{'f', 'g'}
	if !kingSide {
		rookFile = 'a'
		rookTo = Coordinate{File: 'd', Rank: from.Rank}
		between = []byte{'b', 'c', 'd'}
		transit = []byte{'d', 'c'}
	}

	rookFrom := Coordinate{File: rookFile, Rank: from.Rank}
	rook, ok := b.pieces[rookFrom]
	if !ok || rook.Type != Rook || rook.Color != king.Color || rook.HasMoved {
		return false
	}
	for _, f := range between {
		if _, occupied := b.pieces[Coordinate{File: f, Rank: from.Rank}]; occupied {
			return false
		}
	}

	enemy := king.Color.Opponent()
	if b.isSquareAttacked(from, enemy) {
		return false
	}
	for _, f := range transit {
		if b.isSquareAttacked(Coordinate{File: f, Rank: from.Rank}, enemy) {
			return false
		}
	}

	king.Position = to
	king.HasMoved = true
	delete(b.pieces, from)
	b.pieces[to] = king

	rook.Position = rookTo
	rook.HasMoved = true
	delete(b.pieces, rookFrom)
	b.pieces[rookTo] = rook

	b.revokeCastling(king.Color)
	b.lastMove = to
	b.enPassantAvailable = false
	b.turn = b.turn.Opponent()
	return true
}

func (b *BoardState) revokeCastling(color Color) {
	if color == White {
		b.whiteCastleKingSide = false
		b.whiteCastleQueenSide = false
	} else {
		b.blackCastleKingSide = false
		b.blackCastleQueenSide = false
	}
}

// revokeRookRight clears one wing's right when a rook moves off, or is
// captured on, its home corner.
func (b *BoardState) revokeRookRight(color Color, corner Coordinate) {
	homeRank := 1
	if color == Black {
		homeRank = 8
	}
	if corner.Rank != homeRank {
		return
	}
	switch corner.File {
	case 'h':
		if color == White {
			b.whiteCastleKingSide = false
		} else {
			b.blackCastleKingSide = false
		}
	case 'a':
		if color == White {
			b.whiteCastleQueenSide = false
		} else {
			b.blackCastleQueenSide = false
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
