package model

// WSMove is a move as it arrives from a client: two square tokens.
type WSMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type SimpleMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CastleRookMove records the rook half of a castle for clients replaying
// the move.
type CastleRookMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Ply is one half-move as stored in the game history.
type Ply struct {
	Piece          PieceType       `json:"piece"`
	Color          Color           `json:"color"`
	From           string          `json:"from"`
	To             string          `json:"to"`
	CapturedPiece  *PieceType      `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
}

// Move pairs White's ply with Black's reply.
type Move struct {
	WhitePly Ply `json:"whitePly"`
	BlackPly Ply `json:"blackPly"`
}
