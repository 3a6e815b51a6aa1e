package model

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Piece is a live chess piece. Pieces are held by value inside the board
// occupancy map; Position mirrors the map key and HasMoved is set on the
// first move and never reset.
type Piece struct {
	Type     PieceType  `json:"type"`
	Color    Color      `json:"color"`
	Position Coordinate `json:"-"`
	HasMoved bool       `json:"hasMoved"`
}

var symbols = map[PieceType]string{
	King:   "K",
	Queen:  "Q",
	Rook:   "R",
	Bishop: "B",
	Knight: "N",
	Pawn:   "P",
}

var blackSymbols = map[PieceType]string{
	King:   "k",
	Queen:  "q",
	Rook:   "r",
	Bishop: "b",
	Knight: "n",
	Pawn:   "p",
}

// Symbol is the conventional one letter rendering, uppercase for White.
func (p Piece) Symbol() string {
	if p.Color == Black {
		return blackSymbols[p.Type]
	}
	return symbols[p.Type]
}
