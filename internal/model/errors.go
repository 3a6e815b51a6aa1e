package model

import "errors"

var (
	ErrKingMissing  = errors.New("no king on board for color")
	ErrGameFull     = errors.New("game is full")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrNotInGame    = errors.New("player not in game")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameResolved = errors.New("game is already over")
	ErrBadSquare    = errors.New("malformed square token")
)
