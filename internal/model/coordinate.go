package model

import "fmt"

// Coordinate identifies one board square by file ('a'..'h') and rank (1..8).
// It is a value type and is used as the key into board occupancy.
type Coordinate struct {
	File byte
	Rank int
}

// ParseCoordinate converts a two character square token such as "e2".
func ParseCoordinate(s string) (Coordinate, bool) {
	if len(s) != 2 {
		return Coordinate{}, false
	}
	c := Coordinate{File: s[0], Rank: int(s[1] - '0')}
	if !c.InBounds() {
		return Coordinate{}, false
	}
	return c, true
}

func (c Coordinate) InBounds() bool {
	return c.File >= 'a' && c.File <= 'h' && c.Rank >= 1 && c.Rank <= 8
}

// Less orders coordinates componentwise, file before rank.
func (c Coordinate) Less(other Coordinate) bool {
	if c.File != other.File {
		return c.File < other.File
	}
	return c.Rank < other.Rank
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%c%d", c.File, c.Rank)
}

func (c Coordinate) offset(df, dr int) Coordinate {
	return Coordinate{File: byte(int(c.File) + df), Rank: c.Rank + dr}
}
