package model

// Player is a matchmaking participant before being seated in a game.
type Player struct {
	ID string
}

// ClientPlayer is one seat as rendered to clients. TimeLeft is in tenths of
// a second.
type ClientPlayer struct {
	ID       string `json:"name"`
	Color    Color  `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}

// MatchFoundEvent tells a queued player which game they were paired into.
type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Color  Color  `json:"color"`
}
