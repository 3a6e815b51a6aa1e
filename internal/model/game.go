package model

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/AprajitaMaan/CIs17C-Project2-BoardGame/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// GameConnections holds the sockets observing a single game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

// Game is one two-player session: a BoardState plus seats, clocks, history
// and its observers. All chess rule decisions are delegated to the board;
// the session additionally rejects out-of-turn and self-check moves so a
// networked player can only ever play a fully legal game.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *BoardState
	state       GameState
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
}

// GameState is the client-facing snapshot broadcast after every move.
type GameState struct {
	Sound          string         `json:"sound"`
	Board          [8][8]string   `json:"board"`
	ToMove         Color          `json:"toMove"`
	MoveHistory    []Move         `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	IsCheck        bool           `json:"isCheck"`
	LastMove       *SimpleMove    `json:"lastMove"`
	Resolve        *string        `json:"resolve"`
	Players        struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

// CapturedPieces lists what each side has taken.
type CapturedPieces struct {
	White []PieceType `json:"white"`
	Black []PieceType `json:"black"`
}

const initialClock = 600 * time.Second

func NewGame(id string) *Game {
	board := NewBoardState()
	g := &Game{
		ID:          id,
		board:       board,
		connections: newGameConnections(),
		whiteClock:  NewClock(initialClock),
		blackClock:  NewClock(initialClock),
	}
	g.state = GameState{
		Board:       board.Grid(),
		ToMove:      board.Turn(),
		MoveHistory: make([]Move, 0),
		CapturedPieces: CapturedPieces{
			White: make([]PieceType, 0),
			Black: make([]PieceType, 0),
		},
	}
	g.state.Players.White = ClientPlayer{TimeLeft: clockTenths(initialClock)}
	g.state.Players.Black = ClientPlayer{TimeLeft: clockTenths(initialClock)}
	return g
}

func newGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

func clockTenths(d time.Duration) int {
	return int(d.Milliseconds() / 100)
}

// AddPlayer seats a player on the first free side, White first.
func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Players.White.ID == "" {
		g.state.Players.White = ClientPlayer{
			ID:       playerID,
			Color:    White,
			TimeLeft: clockTenths(initialClock),
		}
		return White, nil
	}
	if g.state.Players.Black.ID == "" {
		g.state.Players.Black = ClientPlayer{
			ID:       playerID,
			Color:    Black,
			TimeLeft: clockTenths(initialClock),
		}
		return Black, nil
	}
	return "", ErrGameFull
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, seated := g.seatColor(playerID)
	return seated
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.state.Players.White.ID == "" || g.state.Players.Black.ID == ""
}

func (g *Game) seatColor(playerID string) (Color, bool) {
	if playerID == "" {
		return "", false
	}
	if g.state.Players.White.ID == playerID {
		return White, true
	}
	if g.state.Players.Black.ID == playerID {
		return Black, true
	}
	return "", false
}

// MakeMove validates playerID's move against the engine and applies it,
// then updates clocks, history and resolve status and broadcasts the new
// state.
func (g *Game) MakeMove(playerID string, move WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Resolve != nil {
		return ErrGameResolved
	}
	color, seated := g.seatColor(playerID)
	if !seated {
		return ErrNotInGame
	}
	if color != g.board.Turn() {
		return ErrNotYourTurn
	}

	from, ok := ParseCoordinate(move.From)
	if !ok {
		return ErrBadSquare
	}
	to, ok := ParseCoordinate(move.To)
	if !ok {
		return ErrBadSquare
	}
	piece, ok := g.board.PieceAt(from)
	if !ok || piece.Color != color {
		return ErrIllegalMove
	}

	// The executor leaves self-check filtering to its callers; a castle
	// attempt is validated in full by the executor itself.
	castleAttempt := piece.Type == King && from.Rank == to.Rank && abs(int(to.File)-int(from.File)) == 2
	if !castleAttempt {
		leavesCheck, err := g.board.moveLeavesKingInCheck(from, to, color)
		if err != nil {
			return err
		}
		if leavesCheck {
			return ErrIllegalMove
		}
	}

	ply := Ply{
		Piece: piece.Type,
		Color: color,
		From:  move.From,
		To:    move.To,
	}
	if target, occupied := g.board.PieceAt(to); occupied && target.Color != color {
		t := target.Type
		ply.CapturedPiece = &t
	} else if piece.Type == Pawn && to.File != from.File {
		// Diagonal pawn move onto an empty square: en passant.
		t := Pawn
		ply.CapturedPiece = &t
	}

	if !g.board.ApplyMove(from, to) {
		return ErrIllegalMove
	}

	if castleAttempt {
		ply.CastleRookMove = castleRookMove(from, to)
	}

	g.moverClock(color).Stop()
	g.moverClock(color.Opponent()).Start()
	g.recordPly(color, ply)
	return g.refreshState(ply)
}

func castleRookMove(from, to Coordinate) *CastleRookMove {
	if to.File > from.File {
		return &CastleRookMove{
			From: Coordinate{File: 'h', Rank: from.Rank}.String(),
			To:   Coordinate{File: 'f', Rank: from.Rank}.String(),
		}
	}
	return &CastleRookMove{
		From: Coordinate{File: 'a', Rank: from.Rank}.String(),
		To:   Coordinate{File: 'd', Rank: from.Rank}.String(),
	}
}

func (g *Game) moverClock(color Color) *Clock {
	if color == White {
		return g.whiteClock
	}
	return g.blackClock
}

func (g *Game) recordPly(color Color, ply Ply) {
	if ply.CapturedPiece != nil {
		switch color {
		case White:
			g.state.CapturedPieces.White = append(g.state.CapturedPieces.White, *ply.CapturedPiece)
		case Black:
			g.state.CapturedPieces.Black = append(g.state.CapturedPieces.Black, *ply.CapturedPiece)
		}
	}
	if color == White {
		g.state.MoveHistory = append(g.state.MoveHistory, Move{WhitePly: ply})
	} else if n := len(g.state.MoveHistory); n > 0 {
		g.state.MoveHistory[n-1].BlackPly = ply
	}
}

// refreshState re-derives the client snapshot after a successful move and
// broadcasts it.
func (g *Game) refreshState(ply Ply) error {
	next := g.board.Turn()

	inCheck, err := g.board.IsInCheck(next)
	if err != nil {
		return err
	}
	mate, err := g.board.IsCheckmate(next)
	if err != nil {
		return err
	}
	stale, err := g.board.IsStalemate(next)
	if err != nil {
		return err
	}

	switch {
	case inCheck:
		g.state.Sound = "check"
	case ply.CapturedPiece != nil:
		g.state.Sound = "capture"
	default:
		g.state.Sound = "move"
	}

	g.state.Board = g.board.Grid()
	g.state.ToMove = next
	g.state.IsCheck = inCheck
	g.state.LastMove = &SimpleMove{From: ply.From, To: ply.To}
	if mate {
		result := "checkmate"
		g.state.Resolve = &result
		g.whiteClock.Stop()
		g.blackClock.Stop()
	} else if stale {
		result := "stalemate"
		g.state.Resolve = &result
		g.whiteClock.Stop()
		g.blackClock.Stop()
	}

	g.state.Players.White.TimeLeft = clockTenths(g.whiteClock.GetTimeLeft())
	g.state.Players.Black.TimeLeft = clockTenths(g.blackClock.GetTimeLeft())

	g.broadcastState()
	return nil
}

// Resign ends the game in the opponent's favor.
func (g *Game) Resign(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, seated := g.seatColor(playerID); !seated {
		return ErrNotInGame
	}
	if g.state.Resolve != nil {
		return ErrGameResolved
	}

	result := "resignation"
	g.state.Resolve = &result
	g.whiteClock.Stop()
	g.blackClock.Stop()
	g.broadcastState()
	return nil
}

// RegisterConnection attaches a socket for a seated player or spectator and
// pushes the current state to everyone.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	authorized := false
	if _, seated := g.seatColor(playerID); seated || g.canSpectate() {
		authorized = true
	}
	g.mu.Unlock()

	if !authorized {
		return ErrNotInGame
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection and reject the newcomer.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	g.mu.Lock()
	g.broadcastState()
	g.mu.Unlock()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

// broadcastState serializes the snapshot under the game lock and ships it
// off the lock path. Callers must hold g.mu.
func (g *Game) broadcastState() {
	payload, err := json.Marshal(g.state)
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}
	go g.connections.send(ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	})
}

func (c *GameConnections) send(msg ws.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for playerID, conn := range c.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("dropping connection for %s: %v", playerID, err)
			delete(c.connections, playerID)
		}
	}
}
