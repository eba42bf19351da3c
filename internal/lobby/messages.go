package lobby

import "github.com/playgrid/tictactoe-lobby/internal/entity"

// Outbound message types pushed to participants.
const (
	MsgLobbyCreated = "lobby_created"
	MsgLobbyJoined  = "lobby_joined"
	MsgPlayerJoined = "player_joined"
	MsgPlayerLeft   = "player_left"
	MsgGameStarted  = "game_started"
	MsgMove         = "move"
	MsgGameOver     = "game_over"
)

// JoinedMessage confirms a create or join to the participant it is sent to.
// Type is MsgLobbyCreated for the first joiner and MsgLobbyJoined for the second.
type JoinedMessage struct {
	Type   string       `json:"type"`
	Symbol string       `json:"symbol"`
	Lobby  string       `json:"lobby"`
	Board  entity.Board `json:"board"`
	Turn   string       `json:"turn"`
	Name   string       `json:"name"`
}

// PlayerJoinedMessage tells both participants the lobby is full.
type PlayerJoinedMessage struct {
	Type string `json:"type"`
}

// PlayerLeftMessage tells the remaining participant their opponent is gone.
type PlayerLeftMessage struct {
	Type string `json:"type"`
}

type GameStartedMessage struct {
	Type  string       `json:"type"`
	Board entity.Board `json:"board"`
	Turn  string       `json:"turn"`
}

type MoveMessage struct {
	Type string     `json:"type"`
	Move PlayedMove `json:"move"`
	Turn string     `json:"turn"`
}

type PlayedMove struct {
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
}

// GameOverMessage ends a game. Winner is nil on a draw, which serializes
// as JSON null.
type GameOverMessage struct {
	Type   string       `json:"type"`
	Winner *string      `json:"winner"`
	Board  entity.Board `json:"board"`
}
