package lobby

import (
	"fmt"
	"sync"

	"github.com/playgrid/tictactoe-lobby/internal/apperror"
	"github.com/playgrid/tictactoe-lobby/internal/entity"
)

// Phase is the lifecycle state of a lobby.
//
//	Forming -> Ready -> Active -> Finished
//
// Forming: fewer than two players, game not started.
// Ready: both players present, waiting for start_game.
// Active: game in progress.
// Finished: a winner or draw has been broadcast. The lobby stays
// addressable until the last participant leaves.
type Phase string

const (
	PhaseForming  Phase = "forming"
	PhaseReady    Phase = "ready"
	PhaseActive   Phase = "active"
	PhaseFinished Phase = "finished"
)

const maxPlayers = 2

// Lobby is a named two-player game session. It owns the board, the turn
// state and its participants; all rule enforcement happens here. The
// dispatcher serializes mutation; the lobby's own lock additionally
// covers read-only snapshots taken off the dispatcher goroutine.
type Lobby struct {
	Name    string
	Board   entity.Board
	Players []*entity.Participant
	Turn    string
	Phase   Phase

	mu sync.RWMutex
}

func New(name string) *Lobby {
	return &Lobby{
		Name:  name,
		Board: entity.NewBoard(),
		Turn:  entity.PlayerX,
		Phase: PhaseForming,
	}
}

// AddPlayer - seats a participant. The first joiner gets X, the second O;
// insertion order is join order. The joiner receives a confirmation with
// their symbol and the lobby snapshot, and when the lobby becomes full
// both participants are told so.
func (that *Lobby) AddPlayer(participant *entity.Participant) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.Players) >= maxPlayers {
		return fmt.Errorf("%w: %s", apperror.ErrLobbyFull, that.Name)
	}

	if len(that.Players) == 0 {
		participant.Symbol = entity.PlayerX
	} else {
		participant.Symbol = entity.PlayerO
	}

	that.Players = append(that.Players, participant)

	msgType := MsgLobbyCreated
	if len(that.Players) == maxPlayers {
		msgType = MsgLobbyJoined
	}

	participant.Deliver(JoinedMessage{
		Type:   msgType,
		Symbol: participant.Symbol,
		Lobby:  that.Name,
		Board:  that.Board,
		Turn:   that.Turn,
		Name:   participant.Name,
	})

	if len(that.Players) == maxPlayers {
		// a rejoin into a running or decided game must not regress the phase
		if that.Phase == PhaseForming {
			that.Phase = PhaseReady
		}
		that.broadcast(PlayerJoinedMessage{Type: MsgPlayerJoined})
	}

	return nil
}

// Start - begins the game. The lobby must be full and not yet started.
func (that *Lobby) Start() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.Phase != PhaseReady {
		return fmt.Errorf("%w: %s", apperror.ErrLobbyNotReady, that.Name)
	}

	that.Phase = PhaseActive
	that.broadcast(GameStartedMessage{Type: MsgGameStarted, Board: that.Board, Turn: that.Turn})

	return nil
}

// HandleMove - arbitrates one move. An illegal move leaves the board,
// turn and phase untouched; the caller decides whether the returned
// error is reported or dropped.
func (that *Lobby) HandleMove(participant *entity.Participant, cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.Phase == PhaseFinished {
		return apperror.ErrGameFinished
	}

	if that.Phase != PhaseActive {
		return apperror.ErrGameIsNotStarted
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != participant.Symbol {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board.Set(cell, participant.Symbol)

	if winner := that.Board.Winner(); winner != entity.EmptyCell {
		that.Phase = PhaseFinished
		that.broadcast(GameOverMessage{Type: MsgGameOver, Winner: &winner, Board: that.Board})
		return nil
	}

	if that.Board.IsFull() {
		that.Phase = PhaseFinished
		that.broadcast(GameOverMessage{Type: MsgGameOver, Board: that.Board})
		return nil
	}

	that.Turn = entity.ToggleMark(that.Turn)
	that.broadcast(MoveMessage{
		Type: MsgMove,
		Move: PlayedMove{Index: cell, Symbol: participant.Symbol},
		Turn: that.Turn,
	})

	return nil
}

// RemovePlayer - unseats a participant regardless of phase. A remaining
// opponent is told their opponent left; the game state itself is not
// reset. The caller removes the lobby from the registry once empty.
func (that *Lobby) RemovePlayer(participant *entity.Participant) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for i, player := range that.Players {
		if player != participant {
			continue
		}

		that.Players = append(that.Players[:i], that.Players[i+1:]...)

		if len(that.Players) > 0 {
			that.broadcast(PlayerLeftMessage{Type: MsgPlayerLeft})
		}

		return
	}
}

// IsEmpty - reports whether no participants remain seated.
func (that *Lobby) IsEmpty() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.Players) == 0
}

// IsFull - reports whether both seats are taken.
func (that *Lobby) IsFull() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.Players) >= maxPlayers
}

// Info - returns a consistent read-only snapshot of the lobby.
func (that *Lobby) Info() Info {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return Info{
		Lobby:   that.Name,
		Players: len(that.Players),
		Phase:   that.Phase,
	}
}

// Broadcast - delivers a message to every seated participant, best effort.
func (that *Lobby) Broadcast(message any) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	that.broadcast(message)
}

// broadcast delivers without taking the lock; callers hold it.
func (that *Lobby) broadcast(message any) {
	for _, player := range that.Players {
		player.Deliver(message)
	}
}
