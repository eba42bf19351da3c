package websocket

import (
	"github.com/playgrid/tictactoe-lobby/internal/entity"
)

// Error reply texts for lobby policy violations. Illegal game actions are
// deliberately not answered at all.
const (
	errLobbyExists       = "lobby already exists"
	errLobbyUnavailable  = "lobby full or does not exist"
	errLobbyNotReadyText = "lobby is not ready to start"
)

func (that *Server) handleCreateLobby(c *client, message *Message) error {
	log := that.logger.With("method", "handleCreateLobby", "lobby", message.Lobby)

	newLobby, err := that.lobbies.Create(message.Lobby)
	if err != nil {
		log.Info("lobby name taken")
		return that.sendError(c, errLobbyExists)
	}

	participant := entity.NewParticipant(message.Name, c.sink)
	c.lobbyName = message.Lobby
	c.participant = participant

	if err = newLobby.AddPlayer(participant); err != nil {
		// a freshly created lobby always has a free seat
		return err
	}

	log.Info("lobby created", "player", participant.Name)

	return nil
}

func (that *Server) handleJoinLobby(c *client, message *Message) error {
	log := that.logger.With("method", "handleJoinLobby", "lobby", message.Lobby)

	foundLobby, err := that.lobbies.Lookup(message.Lobby)
	if err != nil || foundLobby.IsFull() {
		log.Info("join refused")
		return that.sendError(c, errLobbyUnavailable)
	}

	participant := entity.NewParticipant(message.Name, c.sink)

	if err = foundLobby.AddPlayer(participant); err != nil {
		return that.sendError(c, errLobbyUnavailable)
	}

	c.lobbyName = message.Lobby
	c.participant = participant

	log.Info("player joined lobby", "player", participant.Name, "symbol", participant.Symbol)

	return nil
}

func (that *Server) handleStartGame(c *client, _ *Message) error {
	log := that.logger.With("method", "handleStartGame", "lobby", c.lobbyName)

	if c.lobbyName == "" {
		return nil
	}

	foundLobby, err := that.lobbies.Lookup(c.lobbyName)
	if err != nil {
		return nil
	}

	if err = foundLobby.Start(); err != nil {
		log.Info("start refused", "error", err)
		return that.sendError(c, errLobbyNotReadyText)
	}

	log.Info("game started")

	return nil
}

func (that *Server) handleMove(c *client, message *Message) error {
	log := that.logger.With("method", "handleMove", "lobby", c.lobbyName)

	if c.lobbyName == "" || c.participant == nil {
		return nil
	}

	if message.Move == nil {
		return that.sendError(c, errInvalidInput)
	}

	foundLobby, err := that.lobbies.Lookup(c.lobbyName)
	if err != nil {
		return nil
	}

	// illegal moves are dropped without a reply, by contract
	if err = foundLobby.HandleMove(c.participant, message.Move.Index); err != nil {
		log.Debug("move rejected", "cell", message.Move.Index, "error", err)
	}

	return nil
}

// handleClose - reaps the participant when the connection goes away. The
// lobby leaves the registry exactly when its last participant is gone.
func (that *Server) handleClose(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "handleClose", "lobby", c.lobbyName)

	if c.lobbyName == "" || c.participant == nil {
		return
	}

	foundLobby, err := that.lobbies.Lookup(c.lobbyName)
	if err != nil {
		return
	}

	foundLobby.RemovePlayer(c.participant)

	if foundLobby.IsEmpty() {
		that.lobbies.Remove(c.lobbyName)
		log.Info("lobby removed, last player left")
		return
	}

	log.Info("player left lobby", "player", c.participant.Name)
}
