package apperror

import "errors"

var (
	ErrLobbyAlreadyExists = errors.New("lobby already exists")
	ErrLobbyNotFound      = errors.New("lobby does not exist")
	ErrLobbyFull          = errors.New("lobby is full")
	ErrLobbyNotReady      = errors.New("lobby is not ready to start")

	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
)
