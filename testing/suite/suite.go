package suite

import (
	"io"
	"log/slog"
	"testing"

	"github.com/playgrid/tictactoe-lobby/internal/lobby"
)

// Suite wires the pieces a test needs to drive the server in-process: a
// quiet logger and a fresh lobby registry per test.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Lobbies *lobby.Registry
}

func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return &Suite{
		T:       t,
		Logger:  logger,
		Lobbies: lobby.NewRegistry(),
	}
}
