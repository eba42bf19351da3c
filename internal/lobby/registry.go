package lobby

import (
	"fmt"
	"sync"

	"github.com/playgrid/tictactoe-lobby/internal/apperror"
)

// Registry is the server-wide collection of live lobbies, keyed by name.
// The map itself is guarded; mutation of the lobbies it holds is
// serialized by the dispatcher.
type Registry struct {
	mu      sync.RWMutex
	lobbies map[string]*Lobby
}

func NewRegistry() *Registry {
	return &Registry{
		lobbies: make(map[string]*Lobby),
	}
}

// Create - creates and stores an empty lobby under name. Fails if the
// name is already taken, leaving the existing lobby untouched.
func (that *Registry) Create(name string) (*Lobby, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lobbies[name]; ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrLobbyAlreadyExists, name)
	}

	newLobby := New(name)
	that.lobbies[name] = newLobby

	return newLobby, nil
}

// Lookup - returns the lobby stored under name.
func (that *Registry) Lookup(name string) (*Lobby, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	foundLobby, ok := that.lobbies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrLobbyNotFound, name)
	}

	return foundLobby, nil
}

// Remove - deletes the entry for name. Called when the last participant
// has left the lobby.
func (that *Registry) Remove(name string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.lobbies, name)
}

// Info is a read-only snapshot of one lobby, served over REST.
type Info struct {
	Lobby   string `json:"lobby"`
	Players int    `json:"players"`
	Phase   Phase  `json:"phase"`
}

// List - returns a snapshot of every live lobby. Each lobby is read
// under its own lock, so listing is safe against concurrent dispatch.
func (that *Registry) List() []Info {
	that.mu.RLock()
	defer that.mu.RUnlock()

	infos := make([]Info, 0, len(that.lobbies))
	for _, l := range that.lobbies {
		infos = append(infos, l.Info())
	}

	return infos
}
