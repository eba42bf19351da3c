package rest

import (
	"encoding/json"
	"net/http"

	"github.com/playgrid/tictactoe-lobby/internal/lobby"
)

// lobbiesHandler - serves a read-only snapshot of live lobbies.
func lobbiesHandler(lobbies *lobby.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(lobbies.List()); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
}
