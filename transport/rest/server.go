package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/playgrid/tictactoe-lobby/internal/lobby"
)

func Start(port string, lobbies *lobby.Registry) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", pingHandler)
	mux.HandleFunc("/lobbies", lobbiesHandler(lobbies))

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
