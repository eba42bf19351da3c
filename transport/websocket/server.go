package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/playgrid/tictactoe-lobby/internal/entity"
	"github.com/playgrid/tictactoe-lobby/internal/lobby"
	"github.com/playgrid/tictactoe-lobby/internal/pkg"
)

const errInvalidInput = "invalid input"

// client is the per-connection state: the outbound sink, the lobby name
// the connection is bound to, and the participant created on create/join.
type client struct {
	sink        entity.Sink
	lobbyName   string
	participant *entity.Participant
}

// Server accepts WebSocket connections and dispatches inbound messages to
// lobby operations. A single mutex serializes every registry and lobby
// mutation, so no two events are ever applied concurrently.
type Server struct {
	logger  *slog.Logger
	lobbies *lobby.Registry

	mu       sync.Mutex
	handlers map[string]func(c *client, message *Message) error
}

func New(logger *slog.Logger, lobbies *lobby.Registry) *Server {
	server := &Server{
		logger:  logger,
		lobbies: lobbies,

		handlers: make(map[string]func(*client, *Message) error),
	}

	server.handlers["create_lobby"] = server.handleCreateLobby
	server.handlers["join_lobby"] = server.handleJoinLobby
	server.handlers["start_game"] = server.handleStartGame
	server.handlers["move"] = server.handleMove

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

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

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	if req.Header.Get("Upgrade") != "websocket" {
		http.Error(writer, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	key := req.Header.Get("Sec-WebSocket-Key")
	acceptKey := pkg.GenerateAcceptKey(key)

	writer.Header().Set("Upgrade", "websocket")
	writer.Header().Set("Connection", "Upgrade")
	writer.Header().Set("Sec-WebSocket-Accept", acceptKey)
	writer.WriteHeader(http.StatusSwitchingProtocols)

	hijacker, ok := writer.(http.Hijacker)
	if !ok {
		log.Error("web server does not support hijacking", "error", http.StatusText(http.StatusInternalServerError))
		return
	}

	conn, bufrw, err := hijacker.Hijack()
	if err != nil {
		log.Error("failed to hijack connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established")

	c := &client{sink: &connSink{bufrw: bufrw}}
	defer that.handleClose(c)

	if err = that.handleMessages(ctx, c, bufrw); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until the
// connection closes.
func (that *Server) handleMessages(ctx context.Context, c *client, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleMessages")

	for {
		if ctx.Err() != nil {
			return nil
		}

		reqBody, opCode, err := that.readRequest(bufrw)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		if err != nil {
			log.Error("error reading message", "error", err)
			return err
		}

		if opCode == opClose {
			return nil
		}

		that.dispatch(c, reqBody)
	}
}

// dispatch - routes one inbound payload. Unparseable input gets an error
// reply and changes nothing; unknown message types are ignored.
func (that *Server) dispatch(c *client, raw []byte) {
	log := that.logger.With("method", "dispatch")

	var message Message
	if err := json.Unmarshal(raw, &message); err != nil {
		log.Error("failed to unmarshal message", "error", err)

		if err = that.sendError(c, errInvalidInput); err != nil {
			log.Error("failed to send error response", "error", err)
		}
		return
	}

	handler, ok := that.handlers[message.Type]
	if !ok {
		log.Info("unknown message type", "type", message.Type)
		return
	}

	that.mu.Lock()
	err := handler(c, &message)
	that.mu.Unlock()

	if err != nil {
		log.Error("error processing message", "type", message.Type, "error", err)
	}
}

func (that *Server) sendError(c *client, errorMsg string) error {
	if err := c.sink.Send(ErrorMessage{Type: "error", Message: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
