package websocket

// Message is an inbound client message, dispatched on Type.
type Message struct {
	Type  string       `json:"type"`
	Lobby string       `json:"lobby,omitempty"`
	Name  string       `json:"name,omitempty"`
	Move  *MoveRequest `json:"move,omitempty"`
}

type MoveRequest struct {
	Index int `json:"index"`
}

// ErrorMessage is the error reply for protocol and policy violations.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool   // last frame of the message
	opCode  byte   // frame type: 1 text, 8 close
	length  uint64 // payload length
	payload []byte
}
