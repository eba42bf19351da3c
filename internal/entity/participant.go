package entity

// DefaultName is used when a client joins without announcing a name.
const DefaultName = "Player"

// Sink is the outbound side of a participant's connection. Send fails when
// the underlying connection is gone.
type Sink interface {
	Send(message any) error
}

// Participant is one connected client bound to a lobby: a display name, the
// symbol assigned at join time, and the sink messages go out through.
type Participant struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`

	sink Sink
}

func NewParticipant(name string, sink Sink) *Participant {
	if name == "" {
		name = DefaultName
	}

	return &Participant{
		Name: name,
		sink: sink,
	}
}

// Deliver - sends a message to this participant, best effort. A send that
// fails because the connection is closed is dropped without error; the
// connection close path is what removes stale participants.
func (that *Participant) Deliver(message any) {
	if that.sink == nil {
		return
	}

	_ = that.sink.Send(message)
}
