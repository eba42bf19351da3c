package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	messages []any
}

func (that *recordingSink) Send(message any) error {
	that.messages = append(that.messages, message)
	return nil
}

type closedSink struct{}

func (that *closedSink) Send(_ any) error {
	return errors.New("connection closed")
}

func TestNewParticipant(t *testing.T) {
	t.Run("Keeps the announced name", func(t *testing.T) {
		// Given: a client that announced a name
		participant := NewParticipant("Alice", &recordingSink{})

		// Then: the participant carries it
		assert.Equal(t, "Alice", participant.Name)
	})

	t.Run("Defaults the name when absent", func(t *testing.T) {
		// Given: a client that announced no name
		participant := NewParticipant("", &recordingSink{})

		// Then: the default name is used
		assert.Equal(t, DefaultName, participant.Name)
	})
}

func TestParticipant_Deliver(t *testing.T) {
	t.Run("Delivers to an open sink", func(t *testing.T) {
		// Given: a participant on a live connection
		sink := &recordingSink{}
		participant := NewParticipant("Alice", sink)

		// When: a message is delivered
		participant.Deliver("hello")

		// Then: the sink received it
		require.Len(t, sink.messages, 1)
		assert.Equal(t, "hello", sink.messages[0])
	})

	t.Run("Drops silently when the connection is gone", func(t *testing.T) {
		// Given: a participant whose connection has closed
		participant := NewParticipant("Alice", &closedSink{})

		// When / Then: delivery is a no-op, no panic, no error
		participant.Deliver("hello")
	})

	t.Run("Tolerates a nil sink", func(t *testing.T) {
		// Given: a participant with no sink at all
		participant := &Participant{Name: "Alice"}

		// When / Then: delivery is a no-op
		participant.Deliver("hello")
	})
}
