package connection

import "encoding/json"

// Names of the messages a match exchanges with a remote player.
// Every request is answered with a reply bearing the same name.
const (
	MessageSetup    string = "setup"
	MessageTakeTurn string = "take-turn"
	MessageHit      string = "hit"
	MessageWin      string = "win"
)

type Message[T any] struct {
	Name      string `json:"name"`
	Arguments T      `json:"arguments,omitempty"`
}

func NewMessage[T any](name string) Message[T] {
	return Message[T]{Name: name}
}

func (m *Message[T]) AddArguments(arguments T) {
	m.Arguments = arguments
}

// Envelope is the receive side counterpart of Message. Arguments
// stay raw until the name says what to decode them into.
type Envelope struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

func (e Envelope) DecodeArguments(v any) error {
	return json.Unmarshal(e.Arguments, v)
}
