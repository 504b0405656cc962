package events

import "github.com/alexisbeaulieu97/playerui/internal/ports"

// Message is the default ports.Event implementation.
type Message struct {
	Type string
	Data interface{}
}

// New builds an event of the given type carrying payload.
func New(eventType string, payload interface{}) Message {
	return Message{Type: eventType, Data: payload}
}

// EventType implements ports.Event.
func (m Message) EventType() string { return m.Type }

// Payload implements ports.Event.
func (m Message) Payload() interface{} { return m.Data }

var _ ports.Event = Message{}
