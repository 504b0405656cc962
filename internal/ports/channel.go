package ports

// Well-known message channel names.
const (
	MessageChangeMetadata = "changeMetadata"
	MessageClosePlayer    = "closePlayer"
	MessageNextEpisode    = "nextEpisode"
	MessageAdClickThrough = "adClickThrough"
)

// MessageHandler receives the payload of a channel message.
type MessageHandler func(data interface{})

// MessageChannel is an optional out-of-band publish/subscribe surface keyed
// by channel name. UI code receives it as a possibly nil dependency and treats
// a nil channel as "feature disabled".
type MessageChannel interface {
	On(name string, handler MessageHandler) Subscription
	Send(name string, data interface{})
}
