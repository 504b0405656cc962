package ports

import "context"

// Player events. Payload types are documented next to each name.
const (
	// EventSourceLoaded fires once a source is ready. Payload: Source.
	EventSourceLoaded = "sourceloaded"
	// EventSourceUnloaded fires after the current source was removed.
	EventSourceUnloaded = "sourceunloaded"
	// EventPlay fires when playback starts or resumes.
	EventPlay = "play"
	// EventPaused fires when playback pauses.
	EventPaused = "paused"
	// EventPlaybackFinished fires when playback reaches the end.
	EventPlaybackFinished = "playbackfinished"
	// EventTimeChanged fires as the playhead moves. Payload: TimeChanged.
	EventTimeChanged = "timechanged"
	// EventSeeked fires after a seek completed. Payload: TimeChanged.
	EventSeeked = "seeked"
	// EventStallStarted fires when playback stalls on buffering.
	EventStallStarted = "stallstarted"
	// EventStallEnded fires when buffering recovers.
	EventStallEnded = "stallended"
	// EventAdStarted fires when an ad begins. Payload: Ad.
	EventAdStarted = "adstarted"
	// EventAdFinished fires when an ad completes.
	EventAdFinished = "adfinished"
	// EventAdSkipped fires when the viewer skipped an ad.
	EventAdSkipped = "adskipped"
	// EventAdError fires when ad playback failed.
	EventAdError = "aderror"
	// EventViewportResized fires when the player or document size changes.
	// Payload: Viewport.
	EventViewportResized = "playerresized"
	// EventViewModeChanged fires when entering or leaving fullscreen.
	EventViewModeChanged = "viewmodechanged"
	// EventMuted and EventUnmuted track the audio mute state.
	EventMuted   = "muted"
	EventUnmuted = "unmuted"
	// EventTracksChanged fires when a track list or its selection changes.
	// Payload: TrackKind.
	EventTracksChanged = "trackschanged"
	// EventCueEnter and EventCueExit carry subtitle cues. Payload: Cue.
	EventCueEnter = "cueenter"
	EventCueExit  = "cueexit"
	// EventCastStarted and EventCastStopped track remote playback.
	EventCastStarted = "caststarted"
	EventCastStopped = "caststopped"
	// EventError fires on fatal player errors. Payload: PlayerError.
	EventError = "error"
)

// UI events published by the UI manager on its own publisher.
const (
	// EventUIConfigUpdated fires after the UI configuration was replaced.
	EventUIConfigUpdated = "ui.configupdated"
	// EventUIControlsShow and EventUIControlsHide follow the root container's
	// auto-hide cycle.
	EventUIControlsShow = "ui.controlsshow"
	EventUIControlsHide = "ui.controlshide"
	// EventUIVariantChanged fires after a variant switch completed. Payload:
	// the variant name.
	EventUIVariantChanged = "ui.variantchanged"
)

// Event is a named occurrence with an event-specific payload.
type Event interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after every handler registered for the event
// ran, in registration order. Handler failures are logged by the publisher
// and never abort delivery to the remaining handlers.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Handlers should avoid
// panicking; failures should be surfaced via returned errors so publishers can
// log diagnostics and continue delivering to remaining subscribers.
type EventHandler func(context.Context, Event) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events and release resources. Unsubscribe is
// safe to call more than once.
type Subscription interface {
	Unsubscribe()
}
