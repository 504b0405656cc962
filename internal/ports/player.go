package ports

import (
	"context"
	"time"
)

// PlaybackState is the coarse state of the player.
type PlaybackState string

const (
	StateIdle     PlaybackState = "idle"
	StatePrepared PlaybackState = "prepared"
	StatePlaying  PlaybackState = "playing"
	StatePaused   PlaybackState = "paused"
	StateFinished PlaybackState = "finished"
)

// TrackKind selects one of the player's selectable lists.
type TrackKind string

const (
	TrackSubtitles    TrackKind = "subtitles"
	TrackAudio        TrackKind = "audio"
	TrackVideoQuality TrackKind = "videoquality"
	TrackAudioQuality TrackKind = "audioquality"
	TrackSpeed        TrackKind = "speed"
)

// Track is one selectable entry of a track list.
type Track struct {
	ID       string
	Label    string
	Selected bool
}

// Source describes the loaded media. Metadata is free-form and may miss any
// key; readers treat a missing key as "no value".
type Source struct {
	Title       string
	Description string
	Metadata    map[string]string
	Live        bool
	Duration    time.Duration
}

// MetadataValue returns the metadata entry for key, falling back to the
// dedicated fields for "title" and "description".
func (s *Source) MetadataValue(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	if v, ok := s.Metadata[key]; ok && v != "" {
		return v, true
	}
	switch key {
	case "title":
		return s.Title, s.Title != ""
	case "description":
		return s.Description, s.Description != ""
	}
	return "", false
}

// Ad is the payload of EventAdStarted.
type Ad struct {
	ID           string
	RequiresUI   bool
	Duration     time.Duration
	SkippableIn  time.Duration
	Skippable    bool
	ClickThrough string
}

// TimeChanged is the payload of EventTimeChanged and EventSeeked.
type TimeChanged struct {
	Time     time.Duration
	Duration time.Duration
}

// Viewport is the payload of EventViewportResized.
type Viewport struct {
	Width         int
	Height        int
	DocumentWidth int
}

// Cue is the payload of EventCueEnter and EventCueExit.
type Cue struct {
	ID   string
	Text string
}

// PlayerError is the payload of EventError.
type PlayerError struct {
	Code    int
	Message string
}

// Player is the narrow surface the UI consumes: event subscription, state
// queries and playback commands. Nothing else of the player is reachable from
// UI code.
type Player interface {
	On(eventType string, handler EventHandler) (Subscription, error)

	Source() *Source
	State() PlaybackState
	CurrentTime() time.Duration
	Duration() time.Duration
	IsLive() bool
	IsMuted() bool
	IsFullscreen() bool
	IsCasting() bool
	Tracks(kind TrackKind) []Track

	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	Seek(ctx context.Context, position time.Duration) error
	SkipAd(ctx context.Context) error
	SetMuted(ctx context.Context, muted bool) error
	SetFullscreen(ctx context.Context, fullscreen bool) error
	SetCasting(ctx context.Context, casting bool) error
	SelectTrack(ctx context.Context, kind TrackKind, id string) error
}

// Environment exposes device facts the UI manager folds into its condition
// context.
type Environment interface {
	IsMobile() bool
	DocumentWidth() int
}
