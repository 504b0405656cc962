package config

import "maps"

// Skin names accepted by the `skin` key.
const (
	SkinDefault     = "default"
	SkinModern      = "modern"
	SkinSmallScreen = "smallscreen"
	SkinBranded     = "branded"
	SkinCast        = "cast"
	SkinTV          = "tv"
)

// SkinNames lists every recognised skin in display order.
var SkinNames = []string{SkinDefault, SkinModern, SkinSmallScreen, SkinBranded, SkinCast, SkinTV}

// UIConfig is the UI configuration document. Unknown keys are ignored.
type UIConfig struct {
	Metadata        Metadata         `yaml:"metadata,omitempty"`
	Skin            string           `yaml:"skin,omitempty" validate:"omitempty,skin"`
	Recommendations []Recommendation `yaml:"recommendations,omitempty" validate:"omitempty,dive"`
	ErrorMessages   map[int]string   `yaml:"errorMessages,omitempty"`
	Channel         ChannelConfig    `yaml:"channel,omitempty"`
}

// Metadata overrides what the player reports for the current source.
type Metadata struct {
	Title       string `yaml:"title,omitempty" validate:"max=500"`
	Description string `yaml:"description,omitempty" validate:"max=5000"`
}

// Recommendation is an item shown by the recommendation overlay once playback
// finished.
type Recommendation struct {
	Title     string `yaml:"title" validate:"required,max=200"`
	URL       string `yaml:"url" validate:"required,url"`
	Thumbnail string `yaml:"thumbnail,omitempty" validate:"omitempty,url"`
	Duration  int    `yaml:"duration,omitempty" validate:"gte=0"`
}

// ChannelConfig points the external message channel at a websocket endpoint.
// An empty URL keeps the channel in-process only.
type ChannelConfig struct {
	URL string `yaml:"url,omitempty" validate:"omitempty,url"`
}

// Clone returns a deep copy so callers can hand out snapshots.
func (c UIConfig) Clone() UIConfig {
	out := c
	if c.Recommendations != nil {
		out.Recommendations = append([]Recommendation(nil), c.Recommendations...)
	}
	if c.ErrorMessages != nil {
		out.ErrorMessages = maps.Clone(c.ErrorMessages)
	}
	return out
}

// ErrorMessage returns the configured message for code, if any.
func (c UIConfig) ErrorMessage(code int) (string, bool) {
	msg, ok := c.ErrorMessages[code]
	return msg, ok && msg != ""
}
