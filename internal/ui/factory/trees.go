package factory

import (
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
	"github.com/alexisbeaulieu97/playerui/internal/ui/component"
	"github.com/alexisbeaulieu97/playerui/internal/ui/components"
)

const (
	controlsHideDelay = 2 * time.Second
	settingsHideDelay = 3 * time.Second
)

func rootOptions() components.UIContainerOptions {
	return components.UIContainerOptions{
		HideDelay: controlsHideDelay,
		HidePlayerStateExceptions: []ports.PlaybackState{
			ports.StatePrepared,
			ports.StatePaused,
			ports.StateFinished,
		},
	}
}

func classes(names ...string) component.Config {
	return component.Config{CSSClasses: names}
}

func trackItem(label string, kind ports.TrackKind) *components.SettingsPanelItem {
	return components.NewSettingsPanelItem(component.Config{}, label, components.NewTrackSelectBox(component.Config{}, kind))
}

func mainSettingsPage() *components.SettingsPanelPage {
	return components.NewSettingsPanelPage(component.Config{},
		trackItem("Quality", ports.TrackVideoQuality),
		trackItem("Speed", ports.TrackSpeed),
		trackItem("Audio track", ports.TrackAudio),
		trackItem("Audio quality", ports.TrackAudioQuality),
	)
}

// settingsPanel assembles the main settings page and the subtitle settings
// page. The main page links to the subtitle page and lists subtitle tracks.
func settingsPanel(overlay *components.SubtitleOverlay, hideDelay time.Duration, closable bool) *components.SettingsPanel {
	main := mainSettingsPage()
	subtitlePage := components.NewSubtitleSettingsPanelPage(component.Config{}, overlay, components.NewSubtitleSettingsManager())
	panel := components.NewSettingsPanel(component.Config{}, components.SettingsPanelOptions{HideDelay: hideDelay}, main, subtitlePage)

	main.AddComponent(components.NewSettingsPanelItem(component.Config{Role: "menubar"}, "Subtitles",
		components.NewTrackSelectBox(component.Config{}, ports.TrackSubtitles)))
	main.AddComponent(components.NewSubtitleSettingsLabel(component.Config{}))
	main.AddComponent(components.NewSettingsPanelPageOpenButton(
		component.Config{Text: "Open", AriaLabel: "Subtitle settings"}, panel, subtitlePage))
	if closable {
		main.AddComponent(components.NewCloseButton(component.Config{}, components.CloseButtonOptions{Target: panel}))
		subtitlePage.AddComponent(components.NewCloseButton(component.Config{}, components.CloseButtonOptions{Target: panel}))
	}
	return panel
}

func timeline(current, total components.PlaybackTimeLabelOptions) *component.Container {
	return component.NewContainer(classes("controlbar-top"), []component.Component{
		components.NewPlaybackTimeLabel(component.Config{}, current),
		components.NewSeekBar(component.Config{}),
		components.NewPlaybackTimeLabel(classes("text-right"), total),
	})
}

func defaultTimeline() *component.Container {
	return timeline(
		components.PlaybackTimeLabelOptions{Mode: components.TimeCurrent, HideInLivePlayback: true},
		components.PlaybackTimeLabelOptions{Mode: components.TimeTotal},
	)
}

// ModernUI is the desktop layout.
func ModernUI() *components.UIContainer {
	subtitles := components.NewSubtitleOverlay(component.Config{})
	panel := settingsPanel(subtitles, settingsHideDelay, false)

	controlBar := components.NewControlBar(component.Config{},
		panel,
		defaultTimeline(),
		component.NewContainer(classes("controlbar-bottom"), []component.Component{
			components.NewPlaybackToggleButton(component.Config{}),
			components.NewVolumeToggleButton(component.Config{}),
			components.NewVolumeSlider(component.Config{}),
			components.NewSpacer(component.Config{}),
			components.NewCastToggleButton(component.Config{}),
			components.NewSettingsToggleButton(component.Config{}, components.SettingsToggleButtonOptions{Panel: panel}),
			components.NewFullscreenToggleButton(component.Config{}),
		}),
	)

	return components.NewUIContainer(classes("ui-skin-modern"), rootOptions(),
		subtitles,
		components.NewBufferingOverlay(component.Config{}, 0),
		components.NewPlaybackToggleOverlay(component.Config{}),
		components.NewCastStatusOverlay(component.Config{}),
		controlBar,
		components.NewTitleBar(component.Config{}, components.TitleBarOptions{}),
		components.NewRecommendationOverlay(component.Config{}),
		components.NewWatermark(component.Config{}, components.WatermarkOptions{}),
		components.NewErrorMessageOverlay(component.Config{}),
	)
}

func adStatus(message string) *component.Container {
	return component.NewContainer(component.Config{CSSClass: "ui-ads-status"}, []component.Component{
		components.NewAdMessageLabel(component.Config{Text: message}),
		components.NewAdSkipButton(component.Config{}, components.AdSkipOptions{}),
	})
}

// ModernAdsUI is the desktop layout during ads that need UI.
func ModernAdsUI() *components.UIContainer {
	return components.NewUIContainer(classes("ui-skin-ads"), rootOptions(),
		components.NewBufferingOverlay(component.Config{}, 0),
		components.NewAdClickOverlay(component.Config{}),
		components.NewPlaybackToggleOverlay(component.Config{}),
		adStatus(""),
		components.NewControlBar(component.Config{},
			component.NewContainer(classes("controlbar-bottom"), []component.Component{
				components.NewPlaybackToggleButton(component.Config{}),
				components.NewVolumeToggleButton(component.Config{}),
				components.NewVolumeSlider(component.Config{}),
				components.NewSpacer(component.Config{}),
				components.NewFullscreenToggleButton(component.Config{}),
			}),
		),
	)
}

// ModernSmallScreenUI is the handheld layout.
func ModernSmallScreenUI() *components.UIContainer {
	subtitles := components.NewSubtitleOverlay(component.Config{})
	panel := settingsPanel(subtitles, 0, true)

	return components.NewUIContainer(classes("ui-skin-smallscreen"), rootOptions(),
		subtitles,
		components.NewBufferingOverlay(component.Config{}, 0),
		components.NewCastStatusOverlay(component.Config{}),
		components.NewPlaybackToggleOverlay(component.Config{}),
		components.NewRecommendationOverlay(component.Config{}),
		components.NewControlBar(component.Config{}, defaultTimeline()),
		components.NewTitleBar(component.Config{}, components.TitleBarOptions{},
			components.NewMetadataLabel(component.Config{}, components.MetadataTitle),
			components.NewCastToggleButton(component.Config{}),
			components.NewVolumeToggleButton(component.Config{}),
			components.NewSettingsToggleButton(component.Config{}, components.SettingsToggleButtonOptions{Panel: panel}),
			components.NewFullscreenToggleButton(component.Config{}),
		),
		panel,
		components.NewWatermark(component.Config{}, components.WatermarkOptions{}),
		components.NewErrorMessageOverlay(component.Config{}),
	)
}

// ModernSmallScreenAdsUI is the handheld layout during ads that need UI.
func ModernSmallScreenAdsUI() *components.UIContainer {
	return components.NewUIContainer(classes("ui-skin-ads", "ui-skin-smallscreen"), rootOptions(),
		components.NewBufferingOverlay(component.Config{}, 0),
		components.NewAdClickOverlay(component.Config{}),
		components.NewPlaybackToggleOverlay(component.Config{}),
		components.NewTitleBar(component.Config{}, components.TitleBarOptions{},
			// empty title pushes the buttons to the right
			components.NewLabel(component.Config{CSSClass: "label-metadata-title"}),
			components.NewFullscreenToggleButton(component.Config{}),
		),
		adStatus("Ad: {remainingTime} secs"),
	)
}

// BrandedSmallScreenUI is the handheld layout of the branded skin: large
// centre controls, a content advisory and subtitle styling in the settings
// panel.
func BrandedSmallScreenUI() *components.UIContainer {
	subtitles := components.NewSubtitleOverlay(component.Config{})
	styles := components.NewSubtitleSettingsManager()

	main := components.NewSettingsPanelPage(component.Config{},
		components.NewSettingsPanelItem(component.Config{}, "Font size",
			components.NewFontSizeListBox(component.Config{CSSClass: "ui-list"}, subtitles, styles)),
		components.NewSettingsPanelItem(component.Config{}, "Subtitles",
			components.NewCloseCaptionsListBox(component.Config{CSSClass: "ui-list"}, subtitles, styles)),
	)
	subtitlePage := components.NewSubtitleSettingsPanelPage(component.Config{}, subtitles, styles)
	panel := components.NewSettingsPanel(component.Config{}, components.SettingsPanelOptions{}, main, subtitlePage)
	main.AddComponent(components.NewCloseButton(component.Config{}, components.CloseButtonOptions{Target: panel}))
	subtitlePage.AddComponent(components.NewCloseButton(component.Config{}, components.CloseButtonOptions{Target: panel}))

	controlBar := components.NewControlBar(component.Config{Hidden: component.Bool(true)},
		timeline(
			components.PlaybackTimeLabelOptions{Mode: components.TimeCurrent},
			components.PlaybackTimeLabelOptions{Mode: components.TimeTotal, HideInLivePlayback: true},
		),
		component.NewContainer(component.Config{CSSClass: "branded-container-bottom"}, []component.Component{
			components.NewSettingsToggleButton(component.Config{}, components.SettingsToggleButtonOptions{Panel: panel}),
			components.NewNextEpisodeButton(component.Config{}, components.NextEpisodeOptions{}),
		}),
	)

	return components.NewUIContainer(classes("ui-skin-smallscreen", "ui-skin-branded"), rootOptions(),
		subtitles,
		components.NewTitleBar(component.Config{Hidden: component.Bool(false), CSSClasses: []string{"titlebar-back"}}, components.TitleBarOptions{},
			component.NewContainer(classes("ui-actions", "left", "back"), []component.Component{
				components.NewCustomCloseButton(component.Config{}),
			}),
		),
		components.NewBufferingOverlay(component.Config{}, 0),
		components.NewLoadingOverlay(component.Config{}),
		components.NewPlaybackToggleOverlay(component.Config{}),
		components.NewRecommendationOverlay(component.Config{}),
		controlBar,
		components.NewAdvisory(classes("advisory"), components.DefaultAdvisoryDuration),
		components.NewControls(classes("branded-controls"),
			components.NewRewindButton(component.Config{}, components.SeekStepOptions{Step: components.DefaultSeekStep}),
			components.NewPlayButton(component.Config{}),
			components.NewForwardButton(component.Config{}, components.SeekStepOptions{Step: components.DefaultSeekStep}),
		),
		components.NewTitleBar(component.Config{}, components.TitleBarOptions{},
			component.NewContainer(classes("ui-title"), []component.Component{
				components.NewMetadataLabel(component.Config{}, components.MetadataTitle),
				components.NewMetadataLabel(component.Config{}, components.MetadataDescription),
			}),
			component.NewContainer(classes("ui-actions"), []component.Component{
				components.NewCastToggleButton(component.Config{}),
			}),
		),
		panel,
		components.NewErrorMessageOverlay(component.Config{}),
	)
}

// ModernCastReceiverUI is the layout shown on a cast receiver.
func ModernCastReceiverUI() *components.CastUIContainer {
	return components.NewCastUIContainer(classes("ui-skin-cast-receiver"), rootOptions(),
		components.NewSubtitleOverlay(component.Config{}),
		components.NewBufferingOverlay(component.Config{}, 0),
		components.NewPlaybackToggleOverlay(component.Config{}),
		components.NewWatermark(component.Config{}, components.WatermarkOptions{}),
		components.NewControlBar(component.Config{}, defaultTimeline()),
		components.NewTitleBar(component.Config{}, components.TitleBarOptions{KeepHiddenWithoutMetadata: true}),
		components.NewErrorMessageOverlay(component.Config{}),
	)
}

func trackPanel(kind ports.TrackKind) *components.SettingsPanel {
	list := components.NewTrackSelectBox(classes("ui-listbox"), kind)
	page := components.NewSettingsPanelPage(component.Config{}, components.NewSettingsPanelItem(component.Config{}, "", list))
	return components.NewSettingsPanel(component.Config{}, components.SettingsPanelOptions{}, page)
}

// ModernTvUI is the layout for television screens, where subtitle and audio
// tracks are picked from list panels opened from the title bar.
func ModernTvUI() *components.UIContainer {
	subtitlePanel := trackPanel(ports.TrackSubtitles)
	audioPanel := trackPanel(ports.TrackAudio)

	return components.NewUIContainer(classes("ui-skin-tv"), rootOptions(),
		components.NewSubtitleOverlay(component.Config{}),
		components.NewBufferingOverlay(component.Config{}, 0),
		components.NewPlaybackToggleOverlay(component.Config{}),
		components.NewControlBar(component.Config{}, timeline(
			components.PlaybackTimeLabelOptions{Mode: components.TimeCurrent, HideInLivePlayback: true},
			components.PlaybackTimeLabelOptions{Mode: components.TimeRemaining},
		)),
		components.NewTitleBar(component.Config{}, components.TitleBarOptions{},
			component.NewContainer(classes("ui-titlebar-top"), []component.Component{
				components.NewMetadataLabel(component.Config{}, components.MetadataTitle),
				components.NewSettingsToggleButton(
					component.Config{CSSClass: "ui-subtitlesettingstogglebutton", Text: "Subtitles"},
					components.SettingsToggleButtonOptions{Panel: subtitlePanel, AutoHideWhenNoActiveSettings: true}),
				components.NewSettingsToggleButton(
					component.Config{CSSClass: "ui-audiotracksettingstogglebutton", Text: "Audio track", AriaLabel: "Audio track"},
					components.SettingsToggleButtonOptions{Panel: audioPanel, AutoHideWhenNoActiveSettings: true}),
			}),
			component.NewContainer(classes("ui-titlebar-bottom"), []component.Component{
				components.NewMetadataLabel(component.Config{}, components.MetadataDescription),
				subtitlePanel,
				audioPanel,
			}),
		),
		components.NewRecommendationOverlay(component.Config{}),
		components.NewErrorMessageOverlay(component.Config{}),
	)
}
