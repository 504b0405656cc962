// Package components provides the player UI widgets: labels, buttons,
// bars, overlays, list boxes and the settings panel.
//
// Every widget embeds component.Base or component.Container. Constructors
// take a user component.Config and merge it over the widget's defaults, so
// the same widget can be restyled per skin. Widgets subscribe to player
// events in Configure and drop every subscription and timer in Release.
package components
