package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/playerui/internal/config"
	cfginfra "github.com/alexisbeaulieu97/playerui/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/playerui/internal/player"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

// uiFlags selects the skin and configuration a command builds.
type uiFlags struct {
	ConfigPath string
	Skin       string
}

func (f *uiFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "Path to a UI configuration file")
	fs.StringVarP(&f.Skin, "skin", "s", "", "Skin to build (overrides the configuration)")
}

// load reads the configuration, if any, and applies the skin override.
func (f *uiFlags) load(ctx context.Context, logger ports.Logger) (config.UIConfig, error) {
	var cfg config.UIConfig
	if strings.TrimSpace(f.ConfigPath) != "" {
		if err := validateConfigPath(f.ConfigPath); err != nil {
			return cfg, err
		}
		loaded, err := cfginfra.NewYAMLLoader(logger).Load(ctx, f.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	if f.Skin != "" {
		cfg.Skin = f.Skin
	}
	return cfg, nil
}

func validateConfigPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}
	return nil
}

// scenarioFlags describe the player state a command reproduces.
type scenarioFlags struct {
	Width    int
	Mobile   bool
	State    string
	Position time.Duration
	Ad       bool
	Stalled  bool
	Casting  bool
	Error    int
}

func (f *scenarioFlags) bind(fs *pflag.FlagSet) {
	fs.IntVarP(&f.Width, "width", "w", 1280, "Player and document width in pixels")
	fs.BoolVar(&f.Mobile, "mobile", false, "Simulate a handheld device")
	fs.StringVar(&f.State, "state", string(ports.StatePrepared), "Playback state: idle, prepared, playing, paused or finished")
	fs.DurationVar(&f.Position, "position", 0, "Playhead position")
	fs.BoolVar(&f.Ad, "ad", false, "Play an ad that needs the ad UI")
	fs.BoolVar(&f.Stalled, "stalled", false, "Simulate buffering")
	fs.BoolVar(&f.Casting, "casting", false, "Simulate an active cast session")
	fs.IntVar(&f.Error, "error", 0, "Raise a player error with this code")
}

func (f scenarioFlags) scenario() player.Scenario {
	s := player.Scenario{
		Mobile:   f.Mobile,
		Width:    f.Width,
		State:    ports.PlaybackState(f.State),
		Position: f.Position,
		Stalled:  f.Stalled,
		Casting:  f.Casting,
	}
	if f.Ad {
		ad := player.DemoAd("cli-ad")
		s.Ad = &ad
	}
	if f.Error != 0 {
		s.Error = &ports.PlayerError{Code: f.Error, Message: "simulated playback failure"}
	}
	return s
}

// parseScenario reads a compact scenario such as "width=400,mobile,ad".
// Keys mirror the scenario flags; booleans may omit their value.
func parseScenario(spec string) (scenarioFlags, error) {
	f := scenarioFlags{Width: 1280, State: string(ports.StatePrepared)}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		var err error
		switch key {
		case "width":
			f.Width, err = strconv.Atoi(value)
		case "state":
			f.State = value
		case "position":
			f.Position, err = time.ParseDuration(value)
		case "error":
			f.Error, err = strconv.Atoi(value)
		case "mobile":
			f.Mobile, err = parseFlagBool(value, hasValue)
		case "ad":
			f.Ad, err = parseFlagBool(value, hasValue)
		case "stalled":
			f.Stalled, err = parseFlagBool(value, hasValue)
		case "casting":
			f.Casting, err = parseFlagBool(value, hasValue)
		default:
			return f, fmt.Errorf("unknown scenario key %q", key)
		}
		if err != nil {
			return f, fmt.Errorf("scenario key %q: %w", key, err)
		}
	}
	return f, nil
}

func parseFlagBool(value string, hasValue bool) (bool, error) {
	if !hasValue {
		return true, nil
	}
	return strconv.ParseBool(value)
}
