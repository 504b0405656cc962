package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*UIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, uierrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a configuration document. path is only used
// in error messages.
func Parse(data []byte, path string) (*UIConfig, error) {
	var cfg UIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, uierrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
