package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/genform/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load returns the defaults when path is empty and the parsed file otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return ParseConfig(path)
}

// ParseConfig loads a configuration file from disk, fills defaults, validates
// it, and returns the resulting model. Unknown keys are rejected.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	cfg.ApplyDefaults()
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
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
