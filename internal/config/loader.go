package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a config file into cfg. Fields absent from the file keep
// whatever value cfg already holds, so callers pass a defaults-populated
// config and get file-over-default merging for free.
//
// The format is chosen by extension: .yaml/.yml use YAML, everything else
// is decoded as JSON.
func LoadFile(path string, cfg *ProjectConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrInvalidConfigFile, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfigFile, path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfigFile, path, err)
		}
	}

	return nil
}
