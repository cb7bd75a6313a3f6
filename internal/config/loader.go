package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

// LoadFromPath reads a config file (YAML or JSON) and returns it merged
// over the defaults. Format is detected by extension (.yaml/.yml/.json)
// or by content (first non-whitespace char).
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config from bytes. ext is the file extension for the
// format hint; empty = detect from content.
func Load(data []byte, ext string) (*Config, error) {
	var overlay Config
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	switch {
	case ext == ".yaml":
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	case ext == ".json":
		if err := json.Unmarshal(data, &overlay); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	case strings.HasPrefix(strings.TrimSpace(string(data)), "{"):
		if err := json.Unmarshal(data, &overlay); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	return merge(Default(), &overlay), nil
}

// merge overlays set fields of o onto base and returns base.
func merge(base, o *Config) *Config {
	if o.PointTolerance > 0 {
		base.PointTolerance = o.PointTolerance
	}
	if len(o.SpliceLimits) > 0 {
		base.SpliceLimits = o.SpliceLimits
	}
	if len(o.ClusterLayers) > 0 {
		base.ClusterLayers = o.ClusterLayers
	}
	return base
}
