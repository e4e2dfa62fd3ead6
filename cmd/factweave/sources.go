// cmd/factweave/sources.go
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// FeedSource is one RSS source entry from sources.yml.
type FeedSource struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Category string `yaml:"category"`
	Paused   bool   `yaml:"paused"`
}

// SourcesConfig is the optional file-based configuration for feeds and
// additional crisis keywords.
type SourcesConfig struct {
	Feeds    []FeedSource `yaml:"feeds"`
	Keywords []string     `yaml:"keywords"`
}

// LoadSources reads sources.yml. A missing file is not an error; it just
// means no feeds and no extra keywords.
func LoadSources(path string) (*SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &SourcesConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read sources file: %v", err)
	}

	var cfg SourcesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %v", err)
	}
	return &cfg, nil
}
