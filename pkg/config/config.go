// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ✏️ Insert describes one tag-region substitution in a file
type Insert struct {
	File        string // File holding the tag markers
	Tag         string // Tag naming the marker pair
	Content     string // Inline substitute text
	ContentFile string // Optional file to read the substitute text from
	CreateTags  bool   // Append fresh markers when the tag is absent
	TagPrefix   string // Prefix for freshly created marker lines
}

// 📂 Sync describes one file synchronization into a destination folder
type Sync struct {
	Source       string // Source file
	Destination  string // Destination folder
	RenameTo     string // Optional destination base filename
	RelativeTo   string // Optional parent override for relative-path math
	PreserveRoot string // When set, recreate the source's sub-path below this root
	AlwaysWrite  bool   // Skip the content comparison and always overwrite
}

// 📚 Config represents the complete configuration
type Config struct {
	Inserts        []Insert `json:"inserts,omitempty"`
	Syncs          []Sync   `json:"syncs,omitempty"`
	IgnorePatterns []string `json:"ignore_patterns,omitempty"` // Glob patterns for sync sources to skip
	Async          bool     `json:"async,omitempty"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Int("inserts", len(cfg.Inserts)).
		Int("syncs", len(cfg.Syncs)).
		Msg("configuration loaded")

	return cfg, nil
}

// ✅ Validate checks the configuration for errors
func (c *Config) Validate() error {
	if len(c.Inserts) == 0 && len(c.Syncs) == 0 {
		return errors.New("config declares neither inserts nor syncs")
	}

	for i, ins := range c.Inserts {
		if ins.File == "" {
			return errors.Errorf("insert %d: file is required", i)
		}
		if ins.Tag == "" {
			return errors.Errorf("insert %d: tag is required", i)
		}
		if ins.Content == "" && ins.ContentFile == "" {
			return errors.Errorf("insert %d: either content or content_file is required", i)
		}
		if ins.Content != "" && ins.ContentFile != "" {
			return errors.Errorf("insert %d: content and content_file are mutually exclusive", i)
		}
	}

	for i, sc := range c.Syncs {
		if sc.Source == "" {
			return errors.Errorf("sync %d: source is required", i)
		}
		if sc.Destination == "" {
			return errors.Errorf("sync %d: destination is required", i)
		}
	}

	for _, pattern := range c.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern: %q", pattern)
		}
	}

	return nil
}

// 🔍 ShouldIgnore checks whether a sync source matches an ignore pattern
func (c *Config) ShouldIgnore(ctx context.Context, path string) bool {
	for _, pattern := range c.IgnorePatterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("path", path).Str("pattern", pattern).Msg("source ignored by pattern")
			return true
		}
	}
	return false
}
